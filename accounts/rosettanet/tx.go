// Copyright 2024 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package rosettanet

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/log"
)

// Config contains the settings of the transaction builder.
type Config struct {
	// MulticallAddress is the Ethereum-side address of the multicall
	// entrypoint, the "to" of every batched transaction.
	MulticallAddress string

	// Value is the wei amount attached to batched transactions.
	Value string `toml:",omitempty"`
}

// DefaultConfig contains the settings used by Rosettanet wallets.
var DefaultConfig = Config{
	MulticallAddress: "0x0000000000000000000000004645415455524553",
	Value:            "0x0",
}

// TxObject is the transaction-like object handed to an Ethereum wallet.
// TxObject 是交给以太坊钱包的类交易对象。
type TxObject struct {
	From  string `json:"from,omitempty"`
	To    string `json:"to"`
	Data  string `json:"data"`
	Value string `json:"value"`
}

// Builder turns batches of Starknet calls into multicall transactions.
type Builder struct {
	to    string
	value string
}

// NewBuilder validates cfg and creates a builder.
func NewBuilder(cfg Config) (*Builder, error) {
	if !common.IsHexAddress(cfg.MulticallAddress) {
		return nil, fmt.Errorf("rosettanet: invalid multicall address %q", cfg.MulticallAddress)
	}
	value := cfg.Value
	if value == "" {
		value = DefaultConfig.Value
	}
	wei, ok := math.ParseBig256(value)
	if !ok || wei.Sign() < 0 {
		return nil, fmt.Errorf("rosettanet: invalid transaction value %q", cfg.Value)
	}
	return &Builder{to: cfg.MulticallAddress, value: hexutil.EncodeBig(wei)}, nil
}

// CreateEthTxObject validates and resolves calls and wraps their multicall
// calldata into a transaction object sent from the given address. from may
// be empty when the wallet fills it in.
// CreateEthTxObject 校验并解析调用，将其 multicall 调用数据封装为交易对象。
func (b *Builder) CreateEthTxObject(from string, objects []CallObject) (*TxObject, error) {
	if from != "" && !common.IsHexAddress(from) {
		return nil, fmt.Errorf("rosettanet: invalid sender address %q", from)
	}
	calls, err := ResolveCalls(objects)
	if err != nil {
		return nil, err
	}
	data, err := PrepareMulticallCalldata(calls)
	if err != nil {
		return nil, err
	}
	log.Debug("Prepared multicall transaction", "from", from, "calls", len(calls), "size", (len(data)-2)/2)
	return &TxObject{
		From:  from,
		To:    b.to,
		Data:  data,
		Value: b.value,
	}, nil
}

// CreateEthTxObject builds a transaction object with DefaultConfig.
func CreateEthTxObject(from string, objects []CallObject) (*TxObject, error) {
	b, err := NewBuilder(DefaultConfig)
	if err != nil {
		return nil, err
	}
	return b.CreateEthTxObject(from, objects)
}
