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

// Package rosettanet assembles Ethereum transactions that batch Starknet
// calls through the Rosettanet multicall entrypoint.
//
// rosettanet 包通过 Rosettanet 的 multicall 入口点组装批量调用 Starknet 合约的以太坊交易。
package rosettanet

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sunyihoo/go-rosettanet/accounts/abi"
)

const (
	// MulticallSignature is the entrypoint every batch is encoded against: a
	// list of (target, selector, calldata) triples.
	MulticallSignature = "multicall((uint256,uint256,uint256[])[])"

	// MulticallSelector is the literal selector of the multicall entrypoint.
	// It is not derived from MulticallSignature.
	// MulticallSelector 是 multicall 入口点的固定选择器，并非由签名哈希得出。
	MulticallSelector uint32 = 0x76971d7f
)

// multicallArgs is resolved once and only read afterwards.
var multicallArgs = mustArguments(MulticallSignature)

func mustArguments(signature string) abi.Arguments {
	f, err := abi.ParseSignature(signature)
	if err != nil {
		panic(err)
	}
	args, err := abi.NewArguments(f.Inputs)
	if err != nil {
		panic(err)
	}
	return args
}

// Call is a single resolved Starknet invocation.
type Call struct {
	Target   *big.Int   // contract address
	Selector *big.Int   // entrypoint selector
	Calldata []*big.Int // raw calldata felts
}

func (c Call) value() abi.Value {
	words := make([]abi.Value, len(c.Calldata))
	for i, w := range c.Calldata {
		words[i] = abi.Int(w)
	}
	return abi.Seq(abi.Int(c.Target), abi.Int(c.Selector), abi.Seq(words...))
}

func multicallValues(calls []Call) []abi.Value {
	batch := make([]abi.Value, len(calls))
	for i, c := range calls {
		batch[i] = c.value()
	}
	return []abi.Value{abi.Seq(batch...)}
}

// EncodeMulticall encodes calls as multicall calldata: the literal multicall
// selector followed by the encoded batch.
// EncodeMulticall 将调用编码为 multicall 调用数据：固定选择器加上编码后的批量调用。
func EncodeMulticall(calls []Call) ([]byte, error) {
	return multicallArgs.EncodeWithSelector(MulticallSelector, multicallValues(calls))
}

// PrepareMulticallCalldata returns the multicall calldata of calls as a 0x
// prefixed lowercase hex string.
func PrepareMulticallCalldata(calls []Call) (string, error) {
	data, err := EncodeMulticall(calls)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(data), nil
}
