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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/go-playground/validator/v10"
)

var errNoCalls = errors.New("rosettanet: no calls given")

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New()

// CallObject is a Starknet call as wallets submit it: addresses and calldata
// are felt strings, the entrypoint is either a 0x prefixed selector or a
// function name.
// CallObject 是钱包提交的 Starknet 调用：地址和调用数据是 felt 字符串，
// 入口点可以是 0x 前缀的选择器或函数名。
type CallObject struct {
	ContractAddress string   `json:"contractAddress" validate:"required"`
	Entrypoint      string   `json:"entrypoint" validate:"required"`
	Calldata        []string `json:"calldata" validate:"required,dive,required"`
}

// ValidateCalls checks that every call carries a contract address, an
// entrypoint and a calldata list.
func ValidateCalls(calls []CallObject) error {
	if len(calls) == 0 {
		return errNoCalls
	}
	for i := range calls {
		if err := validate.Struct(calls[i]); err != nil {
			return fmt.Errorf("call %d: %w", i, err)
		}
	}
	return nil
}

// DecodeCalls reads a JSON array of calls and validates it. Unknown fields
// are rejected.
func DecodeCalls(r io.Reader) ([]CallObject, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var calls []CallObject
	if err := dec.Decode(&calls); err != nil {
		return nil, fmt.Errorf("rosettanet: invalid calls: %w", err)
	}
	if err := ValidateCalls(calls); err != nil {
		return nil, err
	}
	return calls, nil
}

// Resolve parses the felts of the call and resolves its entrypoint.
// Resolve 解析调用中的 felt 并解析其入口点选择器。
func (c CallObject) Resolve() (Call, error) {
	target, err := ParseFelt(c.ContractAddress)
	if err != nil {
		return Call{}, fmt.Errorf("contract address: %w", err)
	}
	selector, err := ResolveEntrypoint(c.Entrypoint)
	if err != nil {
		return Call{}, fmt.Errorf("entrypoint: %w", err)
	}
	calldata := make([]*big.Int, len(c.Calldata))
	for i, word := range c.Calldata {
		if calldata[i], err = ParseFelt(word); err != nil {
			return Call{}, fmt.Errorf("calldata %d: %w", i, err)
		}
	}
	return Call{Target: target, Selector: selector, Calldata: calldata}, nil
}

// ResolveCalls validates and resolves a batch of calls.
func ResolveCalls(objects []CallObject) ([]Call, error) {
	if err := ValidateCalls(objects); err != nil {
		return nil, err
	}
	calls := make([]Call, len(objects))
	for i, obj := range objects {
		call, err := obj.Resolve()
		if err != nil {
			return nil, fmt.Errorf("call %d: %w", i, err)
		}
		calls[i] = call
	}
	return calls, nil
}
