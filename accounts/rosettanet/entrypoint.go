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
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/sunyihoo/go-rosettanet/crypto"
)

var errInvalidFelt = errors.New("invalid felt")

// ResolveEntrypoint turns an entrypoint into its selector. 0x prefixed
// entrypoints are selectors already, anything else is a function name hashed
// with Starknet keccak.
// ResolveEntrypoint 将入口点转换为选择器：0x 前缀的入口点直接作为选择器，
// 其他的作为函数名使用 Starknet keccak 计算。
func ResolveEntrypoint(entrypoint string) (*big.Int, error) {
	if strings.HasPrefix(entrypoint, "0x") {
		return ParseFelt(entrypoint)
	}
	return crypto.SelectorFromName(entrypoint), nil
}

// ParseFelt parses a decimal or 0x prefixed hex felt. The value must be below
// the Stark field prime.
func ParseFelt(s string) (*big.Int, error) {
	v, ok := math.ParseBig256(s)
	if !ok || s == "" || v.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", errInvalidFelt, s)
	}
	if v.Cmp(crypto.FeltModulus()) >= 0 {
		return nil, fmt.Errorf("%w: %s exceeds the field prime", errInvalidFelt, s)
	}
	return v, nil
}
