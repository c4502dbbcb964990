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

package crypto

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

// Starknet keccak
// - Starknet 的入口点选择器是 Keccak-256 的结果截断为 250 位（清除最高 6 位），
//   这样结果总是小于 Stark 曲线的素数域模数。

// StarknetKeccak implements Starknet keccak: Keccak-256 with the top 6 bits of
// the digest cleared, interpreted as a field element of the Stark curve.
// StarknetKeccak 实现 Starknet keccak：清除摘要最高 6 位后的 Keccak-256，作为 Stark 曲线的域元素。
func StarknetKeccak(data []byte) *fp.Element {
	d := Keccak256Hash(data)
	// Remove the first 6 bits from the first byte
	d[0] &= 3
	return new(fp.Element).SetBytes(d[:])
}

// SelectorFromName returns the Starknet entrypoint selector of a function
// name, e.g. "transfer".
func SelectorFromName(name string) *big.Int {
	sel := StarknetKeccak([]byte(name))
	return sel.BigInt(new(big.Int))
}

// FeltModulus returns the Stark field prime, the exclusive upper bound of
// every felt.
func FeltModulus() *big.Int {
	return fp.Modulus()
}
