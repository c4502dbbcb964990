// Copyright 2015 The go-ethereum Authors
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

// Package abi implements an encoder for the Ethereum contract ABI
// (Application Binary Interface).
//
// A function is described either by a Solidity signature, which ParseSignature
// turns into a FunctionDescription, or by a JSON ABI entry. Every parameter
// description is resolved once into a Type; values are then supplied as Value
// trees and packed into the canonical head/tail layout. Method calls are the
// 4 byte selector followed by the packed arguments. The selector is either
// given by the caller or derived from the canonical signature with a
// caller-supplied Keccak-256 function.
//
// The package only encodes. Fixed-point numbers and the function type are
// recognised but rejected.
//
// abi 包实现了以太坊合约 ABI（应用二进制接口）的编码器。
//
// 函数可以由 Solidity 签名描述（由 ParseSignature 解析为 FunctionDescription），
// 也可以由 JSON ABI 条目描述。每个参数描述只解析一次为 Type，
// 参数值以 Value 树的形式提供，并按照规范的头部/尾部布局打包。
// 方法调用由 4 字节选择器和打包后的参数组成。该包只负责编码。
package abi
