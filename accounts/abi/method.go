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

package abi

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/big"
)

// 方法 ID 是从方法规范签名哈希的前 4 个字节创建的。（签名 = baz(uint32,bool)）
// 调用数据由 method_id、arg0、arg1 ... argN 组成。

// HashFunc computes the Keccak-256 digest of msg as an unsigned 256 bit
// integer. It is supplied by the caller, the abi package carries no hash
// implementation of its own.
// HashFunc 计算 msg 的 Keccak-256 摘要（256 位无符号整数），由调用方提供。
type HashFunc func(ctx context.Context, msg []byte) (*big.Int, error)

// MethodSelector derives the 4 byte selector of f: the most significant 32
// bits of the hash of its canonical signature.
// MethodSelector 计算函数的 4 字节选择器：规范签名哈希的最高 32 位。
func MethodSelector(ctx context.Context, hash HashFunc, f FunctionDescription) (uint32, error) {
	if hash == nil {
		return 0, ErrNoHashFunc
	}
	sig, err := f.CanonicalSignature()
	if err != nil {
		return 0, err
	}
	digest, err := hash(ctx, []byte(sig))
	if err != nil {
		return 0, fmt.Errorf("hashing %q: %w", sig, err)
	}
	if digest == nil || digest.Sign() < 0 || digest.BitLen() > 256 {
		return 0, fmt.Errorf("%w: hash of %q is not a 256 bit unsigned integer", ErrRange, sig)
	}
	return uint32(new(big.Int).Rsh(digest, 224).Uint64()), nil
}

// EncodeMethodWithSelector packs values against descs and prefixes the
// result with the given selector.
// EncodeMethodWithSelector 按参数描述打包参数值，并以给定的选择器作为前缀。
func EncodeMethodWithSelector(selector uint32, descs []ParameterDescription, values []Value) ([]byte, error) {
	params, err := EncodeParameters(descs, values)
	if err != nil {
		return nil, err
	}
	return withSelector(selector, params), nil
}

// EncodeMethod derives the selector of f with hash and packs values against
// its inputs.
// EncodeMethod 使用 hash 计算 f 的选择器，并根据其输入打包参数值。
func EncodeMethod(ctx context.Context, hash HashFunc, f FunctionDescription, values []Value) ([]byte, error) {
	selector, err := MethodSelector(ctx, hash, f)
	if err != nil {
		return nil, err
	}
	return EncodeMethodWithSelector(selector, f.Inputs, values)
}

// EncodeMethodSignature parses signature and encodes values as a call to it.
func EncodeMethodSignature(ctx context.Context, hash HashFunc, signature string, values []Value) ([]byte, error) {
	f, err := ParseSignature(signature)
	if err != nil {
		return nil, err
	}
	return EncodeMethod(ctx, hash, f, values)
}

// EncodeWithSelector is EncodeMethodWithSelector for pre-resolved arguments.
func (arguments Arguments) EncodeWithSelector(selector uint32, values []Value) ([]byte, error) {
	params, err := arguments.Encode(values)
	if err != nil {
		return nil, err
	}
	return withSelector(selector, params), nil
}

func withSelector(selector uint32, params []byte) []byte {
	out := make([]byte, 4+len(params))
	binary.BigEndian.PutUint32(out, selector)
	copy(out[4:], params)
	return out
}
