// Copyright 2016 The go-ethereum Authors
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
	"errors"
	"fmt"
)

var (
	// ErrSignatureSyntax is returned when a function signature cannot be parsed.
	// ErrSignatureSyntax 在函数签名无法解析时返回（格式错误或括号不匹配）。
	ErrSignatureSyntax = errors.New("abi: invalid function signature")

	// ErrSchema is returned when a parameter description cannot be resolved
	// into an encodable type.
	// ErrSchema 在参数描述无法解析为可编码类型时返回。
	ErrSchema = errors.New("abi: invalid parameter schema")

	// ErrValueType is returned when a value's kind or shape does not match
	// the type it is encoded into.
	// ErrValueType 在值的种类或形状与目标类型不匹配时返回。
	ErrValueType = errors.New("abi: value does not match type")

	// ErrRange is returned when an integer does not fit its declared width.
	// ErrRange 在整数超出声明宽度或符号范围时返回。
	ErrRange = errors.New("abi: value out of range")

	// ErrLengthMismatch is returned when the number of values differs from
	// the number of parameter descriptions.
	// ErrLengthMismatch 在参数值数量与参数描述数量不一致时返回。
	ErrLengthMismatch = errors.New("abi: argument count mismatch")

	// ErrNoHashFunc is returned when a selector is derived without a hash
	// function.
	ErrNoHashFunc = errors.New("abi: no hash function given")
)

// Known-but-unsupported types are kept apart from unknown ones so callers can
// tell them apart. All of them are schema errors.
var (
	ErrFixedPointUnsupported = fmt.Errorf("%w: fixed-point types are not supported", ErrSchema)
	ErrFunctionUnsupported   = fmt.Errorf("%w: function type is not supported", ErrSchema)
	ErrUnsupportedType       = fmt.Errorf("%w: unsupported type", ErrSchema)
)

// typeErr returns a formatted value/type mismatch error.
// typeErr 返回格式化的类型不匹配错误。
func typeErr(expected, got interface{}) error {
	return fmt.Errorf("%w: cannot use %v as type %v as argument", ErrValueType, got, expected)
}

// rangeErr returns a formatted out-of-range error.
func rangeErr(value interface{}, typ string) error {
	return fmt.Errorf("%w: cannot fit %v into %s", ErrRange, value, typ)
}
