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
	"fmt"
)

// 参数编码遵循固定宽度（32 字节对齐）和动态偏移量规则。
// 静态类型（如 uint256、bool）在编码时占用固定长度。
// 动态类型（如 string、bytes）在编码时包含偏移量和实际内容。

// ParameterDescription is the unresolved schema of a single parameter, as it
// appears in a JSON ABI or is produced by ParseSignature. Components is only
// meaningful for tuple types; a nil slice means the components are absent.
// ParameterDescription 是单个参数未解析的描述。Components 仅对元组类型有意义。
type ParameterDescription struct {
	Name         string                 `json:"name"`
	Type         string                 `json:"type"`
	InternalType string                 `json:"internalType,omitempty"`
	Components   []ParameterDescription `json:"components,omitempty"`
}

// Argument holds the name of the argument and the corresponding resolved type.
// Argument 结构体保存参数的名称和对应的类型。
type Argument struct {
	Name string
	Type Type
}

type Arguments []Argument

// NewArguments resolves a list of parameter descriptions once, so that the
// same schema can be used for many encodings.
// NewArguments 一次性解析参数描述列表，以便同一模式可以多次用于编码。
func NewArguments(descs []ParameterDescription) (Arguments, error) {
	args := make(Arguments, len(descs))
	for i, desc := range descs {
		typ, err := NewType(desc)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, desc.Name, err)
		}
		args[i] = Argument{Name: desc.Name, Type: typ}
	}
	return args, nil
}

// Encode performs the operation values -> ABI data, laying the arguments out
// as a head/tail block.
// Encode 将参数值编码为 ABI 数据，按头部/尾部布局排列。
func (arguments Arguments) Encode(values []Value) ([]byte, error) {
	// Make sure arguments match up and pack them
	// 确保参数数量匹配。
	if len(values) != len(arguments) {
		return nil, fmt.Errorf("%w: got %d for %d", ErrLengthMismatch, len(values), len(arguments))
	}
	slots := make([]EncodedSlot, len(arguments))
	for i, arg := range arguments {
		slot, err := arg.Type.pack(values[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, arg.Name, err)
		}
		slots[i] = slot
	}
	return EncodeDynamicData(slots), nil
}

// EncodeParameters encodes values against descs.
func EncodeParameters(descs []ParameterDescription, values []Value) ([]byte, error) {
	if len(descs) != len(values) {
		return nil, fmt.Errorf("%w: got %d for %d", ErrLengthMismatch, len(values), len(descs))
	}
	args, err := NewArguments(descs)
	if err != nil {
		return nil, err
	}
	return args.Encode(values)
}

// EncodeParameter encodes a single value against its description.
// EncodeParameter 根据参数描述编码单个值。
func EncodeParameter(desc ParameterDescription, v Value) (EncodedSlot, error) {
	typ, err := NewType(desc)
	if err != nil {
		return EncodedSlot{}, err
	}
	return typ.pack(v)
}
