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
	"regexp"
	"strconv"
	"strings"
)

// Type enumerator
const (
	IntTy byte = iota
	UintTy
	BoolTy
	StringTy
	SliceTy
	ArrayTy
	TupleTy
	AddressTy
	FixedBytesTy
	BytesTy
)

// Type is a resolved parameter type. A parameter description is resolved
// once into a tree of Types, the encoder only dispatches on T afterwards.
// Type 是解析后的参数类型。参数描述只解析一次，编码时仅根据 T 分派。
type Type struct {
	Elem *Type // 嵌套类型（数组或切片的元素类型）
	Size int   // 类型的大小（例如 uint256 的 256，数组长度，bytes32 的 32）
	T    byte  // 我们的自定义类型检查 Our own type checking

	stringKind string // canonical type string, used for signatures and errors

	// Tuple relative fields
	TupleElems    []*Type  // 所有元组字段的类型信息 Type information of all tuple fields
	TupleRawNames []string // 所有元组字段的原始名称 Raw name of all tuple fields
}

var (
	// arrayRegex splits the outermost array suffix off a type,
	// e.g. "uint256[2][]" into "uint256[2]" and "".
	arrayRegex = regexp.MustCompile(`^(.*)\[([0-9]*)\]$`)

	intRegex        = regexp.MustCompile(`^(u?)int([0-9]*)$`)
	fixedBytesRegex = regexp.MustCompile(`^bytes([0-9]+)$`)
	fixedPointRegex = regexp.MustCompile(`^u?fixed[0-9]+x[0-9]+$`)
)

// NewType resolves a parameter description into a Type.
// NewType 将参数描述解析为类型树。
func NewType(desc ParameterDescription) (Type, error) {
	return newType(strings.TrimSpace(desc.Type), desc.Components)
}

func newType(t string, components []ParameterDescription) (typ Type, err error) {
	// Arrays first: a fixed array of tuples is an array, not a tuple.
	// 先处理数组：元组的定长数组是数组而不是元组。
	if m := arrayRegex.FindStringSubmatch(t); m != nil {
		elem, err := newType(m[1], components)
		if err != nil {
			return Type{}, err
		}
		typ.Elem = &elem
		if m[2] == "" {
			typ.T = SliceTy
		} else {
			typ.T = ArrayTy
			typ.Size, err = strconv.Atoi(m[2])
			if err != nil {
				return Type{}, fmt.Errorf("%w: error parsing array size of %s: %v", ErrSchema, t, err)
			}
		}
		typ.stringKind = elem.stringKind + "[" + m[2] + "]"
		return typ, nil
	}
	typ.stringKind = t

	switch t {
	case "tuple":
		if components == nil {
			return Type{}, fmt.Errorf("%w: tuple type has no components", ErrSchema)
		}
		parts := make([]string, len(components))
		for i, c := range components {
			cType, err := NewType(c)
			if err != nil {
				return Type{}, err
			}
			typ.TupleElems = append(typ.TupleElems, &cType)
			typ.TupleRawNames = append(typ.TupleRawNames, c.Name)
			parts[i] = cType.stringKind
		}
		typ.T = TupleTy
		typ.stringKind = "(" + strings.Join(parts, ",") + ")"
		return typ, nil
	case "bytes":
		typ.T = BytesTy
		return typ, nil
	case "string":
		typ.T = StringTy
		return typ, nil
	case "bool":
		typ.T = BoolTy
		return typ, nil
	case "address":
		typ.T = AddressTy
		typ.Size = 20
		return typ, nil
	case "function":
		return Type{}, fmt.Errorf("%w: %s", ErrFunctionUnsupported, t)
	}

	if m := intRegex.FindStringSubmatch(t); m != nil {
		// The compiler always emits the size, a bare int/uint would hash to
		// the wrong selector.
		if m[2] == "" {
			return Type{}, fmt.Errorf("%w: %s requires an explicit bit size", ErrSchema, t)
		}
		size, err := strconv.Atoi(m[2])
		if err != nil || size < 8 || size > 256 || size%8 != 0 {
			return Type{}, fmt.Errorf("%w: %s: integer size must be a multiple of 8 in [8, 256]", ErrSchema, t)
		}
		typ.Size = size
		if m[1] == "u" {
			typ.T = UintTy
		} else {
			typ.T = IntTy
		}
		return typ, nil
	}
	if m := fixedBytesRegex.FindStringSubmatch(t); m != nil {
		size, err := strconv.Atoi(m[1])
		if err != nil || size < 1 || size > 32 {
			return Type{}, fmt.Errorf("%w: %s: fixed bytes size must be in [1, 32]", ErrSchema, t)
		}
		typ.T = FixedBytesTy
		typ.Size = size
		return typ, nil
	}
	if fixedPointRegex.MatchString(t) {
		return Type{}, fmt.Errorf("%w: %s", ErrFixedPointUnsupported, t)
	}
	return Type{}, fmt.Errorf("%w: %q", ErrUnsupportedType, t)
}

// String implements Stringer. It returns the canonical type, tuples are
// rendered as their component list.
// String 实现 Stringer 接口，返回规范类型字符串。
func (t Type) String() (out string) {
	return t.stringKind
}
