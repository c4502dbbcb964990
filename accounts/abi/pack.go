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
	"fmt"
)

// 动态与静态类型 ：
// 动态类型（如字符串、动态字节数组和切片）需要额外的长度字段，
// 而静态类型（如定长字节数组和整数）则直接填充到 32 字节。

// pack encodes v according to t. Whether the result is dynamic is decided
// from the encoded elements: a fixed array or tuple is dynamic iff one of its
// elements is.
// pack 根据类型 t 编码值 v。定长数组或元组只要有一个元素是动态的，结果就是动态的。
func (t Type) pack(v Value) (EncodedSlot, error) {
	switch t.T {
	case ArrayTy:
		if v.kind != SequenceKind {
			return EncodedSlot{}, typeErr(t, v.kind)
		}
		if len(v.seq) != t.Size {
			return EncodedSlot{}, typeErr(t, fmt.Sprintf("sequence of length %d", len(v.seq)))
		}
		slots, err := t.Elem.packAll(v.seq)
		if err != nil {
			return EncodedSlot{}, err
		}
		return joinSlots(slots), nil

	case SliceTy:
		if v.kind != SequenceKind {
			return EncodedSlot{}, typeErr(t, v.kind)
		}
		slots, err := t.Elem.packAll(v.seq)
		if err != nil {
			return EncodedSlot{}, err
		}
		return EncodedSlot{Dynamic: true, Bytes: append(packNum(len(slots)), EncodeDynamicData(slots)...)}, nil

	case TupleTy:
		if v.kind != SequenceKind && v.kind != MappingKind {
			return EncodedSlot{}, typeErr(t, v.kind)
		}
		if len(t.TupleElems) == 0 {
			return EncodedSlot{Bytes: []byte{}}, nil
		}
		if v.kind == SequenceKind && len(v.seq) != len(t.TupleElems) {
			return EncodedSlot{}, typeErr(t, fmt.Sprintf("sequence of length %d", len(v.seq)))
		}
		slots := make([]EncodedSlot, len(t.TupleElems))
		for i, elem := range t.TupleElems {
			field, err := t.tupleField(v, i)
			if err != nil {
				return EncodedSlot{}, err
			}
			if slots[i], err = elem.pack(field); err != nil {
				return EncodedSlot{}, fmt.Errorf("field %s: %w", t.TupleRawNames[i], err)
			}
		}
		return joinSlots(slots), nil

	case BytesTy:
		if v.kind != BytesKind {
			return EncodedSlot{}, typeErr(t, v.kind)
		}
		return EncodedSlot{Dynamic: true, Bytes: PadAndLengthPrefix(v.bytes)}, nil

	case StringTy:
		if v.kind != TextKind {
			return EncodedSlot{}, typeErr(t, v.kind)
		}
		return EncodedSlot{Dynamic: true, Bytes: PadAndLengthPrefix([]byte(v.text))}, nil

	default:
		word, err := packElement(t, v)
		if err != nil {
			return EncodedSlot{}, err
		}
		return EncodedSlot{Bytes: word}, nil
	}
}

// packAll encodes every value against the same element type.
func (t Type) packAll(values []Value) ([]EncodedSlot, error) {
	slots := make([]EncodedSlot, len(values))
	for i, v := range values {
		var err error
		if slots[i], err = t.pack(v); err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
	}
	return slots, nil
}

// tupleField selects the i'th component of a tuple value, positionally for
// sequences and by component name for mappings.
func (t Type) tupleField(v Value, i int) (Value, error) {
	if v.kind == SequenceKind {
		return v.seq[i], nil
	}
	name := t.TupleRawNames[i]
	field, ok := v.fields[name]
	if !ok {
		return Value{}, fmt.Errorf("%w: field %q for tuple %v not found in the given mapping", ErrValueType, name, t)
	}
	return field, nil
}

// joinSlots wraps a set of encoded elements: dynamic members force a nested
// head/tail block, otherwise the elements are concatenated in place.
func joinSlots(slots []EncodedSlot) EncodedSlot {
	for _, slot := range slots {
		if slot.Dynamic {
			return EncodedSlot{Dynamic: true, Bytes: EncodeDynamicData(slots)}
		}
	}
	return EncodedSlot{Bytes: concatSlots(slots)}
}

// packElement packs a static elementary value into a single 32 byte word.
// packElement 将静态基本类型的值打包为一个 32 字节的字。
func packElement(t Type, v Value) ([]byte, error) {
	switch t.T {
	case BoolTy:
		if v.kind != BoolKind {
			return nil, typeErr(t, v.kind)
		}
		word := make([]byte, WordSize)
		if v.boolean {
			word[WordSize-1] = 1
		}
		return word, nil

	case IntTy, UintTy:
		if v.kind != IntegerKind {
			return nil, typeErr(t, v.kind)
		}
		// Range check against the declared width, store in a full word.
		// 按声明宽度检查范围，但始终存储为完整的 32 字节字。
		signed := t.T == IntTy
		if signed && !fitsSigned(v.integer, uint(t.Size)) {
			return nil, rangeErr(v.integer, t.String())
		}
		if !signed && !fitsUnsigned(v.integer, uint(t.Size)) {
			return nil, rangeErr(v.integer, t.String())
		}
		return IntegerToBytes(v.integer, WordSize, signed)

	case AddressTy:
		if v.kind != IntegerKind {
			return nil, typeErr(t, v.kind)
		}
		b, err := IntegerToBytes(v.integer, t.Size, false)
		if err != nil {
			return nil, rangeErr(v.integer, "address")
		}
		return PadLeftTo32Bytes(b), nil

	case FixedBytesTy:
		if v.kind != IntegerKind {
			return nil, typeErr(t, v.kind)
		}
		// The value's bytes, not its numeric magnitude, occupy the left side.
		// Raw bytes keep their own length, integers fill all N bytes.
		width := t.Size
		if v.width != 0 {
			if v.width > t.Size {
				return nil, rangeErr(fmt.Sprintf("%d bytes", v.width), t.String())
			}
			width = v.width
		}
		b, err := IntegerToBytes(v.integer, width, false)
		if err != nil {
			return nil, rangeErr(v.integer, t.String())
		}
		return PadRightTo32Bytes(b), nil

	default:
		return nil, fmt.Errorf("%w: could not pack element, unknown type: %v", ErrUnsupportedType, t.T)
	}
}
