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
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Kind enumerates the shapes a Value can take.
type Kind uint8

const (
	InvalidKind Kind = iota
	BytesKind
	TextKind
	BoolKind
	IntegerKind
	SequenceKind
	MappingKind
)

func (k Kind) String() string {
	switch k {
	case BytesKind:
		return "bytes"
	case TextKind:
		return "text"
	case BoolKind:
		return "bool"
	case IntegerKind:
		return "integer"
	case SequenceKind:
		return "sequence"
	case MappingKind:
		return "mapping"
	default:
		return "invalid"
	}
}

// Value is a runtime value supplied for a single parameter. It is one of raw
// bytes, text, a boolean, an arbitrary precision integer, an ordered sequence
// of values (arrays and positional tuples) or a named field mapping (tuples).
//
// Integers are used for every numeric type as well as for addresses and fixed
// size byte arrays, since most ABI integers do not fit a native Go integer.
// Value 是为单个参数提供的运行时值。整数用于所有数值类型以及地址和定长字节数组。
type Value struct {
	kind    Kind
	bytes   []byte
	text    string
	boolean bool
	integer *big.Int
	width   int // byte length of a FixedBytes value, 0 for plain integers
	seq     []Value
	fields  map[string]Value
}

// Bytes creates a raw byte value, encodable into bytes.
func Bytes(b []byte) Value {
	return Value{kind: BytesKind, bytes: common.CopyBytes(b)}
}

// Text creates a string value.
func Text(s string) Value {
	return Value{kind: TextKind, text: s}
}

// Bool creates a boolean value.
func Bool(b bool) Value {
	return Value{kind: BoolKind, boolean: b}
}

// Int creates an integer value. The integer is copied.
func Int(i *big.Int) Value {
	if i == nil {
		return Value{}
	}
	return Value{kind: IntegerKind, integer: new(big.Int).Set(i)}
}

// Int64 creates an integer value from a native signed integer.
func Int64(i int64) Value {
	return Value{kind: IntegerKind, integer: big.NewInt(i)}
}

// Uint64 creates an integer value from a native unsigned integer.
func Uint64(i uint64) Value {
	return Value{kind: IntegerKind, integer: new(big.Int).SetUint64(i)}
}

// Uint256 creates an integer value from a 256 bit unsigned integer.
func Uint256(i *uint256.Int) Value {
	if i == nil {
		return Value{}
	}
	return Value{kind: IntegerKind, integer: i.ToBig()}
}

// Address creates the integer value of an account address.
func Address(a common.Address) Value {
	return Value{kind: IntegerKind, integer: new(big.Int).SetBytes(a[:])}
}

// FixedBytes creates the value of a bytesN argument from its raw bytes, e.g.
// FixedBytes([]byte("abcd")) for a bytes4 parameter. Shorter input is right
// padded with zeroes, longer input does not fit. The value is still an
// integer, the byte length is only kept to place it.
// FixedBytes 从原始字节创建 bytesN 参数值，较短的输入在右侧补零。
func FixedBytes(b []byte) Value {
	return Value{kind: IntegerKind, integer: new(big.Int).SetBytes(b), width: len(b)}
}

// Seq creates an ordered sequence, used for arrays and positional tuples.
func Seq(values ...Value) Value {
	return Value{kind: SequenceKind, seq: append([]Value{}, values...)}
}

// Mapping creates a named field mapping, used for tuples.
func Mapping(fields map[string]Value) Value {
	copied := make(map[string]Value, len(fields))
	for name, v := range fields {
		copied[name] = v
	}
	return Value{kind: MappingKind, fields: copied}
}

// Kind returns the shape of the value.
func (v Value) Kind() Kind { return v.kind }

// Len returns the number of elements of a sequence or mapping.
func (v Value) Len() int {
	switch v.kind {
	case SequenceKind:
		return len(v.seq)
	case MappingKind:
		return len(v.fields)
	}
	return 0
}

// Index returns the i'th element of a sequence.
func (v Value) Index(i int) Value {
	if v.kind != SequenceKind || i < 0 || i >= len(v.seq) {
		return Value{}
	}
	return v.seq[i]
}

// Field returns the named field of a mapping.
func (v Value) Field(name string) (Value, bool) {
	if v.kind != MappingKind {
		return Value{}, false
	}
	f, ok := v.fields[name]
	return f, ok
}

// Integer returns a copy of the integer held by the value, or nil.
func (v Value) Integer() *big.Int {
	if v.kind != IntegerKind {
		return nil
	}
	return new(big.Int).Set(v.integer)
}

// String implements fmt.Stringer, used in error messages.
func (v Value) String() string {
	switch v.kind {
	case BytesKind:
		return fmt.Sprintf("%#x", v.bytes)
	case TextKind:
		return fmt.Sprintf("%q", v.text)
	case BoolKind:
		return fmt.Sprint(v.boolean)
	case IntegerKind:
		return v.integer.String()
	case SequenceKind:
		return fmt.Sprint(v.seq)
	case MappingKind:
		return fmt.Sprint(v.fields)
	default:
		return "<invalid>"
	}
}
