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
	"testing"
)

func TestNewType(t *testing.T) {
	t.Parallel()
	tests := []struct {
		desc       ParameterDescription
		kind       byte
		size       int
		stringKind string
	}{
		{ParameterDescription{Type: "bool"}, BoolTy, 0, "bool"},
		{ParameterDescription{Type: "uint8"}, UintTy, 8, "uint8"},
		{ParameterDescription{Type: "int256"}, IntTy, 256, "int256"},
		{ParameterDescription{Type: "address"}, AddressTy, 20, "address"},
		{ParameterDescription{Type: "bytes"}, BytesTy, 0, "bytes"},
		{ParameterDescription{Type: "bytes1"}, FixedBytesTy, 1, "bytes1"},
		{ParameterDescription{Type: "bytes32"}, FixedBytesTy, 32, "bytes32"},
		{ParameterDescription{Type: "string"}, StringTy, 0, "string"},
		{ParameterDescription{Type: "uint256[]"}, SliceTy, 0, "uint256[]"},
		{ParameterDescription{Type: "uint256[3]"}, ArrayTy, 3, "uint256[3]"},
		{ParameterDescription{Type: "string[2][]"}, SliceTy, 0, "string[2][]"},
		{ParameterDescription{Type: " uint32 "}, UintTy, 32, "uint32"},
		{
			ParameterDescription{Type: "tuple", Components: []ParameterDescription{
				{Name: "a", Type: "uint256"},
				{Name: "b", Type: "bytes"},
			}},
			TupleTy, 0, "(uint256,bytes)",
		},
		{
			ParameterDescription{Type: "tuple[2]", Components: []ParameterDescription{
				{Name: "a", Type: "bool"},
			}},
			ArrayTy, 2, "(bool)[2]",
		},
		{ParameterDescription{Type: "tuple", Components: []ParameterDescription{}}, TupleTy, 0, "()"},
	}
	for i, test := range tests {
		typ, err := NewType(test.desc)
		if err != nil {
			t.Fatalf("test %d (%s): unexpected error: %v", i, test.desc.Type, err)
		}
		if typ.T != test.kind {
			t.Errorf("test %d (%s): kind mismatch: have %d, want %d", i, test.desc.Type, typ.T, test.kind)
		}
		if typ.Size != test.size {
			t.Errorf("test %d (%s): size mismatch: have %d, want %d", i, test.desc.Type, typ.Size, test.size)
		}
		if typ.String() != test.stringKind {
			t.Errorf("test %d (%s): string mismatch: have %s, want %s", i, test.desc.Type, typ, test.stringKind)
		}
	}
}

func TestNewTypeNested(t *testing.T) {
	t.Parallel()
	typ, err := NewType(ParameterDescription{Type: "uint8[2][]"})
	if err != nil {
		t.Fatal(err)
	}
	if typ.T != SliceTy || typ.Elem.T != ArrayTy || typ.Elem.Size != 2 || typ.Elem.Elem.T != UintTy {
		t.Errorf("unexpected type tree for %s", typ)
	}
}

func TestNewTypeErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		typ  string
		want error
	}{
		{"uint", ErrSchema},
		{"int", ErrSchema},
		{"uint7", ErrSchema},
		{"uint0", ErrSchema},
		{"int264", ErrSchema},
		{"bytes0", ErrSchema},
		{"bytes33", ErrSchema},
		{"fixed128x18", ErrFixedPointUnsupported},
		{"ufixed128x18", ErrFixedPointUnsupported},
		{"function", ErrFunctionUnsupported},
		{"uint256[x]", ErrUnsupportedType},
		{"mapping", ErrUnsupportedType},
		{"tuple", ErrSchema},
		{"", ErrUnsupportedType},
	}
	for _, test := range tests {
		_, err := NewType(ParameterDescription{Type: test.typ})
		if !errors.Is(err, test.want) {
			t.Errorf("%q: have error %v, want %v", test.typ, err, test.want)
		}
		if !errors.Is(err, ErrSchema) {
			t.Errorf("%q: error %v is not a schema error", test.typ, err)
		}
	}
}
