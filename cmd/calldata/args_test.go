// Copyright 2024 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"context"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/go-rosettanet/accounts/abi"
	"github.com/sunyihoo/go-rosettanet/crypto"
)

func resolve(t *testing.T, signature string) (abi.FunctionDescription, abi.Arguments) {
	t.Helper()
	f, err := abi.ParseSignature(signature)
	require.NoError(t, err)
	args, err := abi.NewArguments(f.Inputs)
	require.NoError(t, err)
	return f, args
}

func TestParseArguments(t *testing.T) {
	t.Parallel()
	tests := []struct {
		signature string
		inputs    []string
		want      string
	}{
		{
			"baz(uint32,bool)",
			[]string{"69", "true"},
			"0xcdcd77c0" +
				"0000000000000000000000000000000000000000000000000000000000000045" +
				"0000000000000000000000000000000000000000000000000000000000000001",
		},
		{
			"sam(bytes,bool,uint256[])",
			[]string{"0x64617665", "1", "[1, \"0x2\", 3]"},
			"0xa5643bf2" +
				"0000000000000000000000000000000000000000000000000000000000000060" +
				"0000000000000000000000000000000000000000000000000000000000000001" +
				"00000000000000000000000000000000000000000000000000000000000000a0" +
				"0000000000000000000000000000000000000000000000000000000000000004" +
				"6461766500000000000000000000000000000000000000000000000000000000" +
				"0000000000000000000000000000000000000000000000000000000000000003" +
				"0000000000000000000000000000000000000000000000000000000000000001" +
				"0000000000000000000000000000000000000000000000000000000000000002" +
				"0000000000000000000000000000000000000000000000000000000000000003",
		},
		{
			"transfer(address,uint256)",
			[]string{"0x00000000219ab540356cBB839Cbe05303d7705Fa", "0x10"},
			"0xa9059cbb" +
				"00000000000000000000000000000000219ab540356cbb839cbe05303d7705fa" +
				"0000000000000000000000000000000000000000000000000000000000000010",
		},
	}
	for _, test := range tests {
		f, args := resolve(t, test.signature)
		values, err := parseArguments(args, test.inputs)
		require.NoError(t, err, test.signature)
		data, err := abi.EncodeMethod(context.Background(), crypto.Keccak256Big, f, values)
		require.NoError(t, err, test.signature)
		require.Equal(t, test.want, hexutil.Encode(data), test.signature)
	}
}

func TestParseArgumentComposite(t *testing.T) {
	t.Parallel()
	_, args := resolve(t, "fill((address maker, int8 delta, bytes2 tag)[] orders, string note)")
	values, err := parseArguments(args, []string{
		`[{"maker": "0x1111111111111111111111111111111111111111", "delta": -3, "tag": "0xbeef"},
		  ["0x2222222222222222222222222222222222222222", "-0x1", "0x0001"]]`,
		"hello",
	})
	require.NoError(t, err)
	require.Equal(t, abi.SequenceKind, values[0].Kind())
	require.Equal(t, 2, values[0].Len())

	first := values[0].Index(0)
	require.Equal(t, abi.MappingKind, first.Kind())
	delta, ok := first.Field("delta")
	require.True(t, ok)
	require.Equal(t, int64(-3), delta.Integer().Int64())

	second := values[0].Index(1)
	require.Equal(t, abi.SequenceKind, second.Kind())
	require.Equal(t, int64(-1), second.Index(1).Integer().Int64())
	require.Equal(t, int64(1), second.Index(2).Integer().Int64())

	require.Equal(t, abi.TextKind, values[1].Kind())

	_, err = args.Encode(values)
	require.NoError(t, err)
}

func TestParseArgumentsErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		signature string
		inputs    []string
		errText   string
	}{
		{"one(uint8)", nil, "wrong number of arguments"},
		{"one(uint8)", []string{"x"}, "invalid integer"},
		{"one(uint8)", []string{"--1"}, "invalid integer"},
		{"one(uint8)", []string{"-1"}, "out of range for uint8"},
		{"one(uint256[])", []string{`["-0x2"]`}, "out of range for uint256"},
		{"one(bool)", []string{"yes"}, "invalid boolean"},
		{"one(address)", []string{"0x1234"}, "invalid address"},
		{"one(bytes4)", []string{"0x0102"}, "have 2 bytes"},
		{"one(bytes)", []string{"beef"}, "invalid bytes"},
		{"one(uint8[])", []string{"[1,"}, "invalid JSON"},
		{"one(uint8[])", []string{`{"a": 1}`}, "expected JSON array"},
		{"one((uint8,bool))", []string{"[1]"}, "has 2 fields"},
		{"one((uint8,bool))", []string{"5"}, "expected JSON array or object"},
		{"one(uint8[])", []string{"[true]"}, "unexpected boolean"},
		{"one(uint8[])", []string{"[null]"}, "unexpected JSON value"},
	}
	for _, test := range tests {
		_, args := resolve(t, test.signature)
		_, err := parseArguments(args, test.inputs)
		require.Error(t, err, test.signature)
		require.True(t, strings.Contains(err.Error(), test.errText), "%s: %v", test.signature, err)
	}
}

func TestParseSelector(t *testing.T) {
	t.Parallel()
	sel, err := parseSelector("0x76971d7f")
	require.NoError(t, err)
	require.Equal(t, uint32(0x76971d7f), sel)

	for _, input := range []string{"", "76971d7f", "0x76971d", "0x76971d7f00"} {
		_, err := parseSelector(input)
		require.Error(t, err, input)
	}
}

func TestFindFunction(t *testing.T) {
	t.Parallel()
	functions, err := abi.JSON(strings.NewReader(`[
		{"type": "function", "name": "mint", "inputs": [{"name": "to", "type": "address"}]},
		{"type": "function", "name": "mint", "inputs": [{"name": "to", "type": "address"}, {"name": "n", "type": "uint256"}]},
		{"type": "function", "name": "burn", "inputs": [{"name": "n", "type": "uint256"}]}
	]`))
	require.NoError(t, err)

	f, err := findFunction(functions, "burn")
	require.NoError(t, err)
	require.Equal(t, "burn", f.Name)

	f, err = findFunction(functions, "mint(address,uint256)")
	require.NoError(t, err)
	require.Len(t, f.Inputs, 2)

	_, err = findFunction(functions, "mint")
	require.ErrorIs(t, err, errAmbiguousMethod)

	_, err = findFunction(functions, "approve")
	require.Error(t, err)
}
