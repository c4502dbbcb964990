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

package rosettanet

import (
	"math/big"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/go-rosettanet/crypto"
)

func TestDecodeCalls(t *testing.T) {
	t.Parallel()
	calls, err := DecodeCalls(strings.NewReader(`[
		{"contractAddress": "0x49d36570d4e46f48e99674bd3fcc84644ddd6b96f7c741b1562b82f9e004dc7", "entrypoint": "transfer", "calldata": ["0x1", "100", "0"]},
		{"contractAddress": "0x1", "entrypoint": "0x2", "calldata": []}
	]`))
	require.NoError(t, err)
	require.Len(t, calls, 2)
	require.Equal(t, "transfer", calls[0].Entrypoint)
	require.Equal(t, []string{"0x1", "100", "0"}, calls[0].Calldata)
	require.Empty(t, calls[1].Calldata)
}

func TestDecodeCallsInvalid(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"not json":         `{`,
		"not a list":       `{"contractAddress": "0x1"}`,
		"unknown field":    `[{"contractAddress": "0x1", "entrypoint": "a", "calldata": [], "to": "0x2"}]`,
		"no calls":         `[]`,
		"missing address":  `[{"entrypoint": "transfer", "calldata": []}]`,
		"missing selector": `[{"contractAddress": "0x1", "calldata": []}]`,
		"missing calldata": `[{"contractAddress": "0x1", "entrypoint": "transfer"}]`,
		"empty word":       `[{"contractAddress": "0x1", "entrypoint": "transfer", "calldata": ["0x1", ""]}]`,
	}
	for name, input := range tests {
		_, err := DecodeCalls(strings.NewReader(input))
		require.Error(t, err, name)
	}
}

func TestValidateCalls(t *testing.T) {
	t.Parallel()
	require.ErrorIs(t, ValidateCalls(nil), errNoCalls)

	err := ValidateCalls([]CallObject{
		{ContractAddress: "0x1", Entrypoint: "a", Calldata: []string{}},
		{ContractAddress: "0x1", Calldata: []string{}},
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Equal(t, "Entrypoint", verrs[0].Field())
	require.Contains(t, err.Error(), "call 1")
}

func TestParseFelt(t *testing.T) {
	t.Parallel()
	for input, want := range map[string]int64{
		"0":     0,
		"0x0":   0,
		"100":   100,
		"0x64":  100,
		"0XfF":  255,
		"65535": 65535,
	} {
		got, err := ParseFelt(input)
		require.NoError(t, err, input)
		require.Zero(t, got.Cmp(big.NewInt(want)), input)
	}

	max := new(big.Int).Sub(crypto.FeltModulus(), big.NewInt(1))
	got, err := ParseFelt("0x" + max.Text(16))
	require.NoError(t, err)
	require.Zero(t, got.Cmp(max))

	for _, input := range []string{"", "0x", "-1", "abc", "0xzz", "1.5", "0x" + crypto.FeltModulus().Text(16)} {
		_, err := ParseFelt(input)
		require.ErrorIs(t, err, errInvalidFelt, input)
	}
}

func TestResolveEntrypoint(t *testing.T) {
	t.Parallel()
	sel, err := ResolveEntrypoint("transfer")
	require.NoError(t, err)
	require.Equal(t, "83afd3f4caedc6eebf44246fe54e38c95e3179a5ec9ea81740eca5b482d12e", sel.Text(16))

	sel, err = ResolveEntrypoint("0x83afd3f4caedc6eebf44246fe54e38c95e3179a5ec9ea81740eca5b482d12e")
	require.NoError(t, err)
	require.Equal(t, "83afd3f4caedc6eebf44246fe54e38c95e3179a5ec9ea81740eca5b482d12e", sel.Text(16))

	_, err = ResolveEntrypoint("0xnothex")
	require.ErrorIs(t, err, errInvalidFelt)
}

func TestResolveCalls(t *testing.T) {
	t.Parallel()
	calls, err := ResolveCalls([]CallObject{
		{ContractAddress: "0x10", Entrypoint: "0x20", Calldata: []string{"1", "0x2"}},
	})
	require.NoError(t, err)
	require.Len(t, calls, 1)
	require.Zero(t, calls[0].Target.Cmp(big.NewInt(0x10)))
	require.Zero(t, calls[0].Selector.Cmp(big.NewInt(0x20)))
	require.Len(t, calls[0].Calldata, 2)
	require.Zero(t, calls[0].Calldata[1].Cmp(big.NewInt(2)))

	_, err = ResolveCalls([]CallObject{
		{ContractAddress: "0x10", Entrypoint: "0x20", Calldata: []string{"1", "-2"}},
	})
	require.ErrorIs(t, err, errInvalidFelt)
	require.Contains(t, err.Error(), "calldata 1")
}
