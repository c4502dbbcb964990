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
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/go-rosettanet/accounts/abi"
	"golang.org/x/sync/errgroup"
)

func words(ws ...int64) string {
	var b strings.Builder
	for _, w := range ws {
		fmt.Fprintf(&b, "%064x", w)
	}
	return b.String()
}

func TestEncodeMulticall(t *testing.T) {
	t.Parallel()
	calls := []Call{{
		Target:   big.NewInt(1),
		Selector: big.NewInt(2),
		Calldata: []*big.Int{big.NewInt(3)},
	}}
	data, err := EncodeMulticall(calls)
	require.NoError(t, err)
	require.Equal(t, "76971d7f"+words(0x20, 1, 0x20, 1, 2, 0x60, 1, 3), common.Bytes2Hex(data))

	encoded, err := PrepareMulticallCalldata(calls)
	require.NoError(t, err)
	require.Equal(t, hexutil.Encode(data), encoded)
}

func TestEncodeMulticallBatch(t *testing.T) {
	t.Parallel()
	calls := []Call{
		{Target: big.NewInt(0xa), Selector: big.NewInt(0xb), Calldata: nil},
		{Target: big.NewInt(0xc), Selector: big.NewInt(0xd), Calldata: []*big.Int{big.NewInt(5), big.NewInt(6)}},
	}
	data, err := EncodeMulticall(calls)
	require.NoError(t, err)

	want := "76971d7f" +
		words(0x20, 2) +
		// offsets of both calls, relative to the start of the element block
		words(0x40, 0xc0) +
		words(0xa, 0xb, 0x60, 0) +
		words(0xc, 0xd, 0x60, 2, 5, 6)
	require.Equal(t, want, common.Bytes2Hex(data))
}

func TestEncodeMulticallEmpty(t *testing.T) {
	t.Parallel()
	data, err := EncodeMulticall(nil)
	require.NoError(t, err)
	require.Equal(t, "76971d7f"+words(0x20, 0), common.Bytes2Hex(data))
}

func TestEncodeMulticallRange(t *testing.T) {
	t.Parallel()
	calls := []Call{{
		Target:   new(big.Int).Lsh(big.NewInt(1), 256),
		Selector: big.NewInt(1),
	}}
	_, err := EncodeMulticall(calls)
	require.ErrorIs(t, err, abi.ErrRange)
}

func TestMulticallSelector(t *testing.T) {
	t.Parallel()
	data, err := EncodeMulticall(nil)
	require.NoError(t, err)
	require.Equal(t, hexutil.Bytes{0x76, 0x97, 0x1d, 0x7f}, hexutil.Bytes(data[:4]))
}

func TestEncodeMulticallConcurrent(t *testing.T) {
	t.Parallel()
	calls := []Call{{Target: big.NewInt(1), Selector: big.NewInt(2), Calldata: []*big.Int{big.NewInt(3)}}}
	want, err := PrepareMulticallCalldata(calls)
	require.NoError(t, err)

	var g errgroup.Group
	results := make([]string, 16)
	for i := range results {
		g.Go(func() error {
			var err error
			results[i], err = PrepareMulticallCalldata(calls)
			return err
		})
	}
	require.NoError(t, g.Wait())
	for _, got := range results {
		require.Equal(t, want, got)
	}
	// inputs are left untouched
	require.Zero(t, calls[0].Calldata[0].Cmp(big.NewInt(3)))
}
