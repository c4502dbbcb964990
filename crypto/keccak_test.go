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

package crypto

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestKeccak256(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"abc", "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"},
		{"transfer(address,uint256)", "a9059cbb2ab09eb219583f4a59a5d0623ade346d962bcd4e46b11da047c9049b"},
	}
	for _, test := range tests {
		if got := Keccak256([]byte(test.input)); common.Bytes2Hex(got) != test.want {
			t.Errorf("%q: have %x, want %s", test.input, got, test.want)
		}
		if got := Keccak256Hash([]byte(test.input)); got != common.HexToHash(test.want) {
			t.Errorf("%q: hash mismatch %v", test.input, got)
		}
	}
	// Split input hashes the same as the concatenation.
	if a, b := Keccak256([]byte("ab"), []byte("c")), Keccak256([]byte("abc")); common.Bytes2Hex(a) != common.Bytes2Hex(b) {
		t.Errorf("split input mismatch: %x != %x", a, b)
	}
}

func TestKeccak256Big(t *testing.T) {
	t.Parallel()
	digest, err := Keccak256Big(context.Background(), []byte("transfer(address,uint256)"))
	if err != nil {
		t.Fatal(err)
	}
	if want := common.HexToHash("a9059cbb2ab09eb219583f4a59a5d0623ade346d962bcd4e46b11da047c9049b").Big(); digest.Cmp(want) != 0 {
		t.Errorf("have %x, want %x", digest, want)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Keccak256Big(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("have error %v, want %v", err, context.Canceled)
	}
	var noctx context.Context
	if _, err := Keccak256Big(noctx, nil); !errors.Is(err, ErrNilContext) {
		t.Errorf("have error %v, want %v", err, ErrNilContext)
	}
}

func TestHashDataReusesState(t *testing.T) {
	t.Parallel()
	kh := NewKeccakState()
	first := HashData(kh, []byte("abc"))
	second := HashData(kh, []byte("abc"))
	if first != second {
		t.Errorf("state not reset between calls: %x != %x", first, second)
	}
	if want := common.HexToHash("4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"); first != want {
		t.Errorf("have %x, want %x", first, want)
	}
}

func TestStarknetKeccak(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"", "01d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"abc", "0203657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"},
		{"test", "0022ff5f21f0b81b113e63f7db6da94fedef11b2119b4088b89664fb9a3cb658"},
		{"starknet", "014909ac0d4a034239ea4f7265fac97d189ff7430fec65bce3879ab4b5a8d058"},
		{"keccak", "0335a135a69c769066bbb4d17b2fa3ec922c028d4e4bf9d0402e6f7c12b31813"},
	}
	for _, test := range tests {
		d := StarknetKeccak([]byte(test.input))
		if got := fmt.Sprintf("%x", d.Bytes()); got != test.want {
			t.Errorf("%q: have %s, want %s", test.input, got, test.want)
		}
	}
}

func TestSelectorFromName(t *testing.T) {
	t.Parallel()
	sel := SelectorFromName("transfer")
	if sel.BitLen() > 250 {
		t.Errorf("selector %x has more than 250 bits", sel)
	}
	if sel.Cmp(FeltModulus()) >= 0 {
		t.Errorf("selector %x is not a felt", sel)
	}
	// mainnet ERC-20 transfer selector
	want, _ := new(big.Int).SetString("83afd3f4caedc6eebf44246fe54e38c95e3179a5ec9ea81740eca5b482d12e", 16)
	if sel.Cmp(want) != 0 {
		t.Errorf("have %x, want %x", sel, want)
	}
}
