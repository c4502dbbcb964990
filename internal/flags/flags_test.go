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

package flags

import (
	"flag"
	"math/big"
	"os"
	"os/user"
	"runtime"
	"testing"

	"github.com/urfave/cli/v2"
)

func TestPathExpansion(t *testing.T) {
	user, _ := user.Current()
	var tests map[string]string

	if runtime.GOOS == "windows" {
		tests = map[string]string{
			`/home/someuser/tmp`: `\home\someuser\tmp`,
			`~/tmp`:              user.HomeDir + `\tmp`,
			`$DDDXXX/a/b`:        `\tmp\a\b`,
			`-`:                  `-`,
		}
	} else {
		tests = map[string]string{
			`/home/someuser/tmp`: "/home/someuser/tmp",
			`~/tmp`:              user.HomeDir + "/tmp",
			`$DDDXXX/a/b`:        "/tmp/a/b",
			`/a/b/`:              "/a/b",
			`-`:                  "-",
			``:                   "",
		}
	}
	os.Setenv(`DDDXXX`, `/tmp`)
	os.Setenv(`HOME`, user.HomeDir)
	for test, expected := range tests {
		got := ExpandPath(test)
		if got != expected {
			t.Errorf(`test %s, got %s, expected %s\n`, test, got, expected)
		}
	}
}

func TestBigFlag(t *testing.T) {
	f := &BigFlag{Name: "value", Value: big.NewInt(7)}
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := f.Apply(set); err != nil {
		t.Fatal(err)
	}
	if f.GetDefaultText() != "7" {
		t.Errorf("default text: have %s, want 7", f.GetDefaultText())
	}
	ctx := cli.NewContext(cli.NewApp(), set, nil)
	if v := GlobalBig(ctx, "value"); v.Int64() != 7 {
		t.Errorf("default: have %v, want 7", v)
	}
	if err := set.Parse([]string{"--value", "0x100"}); err != nil {
		t.Fatal(err)
	}
	if v := GlobalBig(ctx, "value"); v.Int64() != 256 {
		t.Errorf("have %v, want 256", v)
	}
	if f.GetDefaultText() != "7" {
		t.Errorf("default text changed to %s", f.GetDefaultText())
	}
}

func TestBigValueSet(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"", "x", "-1", "0x"} {
		if err := new(bigValue).Set(input); err == nil {
			t.Errorf("%q: expected error", input)
		}
	}
	v := new(bigValue)
	if err := v.Set(" 42 "); err != nil || v.String() != "42" {
		t.Errorf("have %s (%v), want 42", v, err)
	}
}
