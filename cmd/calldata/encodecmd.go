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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/sunyihoo/go-rosettanet/accounts/abi"
	"github.com/sunyihoo/go-rosettanet/cmd/utils"
	"github.com/sunyihoo/go-rosettanet/crypto"
	"github.com/sunyihoo/go-rosettanet/internal/flags"
	"github.com/urfave/cli/v2"
)

var (
	selectorCommand = &cli.Command{
		Action:    selectorCmd,
		Name:      "selector",
		Usage:     "Print the canonical signature and selector of a function",
		ArgsUsage: "<signature>",
		Flags:     []cli.Flag{utils.ABIFileFlag},
		Description: `
The selector command resolves a function signature such as
"transfer(address to, uint256 amount)" and prints its canonical form
together with the first four bytes of its keccak256 hash.`,
	}
	encodeCommand = &cli.Command{
		Action:    encodeCmd,
		Name:      "encode",
		Usage:     "ABI encode a function call",
		ArgsUsage: "<signature> [arguments...]",
		Flags: []cli.Flag{
			utils.SelectorFlag,
			utils.RawFlag,
			utils.ABIFileFlag,
		},
		Description: `
The encode command encodes the arguments against the parameters of the given
signature and prints the calldata as hex. Integers are given in decimal or
0x prefixed hex, bytes as 0x prefixed hex and arrays or tuples as JSON, e.g.

    calldata encode "f(uint256[],(bool,string))" '[1,2]' '[true,"x"]'

With --abi the first argument names a function of the JSON ABI instead.`,
	}
)

var errAmbiguousMethod = errors.New("ambiguous method name")

func selectorCmd(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("need exactly one signature, got %d arguments", ctx.NArg())
	}
	f, err := lookupFunction(ctx, ctx.Args().First())
	if err != nil {
		return err
	}
	canonical, err := f.CanonicalSignature()
	if err != nil {
		return err
	}
	selector, err := abi.MethodSelector(ctx.Context, crypto.Keccak256Big, f)
	if err != nil {
		return err
	}
	fmt.Printf("0x%08x %s\n", selector, canonical)
	return nil
}

func encodeCmd(ctx *cli.Context) error {
	if err := flags.CheckExclusive(ctx, utils.SelectorFlag, utils.RawFlag); err != nil {
		return err
	}
	if ctx.NArg() < 1 {
		return errors.New("missing function signature")
	}
	f, err := lookupFunction(ctx, ctx.Args().First())
	if err != nil {
		return err
	}
	args, err := abi.NewArguments(f.Inputs)
	if err != nil {
		return err
	}
	values, err := parseArguments(args, ctx.Args().Tail())
	if err != nil {
		return err
	}

	var data []byte
	switch {
	case ctx.Bool(utils.RawFlag.Name):
		data, err = args.Encode(values)
	case ctx.IsSet(utils.SelectorFlag.Name):
		var selector uint32
		if selector, err = parseSelector(ctx.String(utils.SelectorFlag.Name)); err != nil {
			return err
		}
		data, err = args.EncodeWithSelector(selector, values)
	default:
		data, err = abi.EncodeMethod(ctx.Context, crypto.Keccak256Big, f, values)
	}
	if err != nil {
		return err
	}
	log.Debug("Encoded calldata", "method", f.Name, "args", len(values), "size", len(data))
	fmt.Println(hexutil.Encode(data))
	return nil
}

// lookupFunction resolves the function to encode: a signature, or with --abi
// a method name or canonical signature from the JSON ABI file.
// lookupFunction 解析要编码的函数：签名，或在指定 --abi 时从 JSON ABI 中按名称查找。
func lookupFunction(ctx *cli.Context, name string) (abi.FunctionDescription, error) {
	if !ctx.IsSet(utils.ABIFileFlag.Name) {
		return abi.ParseSignature(name)
	}
	file := flags.ExpandPath(ctx.String(utils.ABIFileFlag.Name))
	r, err := os.Open(file)
	if err != nil {
		return abi.FunctionDescription{}, err
	}
	defer r.Close()

	functions, err := abi.JSON(r)
	if err != nil {
		return abi.FunctionDescription{}, fmt.Errorf("%s: %v", file, err)
	}
	return findFunction(functions, name)
}

func findFunction(functions []abi.FunctionDescription, name string) (abi.FunctionDescription, error) {
	var found []abi.FunctionDescription
	for _, f := range functions {
		if strings.Contains(name, "(") {
			if canonical, err := f.CanonicalSignature(); err == nil && canonical == name {
				return f, nil
			}
			continue
		}
		if f.Name == name {
			found = append(found, f)
		}
	}
	switch len(found) {
	case 0:
		return abi.FunctionDescription{}, fmt.Errorf("method %q not found in ABI", name)
	case 1:
		return found[0], nil
	default:
		return abi.FunctionDescription{}, fmt.Errorf("%w %q, use the canonical signature", errAmbiguousMethod, name)
	}
}
