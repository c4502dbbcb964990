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
	"encoding/json"
	"io"
	"os"

	"github.com/sunyihoo/go-rosettanet/accounts/rosettanet"
	"github.com/sunyihoo/go-rosettanet/cmd/utils"
	"github.com/sunyihoo/go-rosettanet/internal/flags"
	"github.com/urfave/cli/v2"
)

var multicallCommand = &cli.Command{
	Action: multicallCmd,
	Name:   "multicall",
	Usage:  "Build a Rosettanet multicall transaction from Starknet calls",
	Flags: []cli.Flag{
		utils.CallsFileFlag,
		utils.FromFlag,
		utils.MulticallAddressFlag,
		utils.ValueFlag,
	},
	Description: `
The multicall command reads a JSON array of Starknet calls

    [{"contractAddress": "0x...", "entrypoint": "transfer", "calldata": ["0x1"]}]

and prints the Ethereum transaction object carrying them as multicall calldata.`,
}

func multicallCmd(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	builder, err := rosettanet.NewBuilder(cfg.Rosettanet)
	if err != nil {
		return err
	}
	calls, err := readCalls(ctx.String(utils.CallsFileFlag.Name))
	if err != nil {
		return err
	}
	tx, err := builder.CreateEthTxObject(ctx.String(utils.FromFlag.Name), calls)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(tx)
}

func readCalls(file string) ([]rosettanet.CallObject, error) {
	var r io.Reader = os.Stdin
	if file != "" && file != "-" {
		f, err := os.Open(flags.ExpandPath(file))
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return rosettanet.DecodeCalls(r)
}
