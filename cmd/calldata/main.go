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

// calldata encodes Ethereum ABI calldata and Rosettanet multicall transactions.
package main

import (
	"os"

	"github.com/sunyihoo/go-rosettanet/cmd/utils"
	"github.com/sunyihoo/go-rosettanet/internal/debug"
	"github.com/sunyihoo/go-rosettanet/internal/flags"
	"github.com/urfave/cli/v2"
)

var app = flags.NewApp("Ethereum ABI calldata encoder for Rosettanet")

func init() {
	app.Commands = []*cli.Command{
		selectorCommand,
		encodeCommand,
		multicallCommand,
		dumpConfigCommand,
	}
	app.Flags = append([]cli.Flag{utils.ConfigFileFlag}, debug.Flags...)
	app.Before = func(ctx *cli.Context) error {
		return debug.Setup(ctx)
	}
	app.After = func(ctx *cli.Context) error {
		debug.Exit()
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		utils.Fatalf("%v", err)
	}
}
