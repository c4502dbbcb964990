// Copyright 2024 The go-ethereum Authors
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

// Package utils contains internal helper functions for the calldata commands.
package utils

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sunyihoo/go-rosettanet/accounts/rosettanet"
	"github.com/sunyihoo/go-rosettanet/internal/flags"
	"github.com/urfave/cli/v2"
)

// These are all the command line flags we support.
// If you add to this list, please remember to include the
// flag in the appropriate command definition.
//
// The flags are defined here so their names and help texts
// are the same for all commands.

var (
	// General settings
	ConfigFileFlag = &cli.StringFlag{
		Name:     "config",
		Usage:    "TOML configuration file",
		Category: flags.MiscCategory,
	}

	// ABI encoding
	SelectorFlag = &cli.StringFlag{
		Name:     "selector",
		Usage:    "Use this 4 byte selector (hex) instead of hashing the signature",
		Category: flags.EncodingCategory,
	}
	RawFlag = &cli.BoolFlag{
		Name:     "raw",
		Usage:    "Encode the arguments only, without a selector",
		Category: flags.EncodingCategory,
	}
	ABIFileFlag = &cli.StringFlag{
		Name:     "abi",
		Usage:    "JSON ABI file to look the method up in, by name",
		Category: flags.EncodingCategory,
	}

	// Rosettanet
	CallsFileFlag = &cli.StringFlag{
		Name:     "calls",
		Usage:    "JSON file holding the Starknet calls to batch (- for stdin)",
		Value:    "-",
		Category: flags.RosettanetCategory,
	}
	FromFlag = &cli.StringFlag{
		Name:     "from",
		Usage:    "Sender address of the transaction",
		Category: flags.RosettanetCategory,
	}
	MulticallAddressFlag = &cli.StringFlag{
		Name:     "multicall.address",
		Usage:    "Address of the multicall entrypoint",
		Category: flags.RosettanetCategory,
	}
	ValueFlag = &flags.BigFlag{
		Name:     "value",
		Usage:    "Wei amount attached to the transaction",
		Category: flags.RosettanetCategory,
	}
)

// SetRosettanetConfig applies rosettanet-related command line flags to the config.
// SetRosettanetConfig 将 rosettanet 相关的命令行标志应用到配置中。
func SetRosettanetConfig(ctx *cli.Context, cfg *rosettanet.Config) {
	if ctx.IsSet(MulticallAddressFlag.Name) {
		cfg.MulticallAddress = ctx.String(MulticallAddressFlag.Name)
	}
	if ctx.IsSet(ValueFlag.Name) {
		cfg.Value = hexutil.EncodeBig(flags.GlobalBig(ctx, ValueFlag.Name))
	}
}
