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
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/go-rosettanet/accounts/rosettanet"
	"github.com/sunyihoo/go-rosettanet/cmd/utils"
	"github.com/urfave/cli/v2"
)

func TestDecodeConfig(t *testing.T) {
	t.Parallel()
	cfg := calldataConfig{Rosettanet: rosettanet.DefaultConfig}
	err := decodeConfig(strings.NewReader(`
[Rosettanet]
MulticallAddress = "0x2222222222222222222222222222222222222222"
`), &cfg)
	require.NoError(t, err)
	require.Equal(t, "0x2222222222222222222222222222222222222222", cfg.Rosettanet.MulticallAddress)
	require.Equal(t, rosettanet.DefaultConfig.Value, cfg.Rosettanet.Value)
}

func TestDecodeConfigUnknownField(t *testing.T) {
	t.Parallel()
	cfg := calldataConfig{}
	err := decodeConfig(strings.NewReader("[Rosettanet]\nGasPrice = 1\n"), &cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "GasPrice")
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.Error(t, loadConfig(filepath.Join(dir, "missing.toml"), &calldataConfig{}))

	file := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(file, []byte("[Rosettanet]\nGasPrice = 1\n"), 0644))
	err := loadConfig(file, &calldataConfig{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "GasPrice")
}

func TestMakeConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(file, []byte(`
[Rosettanet]
MulticallAddress = "0x2222222222222222222222222222222222222222"
Value = "0x1"
`), 0644))

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range []cli.Flag{utils.ConfigFileFlag, utils.MulticallAddressFlag, utils.ValueFlag} {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Parse([]string{"--config", file, "--value", "1000"}))
	ctx := cli.NewContext(cli.NewApp(), set, nil)

	cfg, err := makeConfig(ctx)
	require.NoError(t, err)
	require.Equal(t, "0x2222222222222222222222222222222222222222", cfg.Rosettanet.MulticallAddress)
	require.Equal(t, "0x3e8", cfg.Rosettanet.Value)
}

func TestDumpConfigRoundTrip(t *testing.T) {
	t.Parallel()
	cfg := calldataConfig{Rosettanet: rosettanet.DefaultConfig}
	out, err := tomlSettings.Marshal(&cfg)
	require.NoError(t, err)

	var decoded calldataConfig
	require.NoError(t, decodeConfig(strings.NewReader(string(out)), &decoded))
	require.Equal(t, cfg, decoded)
}
