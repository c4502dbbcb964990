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
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
	"github.com/sunyihoo/go-rosettanet/accounts/abi"
)

var errArgCount = errors.New("wrong number of arguments")

// parseArguments converts command line strings into values of the given
// arguments. Arrays and tuples are given as JSON.
// parseArguments 将命令行字符串转换为参数值，数组和元组以 JSON 形式给出。
func parseArguments(args abi.Arguments, inputs []string) ([]abi.Value, error) {
	if len(inputs) != len(args) {
		return nil, fmt.Errorf("%w: have %d, want %d", errArgCount, len(inputs), len(args))
	}
	values := make([]abi.Value, len(args))
	for i, arg := range args {
		v, err := parseArgument(arg.Type, inputs[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s %s): %w", i, arg.Type, arg.Name, err)
		}
		values[i] = v
	}
	return values, nil
}

func parseArgument(t abi.Type, input string) (abi.Value, error) {
	switch t.T {
	case abi.SliceTy, abi.ArrayTy, abi.TupleTy:
		dec := json.NewDecoder(strings.NewReader(input))
		dec.UseNumber()
		var raw interface{}
		if err := dec.Decode(&raw); err != nil {
			return abi.Value{}, fmt.Errorf("invalid JSON: %v", err)
		}
		return jsonValue(t, raw)
	default:
		return parseScalar(t, input)
	}
}

func jsonValue(t abi.Type, raw interface{}) (abi.Value, error) {
	switch t.T {
	case abi.SliceTy, abi.ArrayTy:
		list, ok := raw.([]interface{})
		if !ok {
			return abi.Value{}, fmt.Errorf("expected JSON array for %s", t)
		}
		elems := make([]abi.Value, len(list))
		for i, item := range list {
			v, err := jsonValue(*t.Elem, item)
			if err != nil {
				return abi.Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			elems[i] = v
		}
		return abi.Seq(elems...), nil

	case abi.TupleTy:
		switch raw := raw.(type) {
		case []interface{}:
			if len(raw) != len(t.TupleElems) {
				return abi.Value{}, fmt.Errorf("tuple %s has %d fields, got %d", t, len(t.TupleElems), len(raw))
			}
			fields := make([]abi.Value, len(raw))
			for i, item := range raw {
				v, err := jsonValue(*t.TupleElems[i], item)
				if err != nil {
					return abi.Value{}, fmt.Errorf("field %d: %w", i, err)
				}
				fields[i] = v
			}
			return abi.Seq(fields...), nil
		case map[string]interface{}:
			fields := make(map[string]abi.Value, len(raw))
			for i, name := range t.TupleRawNames {
				item, ok := raw[name]
				if !ok {
					continue
				}
				v, err := jsonValue(*t.TupleElems[i], item)
				if err != nil {
					return abi.Value{}, fmt.Errorf("field %s: %w", name, err)
				}
				fields[name] = v
			}
			return abi.Mapping(fields), nil
		default:
			return abi.Value{}, fmt.Errorf("expected JSON array or object for %s", t)
		}

	default:
		switch raw := raw.(type) {
		case string:
			return parseScalar(t, raw)
		case json.Number:
			return parseScalar(t, raw.String())
		case bool:
			if t.T != abi.BoolTy {
				return abi.Value{}, fmt.Errorf("unexpected boolean for %s", t)
			}
			return abi.Bool(raw), nil
		default:
			return abi.Value{}, fmt.Errorf("unexpected JSON value %v for %s", raw, t)
		}
	}
}

func parseScalar(t abi.Type, s string) (abi.Value, error) {
	switch t.T {
	case abi.IntTy:
		i, err := parseInteger(s)
		if err != nil {
			return abi.Value{}, err
		}
		return abi.Int(i), nil

	case abi.UintTy:
		i, err := parseInteger(s)
		if err != nil {
			return abi.Value{}, err
		}
		u, overflow := uint256.FromBig(i)
		if i.Sign() < 0 || overflow {
			return abi.Value{}, fmt.Errorf("%s out of range for %s", s, t)
		}
		return abi.Uint256(u), nil

	case abi.BoolTy:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return abi.Value{}, fmt.Errorf("invalid boolean %q", s)
		}
		return abi.Bool(b), nil

	case abi.AddressTy:
		if !common.IsHexAddress(s) {
			return abi.Value{}, fmt.Errorf("invalid address %q", s)
		}
		return abi.Address(common.HexToAddress(s)), nil

	case abi.FixedBytesTy:
		b, err := hexutil.Decode(s)
		if err != nil {
			return abi.Value{}, fmt.Errorf("invalid %s %q: %v", t, s, err)
		}
		if len(b) != t.Size {
			return abi.Value{}, fmt.Errorf("invalid %s %q: have %d bytes", t, s, len(b))
		}
		return abi.FixedBytes(b), nil

	case abi.BytesTy:
		b, err := hexutil.Decode(s)
		if err != nil {
			return abi.Value{}, fmt.Errorf("invalid bytes %q: %v", s, err)
		}
		return abi.Bytes(b), nil

	case abi.StringTy:
		return abi.Text(s), nil
	}
	return abi.Value{}, fmt.Errorf("cannot parse %s from the command line", t)
}

// parseInteger parses a decimal or 0x prefixed hex integer with an optional
// minus sign.
func parseInteger(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if s == "" || strings.HasPrefix(s, "-") {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	i, ok := math.ParseBig256(s)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	if neg {
		i.Neg(i)
	}
	return i, nil
}

// parseSelector parses a 4 byte hex selector.
func parseSelector(s string) (uint32, error) {
	b, err := hexutil.Decode(s)
	if err != nil || len(b) != 4 {
		return 0, fmt.Errorf("invalid selector %q, want 4 hex bytes", s)
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}
