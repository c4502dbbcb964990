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

package abi

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// FunctionDescription describes a contract function, either parsed from a
// signature or taken from a JSON ABI.
// FunctionDescription 描述一个合约函数，来自签名解析或 JSON ABI。
type FunctionDescription struct {
	Type            string                 `json:"type"`
	Name            string                 `json:"name"`
	Inputs          []ParameterDescription `json:"inputs"`
	Outputs         []ParameterDescription `json:"outputs,omitempty"`
	StateMutability string                 `json:"stateMutability,omitempty"`
}

// JSON reads a JSON ABI and returns the function entries it contains.
// Events, errors, constructors and fallbacks are skipped.
// JSON 读取 JSON ABI 并返回其中的函数条目。
func JSON(reader io.Reader) ([]FunctionDescription, error) {
	dec := json.NewDecoder(reader)

	var entries []FunctionDescription
	if err := dec.Decode(&entries); err != nil {
		return nil, err
	}
	var functions []FunctionDescription
	for _, entry := range entries {
		// Entries without a type are functions.
		if entry.Type == "" || entry.Type == "function" {
			entry.Type = "function"
			functions = append(functions, entry)
		}
	}
	return functions, nil
}

// CanonicalSignature returns the signature that is hashed into the selector,
// e.g. "foo(uint32,(bool,bytes)[])". It contains no names and no spaces.
// Every input is resolved first, so an unencodable schema is an error here.
// CanonicalSignature 返回用于计算选择器的规范签名，不包含参数名称和空格。
func (f FunctionDescription) CanonicalSignature() (string, error) {
	params, err := joinParameters(f.Inputs, ",", canonicalParameter)
	if err != nil {
		return "", err
	}
	return f.Name + "(" + params + ")", nil
}

// FullSignature returns the human readable signature including parameter
// names, e.g. "foo(uint32 a, (bool b, bytes c)[] d)".
func (f FunctionDescription) FullSignature() (string, error) {
	params, err := joinParameters(f.Inputs, ", ", fullParameter)
	if err != nil {
		return "", err
	}
	return f.Name + "(" + params + ")", nil
}

func joinParameters(params []ParameterDescription, sep string, render func(ParameterDescription) (string, error)) (string, error) {
	parts := make([]string, len(params))
	for i, p := range params {
		s, err := render(p)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, sep), nil
}

// canonicalParameter renders p from its resolved type, so the selector
// preimage never carries names or whitespace.
func canonicalParameter(p ParameterDescription) (string, error) {
	typ, err := NewType(p)
	if err != nil {
		return "", err
	}
	return typ.String(), nil
}

func fullParameter(p ParameterDescription) (string, error) {
	kind := strings.TrimSpace(p.Type)
	if !strings.HasPrefix(kind, "tuple") {
		return kind + " " + p.Name, nil
	}
	if p.Components == nil {
		return "", fmt.Errorf("%w: tuple parameter %q has no components", ErrSchema, p.Name)
	}
	inner, err := joinParameters(p.Components, ", ", fullParameter)
	if err != nil {
		return "", err
	}
	return "(" + inner + ")" + kind[len("tuple"):] + " " + p.Name, nil
}
