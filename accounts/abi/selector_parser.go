// Copyright 2022 The go-ethereum Authors
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
	"fmt"
	"regexp"
	"strings"
)

var (
	// signatureRegex matches "name(params)".
	signatureRegex = regexp.MustCompile(`^([a-zA-Z_][a-zA-Z0-9_]+)\((.*)\)$`)

	// parameterRegex splits a "type name" fragment, the name is optional.
	// parameterRegex 拆分 "类型 名称" 片段，名称是可选的。
	parameterRegex = regexp.MustCompile(`^\s*(.+?)\s*(?:\s([a-zA-Z_][a-zA-Z0-9_]*))?\s*$`)

	// arraySuffixRegex matches what may follow the closing paren of a tuple.
	arraySuffixRegex = regexp.MustCompile(`^(\[[0-9]*\])*$`)
)

// ParseSignature converts a function signature such as
// "transfer(address to, uint256 amount)" into a function description.
// Tuples are written as parenthesised component lists, optionally followed by
// array suffixes, e.g. "(uint256,bool)[] items". Unnamed parameters are named
// after their position: arg0, arg1, ...
//
// The result is not validated against the type system, that happens when the
// description is encoded.
// ParseSignature 将函数签名转换为函数描述。元组写作带括号的组件列表，
// 可以跟随数组后缀。未命名的参数按位置命名为 arg0、arg1 等。
func ParseSignature(signature string) (FunctionDescription, error) {
	m := signatureRegex.FindStringSubmatch(signature)
	if m == nil {
		return FunctionDescription{}, fmt.Errorf("%w: %q is not a valid Solidity function signature", ErrSignatureSyntax, signature)
	}
	inputs, err := parseParameters(m[2])
	if err != nil {
		return FunctionDescription{}, fmt.Errorf("failed to parse signature %q: %w", signature, err)
	}
	return FunctionDescription{Type: "function", Name: m[1], Inputs: inputs}, nil
}

// parseParameters parses a comma separated parameter list. The returned slice
// is never nil, so an empty tuple keeps its (empty) components.
func parseParameters(list string) ([]ParameterDescription, error) {
	params := make([]ParameterDescription, 0)
	rest := strings.TrimSpace(list)
	for len(rest) != 0 {
		var (
			param ParameterDescription
			err   error
		)
		param, rest, err = extractNextParameter(rest)
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	// fill in any missing argument names
	// 为缺少名称的参数生成默认名称
	for i := range params {
		if params[i].Name == "" {
			params[i].Name = fmt.Sprintf("arg%d", i)
		}
	}
	return params, nil
}

// extractNextParameter peels the first parameter off list. It walks until the
// end of the string or a comma outside of all parentheses.
// extractNextParameter 从列表中取出第一个参数，直到字符串结束或遇到所有括号之外的逗号。
func extractNextParameter(list string) (ParameterDescription, string, error) {
	nesting, end := 0, len(list)
scan:
	for i := 0; i < len(list); i++ {
		switch list[i] {
		case '(':
			nesting++
		case ')':
			nesting--
			if nesting < 0 {
				return ParameterDescription{}, "", fmt.Errorf("%w: %q does not have matching number of open and close parenthesis", ErrSignatureSyntax, list)
			}
		case ',':
			if nesting == 0 {
				end = i
				break scan
			}
		}
	}
	if nesting != 0 {
		return ParameterDescription{}, "", fmt.Errorf("%w: %q has an unclosed parenthesis", ErrSignatureSyntax, list)
	}
	fragment := list[:end]
	rest := strings.TrimSpace(strings.TrimPrefix(list[end:], ","))

	m := parameterRegex.FindStringSubmatch(fragment)
	if m == nil {
		return ParameterDescription{}, "", fmt.Errorf("%w: %q is not a valid parameter/name pair", ErrSignatureSyntax, fragment)
	}
	param := ParameterDescription{Type: m[1], Name: m[2]}
	if strings.HasPrefix(param.Type, "(") {
		closing := matchingParen(param.Type)
		suffix := param.Type[closing+1:]
		if !arraySuffixRegex.MatchString(suffix) {
			return ParameterDescription{}, "", fmt.Errorf("%w: unexpected %q after tuple", ErrSignatureSyntax, suffix)
		}
		components, err := parseParameters(param.Type[1:closing])
		if err != nil {
			return ParameterDescription{}, "", err
		}
		param.Type = "tuple" + suffix
		param.Components = components
	}
	return param, rest, nil
}

// matchingParen returns the index of the paren closing the one at s[0]. The
// caller guarantees s is balanced.
func matchingParen(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(s) - 1
}
