// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package env renders parse results as shell variable assignments.
package env

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/yeetrun/argparse/pkg/argparse"
	"github.com/yeetrun/argparse/pkg/fileutil"
)

// Write writes the assignments for r to the file name.
func Write(name, prefix string, r argparse.Result) error {
	err := fileutil.WriteAtomic(name, 0644, func(w io.Writer) error {
		return Marshal(w, prefix, r)
	})
	if err != nil {
		return fmt.Errorf("failed to write env: %w", err)
	}
	return nil
}

// Marshal writes one NAME='value' line per entry of r, sorted by variable
// name. Positional tokens are written as ARGS. Arrays become shell arrays.
// The empty key left by a bare "--" has no variable name and is skipped.
func Marshal(o io.Writer, prefix string, r argparse.Result) error {
	type assignment struct{ name, value string }
	vars := make([]assignment, 0, len(r))
	for key, v := range r {
		if key == "" {
			continue
		}
		name := "ARGS"
		if key != argparse.PositionalKey {
			name = VarName(key)
		}
		if prefix != "" {
			name = VarName(prefix) + "_" + name
		}
		val, err := shellValue(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		vars = append(vars, assignment{name, val})
	}
	slices.SortFunc(vars, func(a, b assignment) int { return strings.Compare(a.name, b.name) })
	for _, v := range vars {
		if _, err := fmt.Fprintf(o, "%s=%s\n", v.name, v.value); err != nil {
			return err
		}
	}
	return nil
}

// VarName upper-cases s and replaces everything but ASCII letters and
// digits with '_'. A leading digit gets a '_' prefix.
func VarName(s string) string {
	var b strings.Builder
	for i, c := range strings.ToUpper(s) {
		switch {
		case c >= 'A' && c <= 'Z', c == '_':
			b.WriteRune(c)
		case c >= '0' && c <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(c)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func shellValue(v any) (string, error) {
	switch v := v.(type) {
	case []string:
		return shellArray(v, quote), nil
	case []float64:
		return shellArray(v, func(f float64) string { return quote(formatNumber(f)) }), nil
	case []bool:
		return shellArray(v, func(b bool) string { return quote(strconv.FormatBool(b)) }), nil
	case string:
		return quote(v), nil
	case float64:
		return quote(formatNumber(v)), nil
	case bool:
		return quote(strconv.FormatBool(v)), nil
	}
	bs, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return quote(string(bs)), nil
}

func shellArray[T any](items []T, word func(T) string) string {
	words := make([]string, len(items))
	for i, it := range items {
		words[i] = word(it)
	}
	return "(" + strings.Join(words, " ") + ")"
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// quote wraps s in single quotes, escaping embedded single quotes.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
