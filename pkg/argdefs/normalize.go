// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argdefs

import (
	"fmt"

	"github.com/yeetrun/argparse/pkg/argparse"
)

func normalize(t argparse.Type, v any) (any, error) {
	switch t {
	case argparse.TypeJSON:
		return v, nil
	case argparse.TypeStringArray:
		return normalizeSlice(v, toString)
	case argparse.TypeNumberArray:
		return normalizeSlice(v, toNumber)
	case argparse.TypeBooleanArray:
		return normalizeSlice(v, toBool)
	case argparse.TypeString:
		return toString(v)
	case argparse.TypeNumber:
		return toNumber(v)
	case argparse.TypeBoolean:
		return toBool(v)
	}
	return nil, fmt.Errorf("unsupported type %q", t)
}

func normalizeSlice[T any](v any, conv func(any) (T, error)) ([]T, error) {
	var items []any
	switch v := v.(type) {
	case []any:
		items = v
	case []T:
		return v, nil
	default:
		return nil, fmt.Errorf("want a list, got %T", v)
	}
	out := make([]T, len(items))
	for i, item := range items {
		x, err := conv(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out[i] = x
	}
	return out, nil
}

func toString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("want a string, got %T", v)
	}
	return s, nil
}

// toNumber accepts the integer and float types produced by the TOML, YAML
// and JSON decoders.
func toNumber(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("want a number, got %T", v)
}

func toBool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("want a boolean, got %T", v)
	}
	return b, nil
}
