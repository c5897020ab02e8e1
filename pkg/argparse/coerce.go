// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// Boolean literals, compared after lowercasing.
var (
	truthyValues = []string{"true", "yes", "1", "on", "t", "y"}
	falsyValues  = []string{"false", "no", "0", "off", "f", "n"}
)

// coerce converts raw into the value for the pending name. consumed is false
// when raw is not a boolean literal and the pending definition is a boolean;
// the returned value is then true and the caller must look at raw again.
// Names without a definition store raw verbatim.
func (p *Parser) coerce(name, raw string) (v any, consumed bool, err error) {
	d, ok := p.Lookup(name)
	if !ok {
		return raw, true, nil
	}

	switch d.Type {
	case TypeString:
		return raw, true, nil
	case TypeNumber:
		n, err := p.parseNumber(d, raw)
		if err != nil {
			return nil, false, err
		}
		return n, true, nil
	case TypeBoolean:
		b, literal := parseBool(raw)
		return b, literal, nil
	case TypeStringArray, TypeNumberArray, TypeBooleanArray:
		v, err := p.parseArray(d, raw)
		if err != nil {
			return nil, false, err
		}
		return v, true, nil
	case TypeJSON:
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, false, &ValueError{Name: d.Name, Type: d.Type, Value: raw, Err: err}
		}
		return v, true, nil
	default:
		return nil, false, &UnsupportedTypeError{Name: d.Name, Type: d.Type}
	}
}

// parseBool reports the boolean for s and whether s was one of the literals.
// Anything outside the falsy set is true.
func parseBool(s string) (value, literal bool) {
	lower := strings.ToLower(s)
	isFalse := slices.Contains(falsyValues, lower)
	isTrue := slices.Contains(truthyValues, lower)
	return !isFalse, isFalse || isTrue
}

func (p *Parser) parseNumber(d Definition, s string) (float64, error) {
	if p.strictNumbers {
		f, err := strconv.ParseFloat(strings.TrimFunc(s, isNumberSpace), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, &ValueError{Name: d.Name, Type: d.Type, Value: s, Err: err}
		}
		return f, nil
	}
	return parseFloatPrefix(s), nil
}

// parseArray splits s on commas and converts every item with the scalar
// rule of the item type. Items are not trimmed.
func (p *Parser) parseArray(d Definition, s string) (any, error) {
	items := strings.Split(s, ",")
	switch d.Type.Elem() {
	case TypeString:
		return items, nil
	case TypeNumber:
		out := make([]float64, len(items))
		for i, item := range items {
			n, err := p.parseNumber(d, item)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case TypeBoolean:
		out := make([]bool, len(items))
		for i, item := range items {
			out[i], _ = parseBool(item)
		}
		return out, nil
	default:
		return nil, &UnsupportedTypeError{Name: d.Name, Type: d.Type}
	}
}

// parseFloatPrefix reads the longest decimal literal at the start of s,
// after leading white space and byte order marks, and returns NaN when
// there is none. A leading
// "Infinity" with an optional sign is recognised.
//
// Examples: "42" is 42, " 3.5kg" is 3.5, "1e3x" is 1000, "0x10" is 0,
// "abc" and "" are NaN.
func parseFloatPrefix(s string) float64 {
	s = strings.TrimLeftFunc(s, isNumberSpace)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits+frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return math.NaN()
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}

	f, err := strconv.ParseFloat(s[:i], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Validate reports whether d can be used for parsing and help: the type must
// be known, the name set, and a non-nil Default must have the Go type that
// parsing would produce for d.Type.
func (d Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: definition of type %s has no name", ErrInvalidDefinition, d.Type)
	}
	if !d.Type.Valid() {
		return &UnsupportedTypeError{Name: d.Name, Type: d.Type}
	}
	if d.Default == nil {
		return nil
	}
	var ok bool
	switch d.Type {
	case TypeString:
		_, ok = d.Default.(string)
	case TypeNumber:
		_, ok = d.Default.(float64)
	case TypeBoolean:
		_, ok = d.Default.(bool)
	case TypeStringArray:
		_, ok = d.Default.([]string)
	case TypeNumberArray:
		_, ok = d.Default.([]float64)
	case TypeBooleanArray:
		_, ok = d.Default.([]bool)
	case TypeJSON:
		ok = true
	}
	if !ok {
		return fmt.Errorf("%w: %s: %T is not assignable to %s", ErrInvalidDefault, d.Name, d.Default, d.Type)
	}
	return nil
}

// isNumberSpace reports the runes skipped around a number.
func isNumberSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
