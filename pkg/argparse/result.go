// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

// PositionalKey is the Result key holding positional tokens.
const PositionalKey = "_"

// Result maps argument names to parsed values. Values have the Go type of
// their definition: string, float64, bool, []string, []float64, []bool, or
// for json whatever encoding/json produces. Flags without a definition hold
// a string or true. PositionalKey holds a []string.
type Result map[string]any

// Positional returns the tokens not consumed by any flag.
func (r Result) Positional() []string {
	s, _ := r[PositionalKey].([]string)
	return s
}

// Has reports whether name is present.
func (r Result) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// Value returns the raw value for name.
func (r Result) Value(name string) (any, bool) {
	v, ok := r[name]
	return v, ok
}

// String returns the value for name if it is a string.
func (r Result) String(name string) (string, bool) {
	return get[string](r, name)
}

// Number returns the value for name if it is a number.
func (r Result) Number(name string) (float64, bool) {
	return get[float64](r, name)
}

// Bool returns the value for name if it is a boolean.
func (r Result) Bool(name string) (bool, bool) {
	return get[bool](r, name)
}

// Strings returns the value for name if it is a string array.
func (r Result) Strings(name string) ([]string, bool) {
	return get[[]string](r, name)
}

// Numbers returns the value for name if it is a number array.
func (r Result) Numbers(name string) ([]float64, bool) {
	return get[[]float64](r, name)
}

// Bools returns the value for name if it is a boolean array.
func (r Result) Bools(name string) ([]bool, bool) {
	return get[[]bool](r, name)
}

func get[T any](r Result, name string) (T, bool) {
	v, ok := r[name].(T)
	return v, ok
}

// GetString is Get narrowed to a string value.
func (p *Parser) GetString(r Result, name string) (string, bool) {
	return resolve[string](p, r, name)
}

// GetNumber is Get narrowed to a number value.
func (p *Parser) GetNumber(r Result, name string) (float64, bool) {
	return resolve[float64](p, r, name)
}

// GetBool is Get narrowed to a boolean value.
func (p *Parser) GetBool(r Result, name string) (bool, bool) {
	return resolve[bool](p, r, name)
}

// GetStrings is Get narrowed to a string array.
func (p *Parser) GetStrings(r Result, name string) ([]string, bool) {
	return resolve[[]string](p, r, name)
}

// GetNumbers is Get narrowed to a number array.
func (p *Parser) GetNumbers(r Result, name string) ([]float64, bool) {
	return resolve[[]float64](p, r, name)
}

// GetBools is Get narrowed to a boolean array.
func (p *Parser) GetBools(r Result, name string) ([]bool, bool) {
	return resolve[[]bool](p, r, name)
}

func resolve[T any](p *Parser, r Result, name string) (T, bool) {
	v, _ := p.Get(r, name)
	t, ok := v.(T)
	return t, ok
}
