// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"errors"
	"slices"
	"strings"
)

// Type is the declared value type of an argument.
type Type string

const (
	TypeString       Type = "string"
	TypeNumber       Type = "number"
	TypeBoolean      Type = "boolean"
	TypeStringArray  Type = "string[]"
	TypeNumberArray  Type = "number[]"
	TypeBooleanArray Type = "boolean[]"
	TypeJSON         Type = "json"
)

// Valid reports whether t is one of the known types.
func (t Type) Valid() bool {
	switch t {
	case TypeString, TypeNumber, TypeBoolean,
		TypeStringArray, TypeNumberArray, TypeBooleanArray,
		TypeJSON:
		return true
	}
	return false
}

// IsArray reports whether t is a comma separated list type.
func (t Type) IsArray() bool {
	return strings.HasSuffix(string(t), "[]")
}

// Elem returns the item type of an array type, or t itself.
func (t Type) Elem() Type {
	return Type(strings.TrimSuffix(string(t), "[]"))
}

// Definition declares one named argument.
type Definition struct {
	Type    Type
	Name    string
	Aliases []string
	// UsageVariableName is the placeholder shown in help for non-boolean
	// arguments. Empty means "Value".
	UsageVariableName string
	// Default is applied after parsing when Name was never set. Nil means
	// no default.
	Default     any
	Description string
}

func (d Definition) hasAlias(alias string) bool {
	return slices.Contains(d.Aliases, alias)
}

// Parser holds an ordered registry of definitions and parses argument
// vectors against it. A Parser must not be mutated while Parse is running.
type Parser struct {
	defs          []Definition
	strictNumbers bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrictNumbers makes malformed number values a *ValueError instead of
// NaN.
func WithStrictNumbers() Option {
	return func(p *Parser) { p.strictNumbers = true }
}

// WithDefinitions registers defs in order, as if by Define.
func WithDefinitions(defs ...Definition) Option {
	return func(p *Parser) {
		for _, d := range defs {
			p.Define(d)
		}
	}
}

// New returns an empty Parser.
func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Define appends def to the registry and returns p for chaining.
// Name and alias collisions are not checked; lookups return the earliest
// registration.
func (p *Parser) Define(def Definition) *Parser {
	def.Aliases = slices.Clone(def.Aliases)
	p.defs = append(p.defs, def)
	return p
}

// Definitions returns a copy of the registry in registration order.
func (p *Parser) Definitions() []Definition {
	out := make([]Definition, len(p.defs))
	for i, d := range p.defs {
		d.Aliases = slices.Clone(d.Aliases)
		out[i] = d
	}
	return out
}

// Lookup returns the first definition whose name or one of whose aliases
// equals key.
func (p *Parser) Lookup(key string) (Definition, bool) {
	for _, d := range p.defs {
		if d.Name == key || d.hasAlias(key) {
			return d, true
		}
	}
	return Definition{}, false
}

// LookupAlias returns the first definition that lists alias among its
// aliases. Canonical names are not considered.
func (p *Parser) LookupAlias(alias string) (Definition, bool) {
	for _, d := range p.defs {
		if d.hasAlias(alias) {
			return d, true
		}
	}
	return Definition{}, false
}

// Validate checks every definition and returns all problems joined.
func (p *Parser) Validate() error {
	var errs []error
	for _, d := range p.defs {
		if err := d.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Get returns the value stored for name, falling back to the keys of the
// definition's name and aliases. Long-form aliases store their value under
// the alias itself, so Get is the way to read a result by canonical name.
func (p *Parser) Get(r Result, name string) (any, bool) {
	if v, ok := r[name]; ok {
		return v, true
	}
	d, ok := p.Lookup(name)
	if !ok {
		return nil, false
	}
	if v, ok := r[d.Name]; ok {
		return v, true
	}
	for _, a := range d.Aliases {
		if v, ok := r[a]; ok {
			return v, true
		}
	}
	return nil, false
}

// flagState tracks a long-form key between the marker and its value.
type flagState uint8

const (
	// flagSeen means the marker appeared and no value has been stored yet.
	// The key resolves to true when the scan ends.
	flagSeen flagState = iota + 1
	// flagValued means a value token was stored for the key.
	flagValued
)

// scan is the state of one Parse call.
type scan struct {
	out     Result
	status  map[string]flagState
	pending string
	waiting bool
}

func (s *scan) setPending(name string) {
	s.pending = name
	s.waiting = true
}

func (s *scan) clearPending() {
	s.pending = ""
	s.waiting = false
}

// Parse tokenizes args against the registry and returns the coerced values.
// The key "_" holds the positional tokens in arrival order.
//
// Tokens are handled as follows:
//   - "--name" marks name as provided and makes it the pending name.
//   - "-abc" resolves each character as an alias. Boolean aliases are set to
//     true, the last non-boolean alias becomes the pending name, unknown
//     aliases are ignored.
//   - any other token is the pending name's value if one is pending,
//     otherwise it is positional.
//
// A bare "--" is a long flag with an empty name: "" is recorded as true
// and nothing is left pending, so scanning carries on as usual.
//
// A token that is not a boolean literal does not become the value of a
// pending boolean; it is classified again with nothing pending.
func (p *Parser) Parse(args []string) (Result, error) {
	s := &scan{
		out:    Result{PositionalKey: []string{}},
		status: make(map[string]flagState),
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case strings.HasPrefix(arg, "--"):
			name := arg[2:]
			s.status[name] = flagSeen
			if name == "" {
				s.clearPending()
				continue
			}
			s.setPending(name)

		case strings.HasPrefix(arg, "-"):
			for _, r := range arg[1:] {
				d, ok := p.LookupAlias(string(r))
				if !ok {
					continue
				}
				if d.Type == TypeBoolean {
					s.out[d.Name] = true
					continue
				}
				s.setPending(d.Name)
			}

		case s.waiting:
			name := s.pending
			s.clearPending()
			v, consumed, err := p.coerce(name, arg)
			if err != nil {
				return nil, err
			}
			s.out[name] = v
			s.status[name] = flagValued
			if !consumed {
				// Reclassify this token with nothing pending.
				i--
			}

		default:
			s.out[PositionalKey] = append(s.out.Positional(), arg)
		}
	}

	for name, st := range s.status {
		if st == flagSeen {
			s.out[name] = true
		}
	}

	for _, d := range p.defs {
		if _, ok := s.out[d.Name]; ok || d.Default == nil {
			continue
		}
		s.out[d.Name] = cloneValue(d.Default)
	}
	return s.out, nil
}

// HideBin is a convenience for the package level HideBin.
func (p *Parser) HideBin(argv []string) []string {
	return HideBin(argv)
}

// cloneValue copies slice defaults so results never alias the registry.
func cloneValue(v any) any {
	switch v := v.(type) {
	case []string:
		return slices.Clone(v)
	case []float64:
		return slices.Clone(v)
	case []bool:
		return slices.Clone(v)
	}
	return v
}
