// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui decides when terminal output may carry escape sequences.
package tui

import (
	"os"

	"golang.org/x/term"
)

const (
	ColorReset  = "\x1b[0m"
	ColorRed    = "\x1b[31m"
	ColorGreen  = "\x1b[32m"
	ColorYellow = "\x1b[33m"
	ColorDim    = "\x1b[90m"
)

// EnvAllowsColor reports whether NO_COLOR and TERM permit escape sequences.
func EnvAllowsColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	t := os.Getenv("TERM")
	return t != "" && t != "dumb"
}

// ShouldDecorate reports whether output written to f may be decorated.
func ShouldDecorate(f *os.File) bool {
	if f == nil || !EnvAllowsColor() {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

type Colorizer struct {
	Enabled bool
}

// NewColorizer returns a Colorizer for f.
func NewColorizer(f *os.File) Colorizer {
	return Colorizer{Enabled: ShouldDecorate(f)}
}

func (c Colorizer) Wrap(code, text string) string {
	if !c.Enabled || code == "" {
		return text
	}
	return code + text + ColorReset
}
