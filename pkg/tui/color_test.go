// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnvAllowsColor(t *testing.T) {
	tests := []struct {
		noColor string
		term    string
		want    bool
	}{
		{"", "xterm-256color", true},
		{"1", "xterm-256color", false},
		{"", "dumb", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Setenv("NO_COLOR", tt.noColor)
		t.Setenv("TERM", tt.term)
		if got := EnvAllowsColor(); got != tt.want {
			t.Errorf("EnvAllowsColor() with NO_COLOR=%q TERM=%q = %v, want %v", tt.noColor, tt.term, got, tt.want)
		}
	}
}

func TestShouldDecorateRegularFile(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm")

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	defer f.Close()

	if ShouldDecorate(f) {
		t.Error("ShouldDecorate(regular file) = true")
	}
	if ShouldDecorate(nil) {
		t.Error("ShouldDecorate(nil) = true")
	}
	if c := NewColorizer(f); c.Wrap(ColorRed, "x") != "x" {
		t.Errorf("disabled Colorizer wrapped text")
	}
}

func TestColorizerWrap(t *testing.T) {
	c := Colorizer{Enabled: true}
	if got, want := c.Wrap(ColorGreen, "ok"), "\x1b[32mok\x1b[0m"; got != want {
		t.Errorf("Wrap = %q, want %q", got, want)
	}
	if got := c.Wrap("", "ok"); got != "ok" {
		t.Errorf("Wrap with no code = %q", got)
	}
}
