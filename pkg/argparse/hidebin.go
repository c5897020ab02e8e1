// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"path/filepath"
	"slices"
	"strings"
)

// interpreters are program names that run a script given as their first
// argument. argv for such a process is [interpreter, script, args...].
var interpreters = []string{
	"node", "nodejs", "bun", "deno",
	"python", "python3",
	"ruby", "perl",
	"sh", "bash", "zsh",
	"yaegi",
}

// IsHosted reports whether argv was produced by an interpreter running a
// script rather than by a standalone executable.
func IsHosted(argv []string) bool {
	if len(argv) < 2 {
		return false
	}
	base := strings.ToLower(filepath.Base(argv[0]))
	base = strings.TrimSuffix(base, ".exe")
	return slices.Contains(interpreters, base)
}

// BinIndex returns the index of the last argv entry that names the running
// program: 1 for a hosted script, 0 for an executable.
func BinIndex(argv []string) int {
	if IsHosted(argv) {
		return 1
	}
	return 0
}

// HideBin returns argv without the entries that name the running program.
// For os.Args of a Go binary that is os.Args[1:]. The result never aliases
// argv.
func HideBin(argv []string) []string {
	i := BinIndex(argv) + 1
	if i >= len(argv) {
		return []string{}
	}
	return slices.Clone(argv[i:])
}
