// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHideBin(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want []string
	}{
		{name: "hosted script", argv: []string{"node", "script.js", "--name", "Alice"}, want: []string{"--name", "Alice"}},
		{name: "hosted by path", argv: []string{"/usr/bin/python3", "tool.py", "-v"}, want: []string{"-v"}},
		{name: "hosted on windows", argv: []string{"NODE.EXE", "script.js", "x"}, want: []string{"x"}},
		{name: "executable", argv: []string{"/usr/local/bin/argq", "--name", "Alice"}, want: []string{"--name", "Alice"}},
		{name: "executable named like a script", argv: []string{"./node-runner", "script.js"}, want: []string{"script.js"}},
		{name: "interpreter alone", argv: []string{"node"}, want: []string{}},
		{name: "hosted without args", argv: []string{"node", "script.js"}, want: []string{}},
		{name: "empty", argv: nil, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HideBin(tt.argv)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("HideBin(%q) mismatch (-want +got):\n%s", tt.argv, diff)
			}
		})
	}
}

func TestHideBinDoesNotAlias(t *testing.T) {
	argv := []string{"argq", "a", "b"}
	got := New().HideBin(argv)
	got[0] = "changed"
	if argv[1] != "a" {
		t.Errorf("HideBin result aliases its input: %q", argv)
	}
}

func TestBinIndex(t *testing.T) {
	if got := BinIndex([]string{"deno", "main.ts"}); got != 1 {
		t.Errorf("BinIndex(deno) = %d, want 1", got)
	}
	if got := BinIndex([]string{"argq", "main.ts"}); got != 0 {
		t.Errorf("BinIndex(argq) = %d, want 0", got)
	}
	if IsHosted([]string{"bash"}) {
		t.Errorf("IsHosted without a script = true")
	}
}
