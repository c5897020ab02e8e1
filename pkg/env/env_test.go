// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/argparse/pkg/argparse"
)

func TestMarshal(t *testing.T) {
	r := argparse.Result{
		"_":         []string{"a b", "it's"},
		"name":      "John",
		"age":       float64(42),
		"ratio":     0.5,
		"missing":   math.NaN(),
		"verbose":   true,
		"tags":      []string{"x", "y"},
		"nums":      []float64{1, 2.5},
		"bits":      []bool{true, false},
		"dry-run":   false,
		"config":    map[string]any{"k": []any{float64(1), "v"}},
		"2fa":       "on",
		"empty-arr": []string{},
	}

	var b strings.Builder
	if err := Marshal(&b, "app", r); err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	want := strings.Join([]string{
		`APP_AGE='42'`,
		`APP_ARGS=('a b' 'it'\''s')`,
		`APP_BITS=('true' 'false')`,
		`APP_CONFIG='{"k":[1,"v"]}'`,
		`APP_DRY_RUN='false'`,
		`APP_EMPTY_ARR=()`,
		`APP_MISSING='NaN'`,
		`APP_NAME='John'`,
		`APP_NUMS=('1' '2.5')`,
		`APP_RATIO='0.5'`,
		`APP_TAGS=('x' 'y')`,
		`APP_VERBOSE='true'`,
		`APP__2FA='on'`,
	}, "\n") + "\n"

	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("Marshal mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalNoPrefix(t *testing.T) {
	var b strings.Builder
	if err := Marshal(&b, "", argparse.Result{"_": []string{}, "x": "1"}); err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got, want := b.String(), "ARGS=()\nX='1'\n"; got != want {
		t.Errorf("Marshal = %q, want %q", got, want)
	}
}

func TestMarshalSkipsEmptyKey(t *testing.T) {
	var b strings.Builder
	if err := Marshal(&b, "", argparse.Result{"_": []string{}, "": true, "x": "1"}); err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got, want := b.String(), "ARGS=()\nX='1'\n"; got != want {
		t.Errorf("Marshal = %q, want %q", got, want)
	}
}

func TestMarshalUnencodable(t *testing.T) {
	var b strings.Builder
	if err := Marshal(&b, "", argparse.Result{"ch": make(chan int)}); err == nil {
		t.Fatal("Marshal of a channel succeeded")
	}
}

func TestVarName(t *testing.T) {
	tests := map[string]string{
		"name":    "NAME",
		"dry-run": "DRY_RUN",
		"a.b c":   "A_B_C",
		"9lives":  "_9LIVES",
		"v2":      "V2",
		"__x":     "__X",
		"ünïcode": "_N_CODE",
	}
	for in, want := range tests {
		if got := VarName(in); got != want {
			t.Errorf("VarName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "args.env")
	if err := Write(path, "x", argparse.Result{"n": "v"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(got) != "X_N='v'\n" {
		t.Errorf("Write wrote %q", got)
	}
}
