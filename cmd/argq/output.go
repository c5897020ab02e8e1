// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/argparse/pkg/argparse"
	"github.com/yeetrun/argparse/pkg/cli"
	"github.com/yeetrun/argparse/pkg/env"
	"github.com/yeetrun/argparse/pkg/fileutil"
	"gopkg.in/yaml.v3"
)

func writeResult(w io.Writer, format, prefix string, res argparse.Result) error {
	switch format {
	case cli.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonSafe(map[string]any(res)))
	case cli.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any(res)); err != nil {
			return err
		}
		return enc.Close()
	case cli.FormatTOML:
		return toml.NewEncoder(w).Encode(map[string]any(res))
	case cli.FormatEnv:
		return env.Marshal(w, prefix, res)
	}
	return fmt.Errorf("unknown format %q", format)
}

func writeResultFile(path, format, prefix string, res argparse.Result) error {
	if format == cli.FormatEnv {
		return env.Write(path, prefix, res)
	}
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return writeResult(w, format, prefix, res)
	})
}

// jsonSafe replaces NaN and infinities, which encoding/json rejects, with
// their string spelling.
func jsonSafe(v any) any {
	switch v := v.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return strconv.FormatFloat(v, 'g', -1, 64)
		}
		return v
	case []float64:
		out := make([]any, len(v))
		for i, f := range v {
			out[i] = jsonSafe(f)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, x := range v {
			out[k] = jsonSafe(x)
		}
		return out
	}
	return v
}
