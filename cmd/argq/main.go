// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command argq parses command-line tokens against argument definitions
// loaded from a TOML, YAML or JSON file.
package main

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/shayne/yargs"
	"github.com/yeetrun/argparse/pkg/argdefs"
	"github.com/yeetrun/argparse/pkg/argparse"
	"github.com/yeetrun/argparse/pkg/cli"
	"github.com/yeetrun/argparse/pkg/tui"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

var (
	// tokens holds everything after the first "--". It is kept away from
	// yargs so that tokens like --help reach the argument parser.
	tokens   []string
	defsPath string
)

type globalFlagsParsed struct {
	Defs    string `flag:"defs" short:"d" help:"Definitions file (ARGQ_DEFS)"`
	Verbose bool   `flag:"verbose" short:"v" help:"Log progress to stderr"`
}

func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	return result.Flags, result.RemainingArgs, nil
}

func configureLogging(verbose bool) {
	log.SetFlags(0)
	log.SetPrefix("argq: ")
	if verbose {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.Discard)
}

func main() {
	head, tail := cli.SplitArgsAtDoubleDash(os.Args[1:])
	tokens = tail
	globalFlags, remaining, err := parseGlobalFlags(head)
	if err != nil {
		printCLIError(os.Stderr, err)
		os.Exit(2)
	}
	configureLogging(globalFlags.Verbose)
	defsPath = cmp.Or(globalFlags.Defs, os.Getenv("ARGQ_DEFS"))

	handlers := map[string]yargs.SubcommandHandler{
		cli.CommandParse:   handleParse,
		cli.CommandUsage:   handleUsage,
		cli.CommandCheck:   handleCheck,
		cli.CommandStrip:   handleStrip,
		cli.CommandVersion: handleVersion,
	}
	if err := yargs.RunSubcommands(context.Background(), remaining, cli.HelpConfig(), globalFlagsParsed{}, handlers); err != nil {
		printCLIError(os.Stderr, err)
		os.Exit(1)
	}
}

func printCLIError(w io.Writer, err error) {
	if err == nil {
		return
	}
	c := tui.NewColorizer(os.Stderr)
	var verr *argparse.ValueError
	if errors.As(err, &verr) {
		fmt.Fprint(w, c.Wrap(tui.ColorRed, "invalid value: "))
	}
	fmt.Fprintln(w, err)
}

func asJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// loadDefinitions reads the definitions file named by --defs or ARGQ_DEFS,
// or the nearest one found from the working directory upwards.
func loadDefinitions() (*argdefs.File, string, error) {
	path := defsPath
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, "", err
		}
		path, err = argdefs.Find(cwd)
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("no definitions file found from %s; pass --defs or set ARGQ_DEFS", cwd)
		}
		if err != nil {
			return nil, "", err
		}
	}
	f, err := argdefs.Load(path)
	if err != nil {
		return nil, "", err
	}
	if err := argdefs.CheckVersion(f, version); err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return f, path, nil
}
