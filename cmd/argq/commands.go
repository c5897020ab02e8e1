// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/yeetrun/argparse/pkg/argdefs"
	"github.com/yeetrun/argparse/pkg/argparse"
	"github.com/yeetrun/argparse/pkg/cli"
	"github.com/yeetrun/argparse/pkg/tui"
)

func handleParse(_ context.Context, args []string) error {
	flags, extra, err := cli.ParseParseCmd(args)
	if err != nil {
		return err
	}
	if err := cli.RequireArgsAtMost(cli.CommandParse, extra, 0); err != nil {
		return fmt.Errorf("%w; put tokens after --", err)
	}
	f, _, err := loadDefinitions()
	if err != nil {
		return err
	}
	var opts []argparse.Option
	if flags.Strict {
		opts = append(opts, argparse.WithStrictNumbers())
	}
	p, err := f.Parser(opts...)
	if err != nil {
		return err
	}
	toks := tokens
	if flags.HideBin {
		toks = p.HideBin(toks)
	}
	log.Printf("Parsing %d tokens against %d definitions", len(toks), len(f.Arguments))
	res, err := p.Parse(toks)
	if err != nil {
		return err
	}
	if flags.Output == "" {
		return writeResult(os.Stdout, flags.Format, flags.Prefix, res)
	}
	log.Printf("Writing %s result to %s", flags.Format, flags.Output)
	return writeResultFile(flags.Output, flags.Format, flags.Prefix, res)
}

func handleUsage(_ context.Context, args []string) error {
	flags, extra, err := cli.ParseUsage(args)
	if err != nil {
		return err
	}
	if err := cli.RequireArgsAtMost(cli.CommandUsage, extra, 0); err != nil {
		return err
	}
	f, _, err := loadDefinitions()
	if err != nil {
		return err
	}
	p, err := f.Parser()
	if err != nil {
		return err
	}
	fmt.Print(f.Help(p, argparse.HelpOptions{
		Program: flags.Program,
		Options: flags.Options,
		Plain:   flags.Plain || !tui.ShouldDecorate(os.Stdout),
	}))
	return nil
}

func handleCheck(_ context.Context, args []string) error {
	flags, extra, err := cli.ParseCheck(args)
	if err != nil {
		return err
	}
	if err := cli.RequireArgsAtMost(cli.CommandCheck, extra, 0); err != nil {
		return err
	}
	f, path, err := loadDefinitions()
	if err != nil {
		return err
	}
	return checkDefinitions(os.Stdout, tui.NewColorizer(os.Stdout), f, path, flags.Write)
}

// checkDefinitions validates f and, when out is set, saves it to out as
// TOML once it is valid.
func checkDefinitions(w io.Writer, c tui.Colorizer, f *argdefs.File, path, out string) error {
	defs, err := f.Definitions()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	conflicts := argdefs.Conflicts(defs)
	for _, msg := range conflicts {
		log.Printf("conflict in %s: %s", path, msg)
		fmt.Fprintln(w, c.Wrap(tui.ColorYellow, "warning: "+msg))
	}
	fmt.Fprintln(w, c.Wrap(tui.ColorGreen, fmt.Sprintf("ok: %d definitions in %s", len(defs), path)))
	if out == "" {
		return nil
	}
	if err := argdefs.Save(out, f); err != nil {
		return fmt.Errorf("failed to save definitions: %w", err)
	}
	log.Printf("Saved definitions from %s to %s", path, out)
	fmt.Fprintf(w, "wrote %s\n", out)
	return nil
}

func handleStrip(_ context.Context, args []string) error {
	extra, err := cli.ParseStrip(args)
	if err != nil {
		return err
	}
	argv := append(extra, tokens...)
	for _, arg := range argparse.HideBin(argv) {
		fmt.Println(arg)
	}
	return nil
}

func handleVersion(_ context.Context, args []string) error {
	flags, _, err := cli.ParseVersion(args)
	if err != nil {
		return err
	}
	if flags.JSON {
		fmt.Println(asJSON(struct {
			Version   string `json:"version"`
			GoVersion string `json:"goVersion"`
		}{version, runtime.Version()}))
		return nil
	}
	fmt.Printf("argq %s\n", version)
	return nil
}
