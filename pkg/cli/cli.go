// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli holds the argq command metadata and per-command flag parsing.
package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shayne/yargs"
)

type CommandInfo struct {
	Name        string
	Description string
	Usage       string
	Examples    []string
	Hidden      bool
	Aliases     []string
}

const (
	CommandParse   = "parse"
	CommandUsage   = "usage"
	CommandCheck   = "check"
	CommandStrip   = "strip"
	CommandVersion = "version"
)

// Output formats accepted by parse --format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatEnv  = "env"
)

var formats = []string{FormatJSON, FormatYAML, FormatTOML, FormatEnv}

type ParseCmdFlags struct {
	Format  string
	Prefix  string
	Output  string
	Strict  bool
	HideBin bool
}

type UsageFlags struct {
	Program string
	Options string
	Plain   bool
}

type CheckFlags struct {
	Write string
}

type VersionFlags struct {
	JSON bool
}

type parseCmdFlagsParsed struct {
	Format  string `flag:"format" short:"f" default:"json" help:"Output format: json, yaml, toml or env"`
	Prefix  string `flag:"prefix" short:"p" help:"Variable name prefix for --format=env"`
	Output  string `flag:"output" short:"o" help:"Write the result to this file instead of stdout"`
	Strict  bool   `flag:"strict" help:"Fail on malformed numbers instead of producing NaN"`
	HideBin bool   `flag:"hide-bin" help:"Drop the program entries from the tokens first"`
}

type usageFlagsParsed struct {
	Program string `flag:"program" help:"Program name in the usage line"`
	Options string `flag:"options" help:"Options placeholder in the usage line"`
	Plain   bool   `flag:"plain" help:"Never decorate descriptions"`
}

type checkFlagsParsed struct {
	Write string `flag:"write" short:"w" help:"Write the validated definitions to this file as TOML"`
}

type stripFlagsParsed struct{}

type versionFlagsParsed struct {
	JSON bool `flag:"json"`
}

var commandInfos = map[string]CommandInfo{
	CommandParse: {Name: CommandParse, Description: "Parse tokens against the definitions and print the result", Usage: "[--format=json|yaml|toml|env] [--prefix=P] [--output=FILE] -- TOKENS...", Examples: []string{
		"argq parse -- --name Ada -a 36 extra",
		"argq parse --format=env --prefix=app -- -v --tags a,b",
		"argq parse -f env -o args.env -- \"$@\"",
		`eval "$(argq -d cli.toml parse -f env -- "$@")"`,
	}},
	CommandUsage: {Name: CommandUsage, Description: "Print the help text for the definitions", Usage: "[--program=NAME] [--options=STR] [--plain]", Examples: []string{
		"argq usage",
		"argq usage --program=deploy --options='[options] TARGET'",
	}},
	CommandCheck: {Name: CommandCheck, Description: "Validate the definitions file", Usage: "[--write=FILE]", Examples: []string{
		"argq -d ./argq.yaml check",
		"argq -d ./argq.yaml check --write=argq.toml",
	}},
	CommandStrip: {Name: CommandStrip, Description: "Print an argument vector without its program entries", Usage: "-- ARGV...", Examples: []string{
		"argq strip -- node script.js --name Ada",
	}},
	CommandVersion: {Name: CommandVersion, Description: "Show the argq version", Usage: "[--json]"},
}

func CommandNames() []string {
	names := make([]string, 0, len(commandInfos))
	for name := range commandInfos {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func CommandInfos() map[string]CommandInfo {
	return commandInfos
}

// HelpConfig returns the yargs help metadata for argq.
func HelpConfig() yargs.HelpConfig {
	subcommands := make(map[string]yargs.SubCommandInfo, len(commandInfos))
	for name, info := range commandInfos {
		subcommands[name] = toSubCommandInfo(name, info)
	}
	return yargs.HelpConfig{
		Command: yargs.CommandInfo{
			Name:        "argq",
			Description: "Parse command-line tokens against declared argument definitions",
			Examples: []string{
				"argq parse -- --name Ada extra",
				"ARGQ_DEFS=./cli.yaml argq usage",
			},
		},
		SubCommands: subcommands,
	}
}

func toSubCommandInfo(name string, info CommandInfo) yargs.SubCommandInfo {
	return yargs.SubCommandInfo{
		Name:        name,
		Description: info.Description,
		Usage:       info.Usage,
		Examples:    info.Examples,
		Hidden:      info.Hidden,
		Aliases:     info.Aliases,
	}
}

func ParseParseCmd(args []string) (ParseCmdFlags, []string, error) {
	parsed, err := parseFlags[parseCmdFlagsParsed](CommandParse, args)
	if err != nil {
		return ParseCmdFlags{}, nil, err
	}
	format := strings.ToLower(parsed.Flags.Format)
	if !slices.Contains(formats, format) {
		return ParseCmdFlags{}, nil, fmt.Errorf("unknown format %q, want one of %s", parsed.Flags.Format, strings.Join(formats, ", "))
	}
	flags := ParseCmdFlags{
		Format:  format,
		Prefix:  parsed.Flags.Prefix,
		Output:  parsed.Flags.Output,
		Strict:  parsed.Flags.Strict,
		HideBin: parsed.Flags.HideBin,
	}
	return flags, parsed.Args, nil
}

func ParseUsage(args []string) (UsageFlags, []string, error) {
	parsed, err := parseFlags[usageFlagsParsed](CommandUsage, args)
	if err != nil {
		return UsageFlags{}, nil, err
	}
	flags := UsageFlags{
		Program: parsed.Flags.Program,
		Options: parsed.Flags.Options,
		Plain:   parsed.Flags.Plain,
	}
	return flags, parsed.Args, nil
}

func ParseCheck(args []string) (CheckFlags, []string, error) {
	parsed, err := parseFlags[checkFlagsParsed](CommandCheck, args)
	if err != nil {
		return CheckFlags{}, nil, err
	}
	return CheckFlags{Write: parsed.Flags.Write}, parsed.Args, nil
}

func ParseStrip(args []string) ([]string, error) {
	parsed, err := parseFlags[stripFlagsParsed](CommandStrip, args)
	if err != nil {
		return nil, err
	}
	return parsed.Args, nil
}

func ParseVersion(args []string) (VersionFlags, []string, error) {
	parsed, err := parseFlags[versionFlagsParsed](CommandVersion, args)
	if err != nil {
		return VersionFlags{}, nil, err
	}
	return VersionFlags{JSON: parsed.Flags.JSON}, parsed.Args, nil
}

type parsedFlags[T any] struct {
	Flags  T
	Args   []string
	Parser *yargs.Parser
}

// parseFlags parses the flags of one subcommand. args may start with the
// subcommand name, as handed over by yargs.RunSubcommands.
func parseFlags[T any](cmd string, args []string) (parsedFlags[T], error) {
	if len(args) > 0 && args[0] == cmd {
		args = args[1:]
	}
	result, err := yargs.ParseFlags[T](args)
	if err != nil {
		return parsedFlags[T]{}, err
	}
	argsOut := append([]string{}, result.Args...)
	if len(result.RemainingArgs) > 0 {
		argsOut = append(argsOut, result.RemainingArgs...)
	}
	return parsedFlags[T]{Flags: result.Flags, Args: argsOut, Parser: result.Parser}, nil
}

// SplitArgsAtDoubleDash splits args around the first "--". The separator
// itself is dropped; tail is nil when there is none.
func SplitArgsAtDoubleDash(args []string) (head, tail []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

func RequireArgsAtMost(subcmd string, args []string, count int) error {
	if len(args) > count {
		return fmt.Errorf("'%s' takes at most %d argument(s), got %d", subcmd, count, len(args))
	}
	return nil
}
