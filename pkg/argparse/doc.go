// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argparse parses command-line tokens against a list of declared
// arguments and renders help text for them.
//
// # Basic Usage
//
// Declare arguments on a Parser, then parse the process arguments:
//
//	p := argparse.New().
//	    Define(argparse.Definition{Type: argparse.TypeString, Name: "name", Aliases: []string{"n"}, Description: "Name argument"}).
//	    Define(argparse.Definition{Type: argparse.TypeNumber, Name: "age", Aliases: []string{"a"}, Description: "Age argument"})
//
//	res, err := p.Parse(argparse.HideBin(os.Args))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	name, _ := res.String("name")
//	age, _ := res.Number("age")
//
// # Token Syntax
//
//   - Long flags: --name value, --verbose
//   - Short flags: -n value, bundled booleans -abc
//   - Positional tokens are collected under the "_" key in order
//   - A bare "--" is a long flag with an empty name; it records "" as true
//     and does not stop the scan
//
// A long flag is true as soon as it appears and is overwritten by a value
// token if one follows. In a bundle of short flags every boolean alias is
// set to true and the last non-boolean alias takes the next token.
//
// # Types
//
//   - string: the token as is
//   - number: float64; the leading numeric part of the token, NaN if there
//     is none (see WithStrictNumbers)
//   - boolean: true, yes, 1, on, t, y and false, no, 0, off, f, n, case
//     insensitive. Any other token after a boolean flag is not consumed.
//   - string[], number[], boolean[]: the token split on commas
//   - json: decoded with encoding/json; invalid JSON fails the parse
//
// Defaults are applied after the scan to every definition whose name was
// not set.
package argparse
