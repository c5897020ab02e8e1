// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"cmp"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

const (
	defaultProgram = "Program"
	defaultOptions = "[options]"
	defaultVarName = "Value"

	// oneLineMax is the longest one-line entry, measured as
	// 4 + usage + description, before every entry switches to the wrapped
	// layout.
	oneLineMax = 70
	wrapWidth  = 68
	wrapIndent = 4
)

// HelpOptions controls Help. The zero value renders decorated help for
// "Program [options]".
type HelpOptions struct {
	Program string // Empty means "Program"
	Options string // Empty means "[options]"
	// Plain disables the color sequences around descriptions.
	Plain bool
}

// Usage returns the flag list of d as shown in help, for example
// "--name, -n <Value>". Single character names use one dash.
func (d Definition) Usage() string {
	names := make([]string, 0, 1+len(d.Aliases))
	for _, n := range append([]string{d.Name}, d.Aliases...) {
		if utf8.RuneCountInString(n) == 1 {
			names = append(names, "-"+n)
		} else {
			names = append(names, "--"+n)
		}
	}
	usage := strings.Join(names, ", ")
	if d.Type != TypeBoolean {
		usage += " <" + cmp.Or(d.UsageVariableName, defaultVarName) + ">"
	}
	return usage
}

// Help renders the usage line and one entry per definition in registration
// order. Entries are "  <usage> - <description>" unless any of them would
// be longer than 70 columns, in which case every entry puts the usage on
// its own line and wraps the description at 68 columns with a 4 space
// indent. The output depends only on the registry and opts.
func (p *Parser) Help(opts HelpOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s %s\n\nOptions:\n",
		cmp.Or(opts.Program, defaultProgram),
		cmp.Or(opts.Options, defaultOptions))

	usages := make([]string, len(p.defs))
	wrapped := false
	for i, d := range p.defs {
		usages[i] = d.Usage()
		if 4+runewidth.StringWidth(usages[i])+runewidth.StringWidth(d.Description) > oneLineMax {
			wrapped = true
		}
	}

	for i, d := range p.defs {
		if !wrapped {
			fmt.Fprintf(&b, "  %s - %s\n", usages[i], decorate(d.Description, !opts.Plain))
			continue
		}
		fmt.Fprintf(&b, "  %s\n", usages[i])
		lines := wrapText(d.Description, wrapWidth, wrapIndent)
		b.WriteString(decorate(strings.Join(lines, "\n"), !opts.Plain))
		b.WriteString("\n")
	}
	return b.String()
}

// decorate wraps s in the description color when on is set. Color is forced
// on; callers decide whether the output is a terminal.
func decorate(s string, on bool) string {
	if !on {
		return s
	}
	c := color.New(color.FgWhite)
	c.EnableColor()
	return c.Sprint(s)
}

// wrapText splits text on single spaces and packs words greedily into lines
// of at most width columns, each prefixed by indent spaces. A line is
// flushed when adding the next word and a separating space would exceed
// width. A word wider than width gets a line of its own.
func wrapText(text string, width, indent int) []string {
	var lines []string
	pad := strings.Repeat(" ", indent)
	var cur strings.Builder
	curWidth := 0

	for _, word := range strings.Split(text, " ") {
		w := runewidth.StringWidth(word)
		if curWidth+w+1 <= width {
			if curWidth > 0 {
				cur.WriteByte(' ')
				curWidth++
			}
			cur.WriteString(word)
			curWidth += w
			continue
		}
		if curWidth > 0 {
			lines = append(lines, pad+cur.String())
		}
		cur.Reset()
		cur.WriteString(word)
		curWidth = w
	}
	if curWidth > 0 {
		lines = append(lines, pad+cur.String())
	}
	return lines
}
