// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/yeetrun/argparse/pkg/argparse"
	"github.com/yeetrun/argparse/pkg/tui"
)

const defaultName = "World"

func newParser() *argparse.Parser {
	return argparse.New().
		Define(argparse.Definition{Type: argparse.TypeString, Name: "name", Aliases: []string{"n"}, Default: defaultName, Description: "Who to greet"}).
		Define(argparse.Definition{Type: argparse.TypeNumber, Name: "count", Aliases: []string{"c"}, Default: float64(1), Description: "How many times to greet"}).
		Define(argparse.Definition{Type: argparse.TypeNumber, Name: "interval", Aliases: []string{"i"}, Default: float64(0), UsageVariableName: "SECONDS", Description: "Pause between greetings"}).
		Define(argparse.Definition{Type: argparse.TypeBoolean, Name: "loud", Aliases: []string{"l"}, Description: "Shout"}).
		Define(argparse.Definition{Type: argparse.TypeBoolean, Name: "help", Aliases: []string{"h"}, Description: "Show this help"})
}

// message builds the greeting line for res.
func message(res argparse.Result) string {
	// A bare --name is stored as true.
	name, ok := res.String("name")
	if !ok {
		name = defaultName
	}
	msg := fmt.Sprintf("Hello, %s!", name)
	if loud, _ := res.Bool("loud"); loud {
		msg = strings.ToUpper(msg)
	}
	return msg
}

func main() {
	p := newParser()
	res, err := p.Parse(p.HideBin(os.Args))
	if err != nil {
		log.Fatal(err)
	}
	if help, _ := res.Bool("help"); help {
		fmt.Print(p.Help(argparse.HelpOptions{Program: "greet", Plain: !tui.ShouldDecorate(os.Stdout)}))
		return
	}

	count, _ := res.Number("count")
	interval, _ := res.Number("interval")
	msg := message(res)
	for i := 0; i < int(count); i++ {
		if i > 0 {
			time.Sleep(time.Duration(interval * float64(time.Second)))
		}
		fmt.Println(msg)
	}
}
