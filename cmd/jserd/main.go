// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Program jserd validates JSON input and extracts values from it.
//
// Usage:
//
//	jserd fmt config.json
//	cat data.json | jserd get episodes 0 title
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/creachadair/jserd/jdoc"
)

var cli struct {
	Fmt fmtCmd `cmd:"" help:"Validate JSON input and print it in compact form."`
	Get getCmd `cmd:"" help:"Extract the value at a path from JSON input."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("jserd"),
		kong.Description("Validate JSON documents and extract values from them."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}

type fmtCmd struct {
	Input   string `arg:"" optional:"" help:"Path to input file. If omitted, reads from stdin." type:"path"`
	Lenient bool   `short:"l" help:"Accept comments and trailing commas in the input."`
}

func (c fmtCmd) Run() error {
	d, err := parseInput(c.Input, c.Lenient)
	if err != nil {
		return err
	}
	defer d.Release()
	text, err := d.Root().JSON()
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

type getCmd struct {
	Path    []string `arg:"" help:"Path of object keys and array offsets to traverse."`
	Input   string   `short:"i" help:"Path to input file. If omitted, reads from stdin." type:"path"`
	Lenient bool     `short:"l" help:"Accept comments and trailing commas in the input."`
}

func (c getCmd) Run() error {
	d, err := parseInput(c.Input, c.Lenient)
	if err != nil {
		return err
	}
	defer d.Release()

	// A path element that parses as an integer is an array offset; anything
	// else is an object key.
	path := make([]any, len(c.Path))
	for i, elt := range c.Path {
		if z, err := strconv.Atoi(elt); err == nil {
			path[i] = z
		} else {
			path[i] = elt
		}
	}
	h, err := d.Root().Path(path...)
	if err != nil {
		return err
	}
	text, err := h.JSON()
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

func parseInput(path string, lenient bool) (*jdoc.Document, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	if lenient {
		return jdoc.ParseLenient(r)
	}
	return jdoc.Parse(r)
}
