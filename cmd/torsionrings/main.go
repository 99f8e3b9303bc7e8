/*
 * main.go, part of torsionrings.
 *
 * Copyright 2024 The torsionrings Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Torsionrings reads a table of backbone torsion angles (one residue per line:
//residue number, an optional label, and the alpha, beta, gamma, delta,
//epsilon, zeta and chi angles) and draws them as concentric rings, chi
//innermost and alpha outermost.
//
//Usage:
//
//	torsionrings [-o rings.png] [-t title] [-f png|pdf] [-s style.yaml] [-v] input
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path"

	rings "github.com/rmera/torsionrings"
	"github.com/rmera/torsionrings/ringplot"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

type options struct {
	output  string
	title   string
	format  string
	style   string
	verbose bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet(path.Base(os.Args[0]), flag.ContinueOnError)
	fs.SetOutput(stderr)
	//Every option has a short and a long name.
	for _, n := range []string{"o", "output"} {
		fs.StringVar(&opts.output, n, "rings.png", "Output file")
	}
	for _, n := range []string{"t", "title"} {
		fs.StringVar(&opts.title, n, "Backbone Torsion Rings", "Plot title")
	}
	for _, n := range []string{"f", "format"} {
		fs.StringVar(&opts.format, n, "png", "Output format, png or pdf")
	}
	for _, n := range []string{"s", "style"} {
		fs.StringVar(&opts.style, n, "", "YAML file with style settings (optional)")
	}
	fs.BoolVar(&opts.verbose, "v", false, "Print a summary of each angle")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage:", fs.Name(), "[options] input_file")
		fmt.Fprintln(stderr, "Generate torsion rings visualization from angle data")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return ExitUsageError
	}
	//flag stops at the first positional argument, so options may also follow the input.
	var positional []string
	for fs.NArg() > 0 {
		positional = append(positional, fs.Arg(0))
		if err := fs.Parse(fs.Args()[1:]); err != nil {
			return ExitUsageError
		}
	}
	if len(positional) != 1 {
		fs.Usage()
		return ExitUsageError
	}
	format, err := ringplot.ParseFormat(opts.format)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return ExitUsageError
	}
	style := ringplot.DefaultStyle()
	if opts.style != "" {
		if style, err = ringplot.LoadStyle(opts.style); err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return ExitFailure
		}
	}
	input := positional[0]
	fmt.Fprintf(stdout, "Reading torsion angles from: %s\n", input)
	data, err := rings.ReadFile(input)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading file: %v\n", err)
		return ExitFailure
	}
	nangles := 0
	if len(data) > 0 {
		nangles = rings.NChannels
	}
	fmt.Fprintf(stdout, "Read %d residues with %d angle types\n", len(data), nangles)
	if opts.verbose && len(data) > 0 {
		fmt.Fprintln(stdout, rings.SummaryString(rings.Summarize(data)))
	}
	if err := ringplot.Render(data, opts.output, opts.title, format, style); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return ExitFailure
	}
	fmt.Fprintf(stdout, "Successfully generated: %s\n", opts.output)
	return ExitSuccess
}
