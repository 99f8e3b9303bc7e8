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

//Pdbtorsion computes the backbone torsion angles of the nucleic acid
//residues in a PDB file and writes them as a table that torsionrings can plot.
//Angles that can't be calculated are written as 999.0.
//
//Usage:
//
//	pdbtorsion file.pdb [output_file]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path"

	rings "github.com/rmera/torsionrings"
	"github.com/rmera/torsionrings/nucleic"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const defaultOutput = "torsion_angles.dat"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(path.Base(os.Args[0]), flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage:", fs.Name(), "pdb_file [output_file]")
		fmt.Fprintln(stderr, "If output_file is not specified,", defaultOutput, "is used")
	}
	if err := fs.Parse(args); err != nil {
		return ExitUsageError
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return ExitUsageError
	}
	output := defaultOutput
	if fs.NArg() == 2 {
		output = fs.Arg(1)
	}
	atoms, err := nucleic.ReadPDB(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return ExitFailure
	}
	fmt.Fprintf(stdout, "Successfully read %d atoms from PDB file\n", len(atoms))
	if err := rings.WriteTableFile(output, nucleic.Torsions(atoms)); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return ExitFailure
	}
	fmt.Fprintf(stdout, "Torsion angles written to: %s\n", output)
	return ExitSuccess
}
