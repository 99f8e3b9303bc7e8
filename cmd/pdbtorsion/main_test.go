/*
 * main_test.go, part of torsionrings.
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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	rings "github.com/rmera/torsionrings"
)

const dinucleotide = `ATOM      1  P     G A   1       0.000   0.000   0.000  1.00  0.00
ATOM      2  O5'   G A   1       1.500   0.000   0.000  1.00  0.00
ATOM      3  C5'   G A   1       2.000   1.400   0.000  1.00  0.00
ATOM      4  C4'   G A   1       3.500   1.400   0.500  1.00  0.00
ATOM      5  C3'   G A   1       4.000   2.800   0.800  1.00  0.00
ATOM      6  O3'   G A   1       5.400   2.900   1.000  1.00  0.00
ATOM      7  P     C A   2       6.000   4.300   1.200  1.00  0.00
ATOM      8  O5'   C A   2       7.500   4.200   1.000  1.00  0.00
ATOM      9  C5'   C A   2       8.000   5.600   0.700  1.00  0.00
ATOM     10  C4'   C A   2       9.500   5.700   0.400  1.00  0.00
END
`

func TestRun(Te *testing.T) {
	dir := Te.TempDir()
	in := filepath.Join(dir, "in.pdb")
	if err := os.WriteFile(in, []byte(dinucleotide), 0o644); err != nil {
		Te.Fatal(err)
	}
	out := filepath.Join(dir, "angles.dat")
	var stdout, stderr bytes.Buffer
	if code := run([]string{in, out}, &stdout, &stderr); code != ExitSuccess {
		Te.Fatalf("exit %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Successfully read 10 atoms") {
		Te.Errorf("Unexpected output:\n%s", stdout.String())
	}
	data, err := rings.ReadFile(out)
	if err != nil {
		Te.Fatal(err)
	}
	if len(data) != 2 {
		Te.Fatalf("Expected 2 residues, got %d", len(data))
	}
	//residue 1 has no previous P, residue 2 has no O3'.
	if !data[0].IsMissing(rings.Alpha) || data[0].IsMissing(rings.Beta) || data[0].IsMissing(rings.Zeta) {
		Te.Errorf("Unexpected first residue %v", data[0])
	}
	if data[1].IsMissing(rings.Alpha) || !data[1].IsMissing(rings.Gamma) {
		Te.Errorf("Unexpected second residue %v", data[1])
	}
}

func TestRunErrors(Te *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != ExitUsageError {
		Te.Errorf("No arguments gave exit %d", code)
	}
	if code := run([]string{filepath.Join(Te.TempDir(), "none.pdb")}, &stdout, &stderr); code != ExitFailure {
		Te.Errorf("Missing file gave exit %d", code)
	}
}
