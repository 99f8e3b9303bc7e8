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
)

func writeInput(Te *testing.T, dir, content string) string {
	Te.Helper()
	name := filepath.Join(dir, "angles.dat")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		Te.Fatal(err)
	}
	return name
}

//chdir moves to dir for the rest of the test.
func chdir(Te *testing.T, dir string) {
	Te.Helper()
	wd, err := os.Getwd()
	if err != nil {
		Te.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		Te.Fatal(err)
	}
	Te.Cleanup(func() { os.Chdir(wd) })
}

func TestDefaultOutput(Te *testing.T) {
	for _, line := range []string{
		"1 -60.0 -45.0 175.0 80.0 -120.0 -95.0 -170.0",
		"1 A -60.0 -45.0 175.0 80.0 -120.0 -95.0 -170.0",
	} {
		dir := Te.TempDir()
		in := writeInput(Te, dir, line+"\n")
		chdir(Te, dir)
		var stdout, stderr bytes.Buffer
		if code := run([]string{in}, &stdout, &stderr); code != ExitSuccess {
			Te.Fatalf("exit %d: %s", code, stderr.String())
		}
		info, err := os.Stat(filepath.Join(dir, "rings.png"))
		if err != nil || info.Size() == 0 {
			Te.Fatalf("rings.png not written: %v", err)
		}
		out := stdout.String()
		for _, want := range []string{"Reading torsion angles from: " + in, "Read 1 residues with 7 angle types", "Successfully generated: rings.png"} {
			if !strings.Contains(out, want) {
				Te.Errorf("Output lacks %q:\n%s", want, out)
			}
		}
	}
}

func TestOptions(Te *testing.T) {
	dir := Te.TempDir()
	in := writeInput(Te, dir, "Residue Alpha\n1 -60 -45 175 80 -120 -95 999.0\n2 -65 170 50 85 -150 -70 -160\n")
	out := filepath.Join(dir, "out.pdf")
	var stdout, stderr bytes.Buffer
	code := run([]string{"--output", out, "-t", "My title", "--format", "pdf", "-v", in}, &stdout, &stderr)
	if code != ExitSuccess {
		Te.Fatalf("exit %d: %s", code, stderr.String())
	}
	b, err := os.ReadFile(out)
	if err != nil || !bytes.HasPrefix(b, []byte("%PDF")) {
		Te.Errorf("No PDF written: %v", err)
	}
	if !strings.Contains(stdout.String(), "chi") {
		Te.Errorf("Summary not printed:\n%s", stdout.String())
	}
}

func TestInputBeforeOptions(Te *testing.T) {
	dir := Te.TempDir()
	in := writeInput(Te, dir, "1 nan -45 175 80 -120 -95 -170\n2 inf 170 50 85 -150 -70 -160\n3 -60 -45 175 80 -120 -95 999.0\n")
	out := filepath.Join(dir, "after.png")
	var stdout, stderr bytes.Buffer
	code := run([]string{in, "-o", out, "--title", "Mixed", "-v"}, &stdout, &stderr)
	if code != ExitSuccess {
		Te.Fatalf("exit %d: %s", code, stderr.String())
	}
	if info, err := os.Stat(out); err != nil || info.Size() == 0 {
		Te.Errorf("%s not written: %v", out, err)
	}
	if !strings.Contains(stdout.String(), "Successfully generated: "+out) {
		Te.Errorf("Unexpected output:\n%s", stdout.String())
	}
	stderr.Reset()
	if code := run([]string{in, "-o", out, in}, &stdout, &stderr); code != ExitUsageError {
		Te.Errorf("Two inputs gave exit %d", code)
	}
}

func TestFailures(Te *testing.T) {
	dir := Te.TempDir()
	headers := writeInput(Te, dir, "Residue  Alpha    Beta\n------- --------\n\n")
	out := filepath.Join(dir, "never.png")
	cases := []struct {
		name string
		args []string
		code int
	}{
		{"only headers", []string{"-o", out, headers}, ExitFailure},
		{"missing input", []string{"-o", out, filepath.Join(dir, "nothere.dat")}, ExitFailure},
		{"bad format", []string{"-o", out, "-f", "gif", headers}, ExitUsageError},
		{"no input", []string{"-o", out}, ExitUsageError},
		{"bad flag", []string{"--nope", headers}, ExitUsageError},
		{"missing style", []string{"-o", out, "-s", filepath.Join(dir, "nothere.yaml"), headers}, ExitFailure},
	}
	for _, c := range cases {
		var stdout, stderr bytes.Buffer
		if code := run(c.args, &stdout, &stderr); code != c.code {
			Te.Errorf("%s: exit %d, want %d", c.name, code, c.code)
		}
		if stderr.Len() == 0 {
			Te.Errorf("%s: nothing reported", c.name)
		}
		if _, err := os.Stat(out); !os.IsNotExist(err) {
			Te.Fatalf("%s: output file was created", c.name)
		}
	}
}
