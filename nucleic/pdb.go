/*
 * pdb.go, part of torsionrings.
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

package nucleic

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	rings "github.com/rmera/torsionrings"
	"gonum.org/v1/gonum/spatial/r3"
)

//Atom is the part of a PDB ATOM record needed for the torsions.
type Atom struct {
	ID      int
	Name    string
	ResName string
	Chain   string
	ResID   int
	Coords  r3.Vec
}

//ReadPDB reads the ATOM records of the first model in the PDB file pdbname.
//Compressed files are accepted (see rings.Open). It is an error if no
//atoms are found.
func ReadPDB(pdbname string) ([]*Atom, error) {
	f, err := rings.Open(pdbname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	atoms, err := PDBRead(f)
	if err != nil {
		return nil, rings.Errorf(rings.ErrReading, pdbname, err, "PDBRead", "ReadPDB")
	}
	return atoms, nil
}

//PDBRead reads ATOM records from r until the end of the first model.
//HETATM records are ignored.
func PDBRead(r io.Reader) ([]*Atom, error) {
	atoms := make([]*Atom, 0, 500)
	pdb := bufio.NewReader(r)
	contlines := 0 //count the lines read to better report errors
	for {
		line, err := pdb.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if line == "" {
			break //only at io.EOF
		}
		contlines++
		line = strings.TrimRight(line, "\r\n")
		if strings.HasPrefix(line, "ENDMDL") || strings.TrimSpace(line) == "END" {
			break
		}
		if !strings.HasPrefix(line, "ATOM") {
			continue
		}
		at, err := readPDBLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", contlines, err)
		}
		atoms = append(atoms, at)
	}
	if len(atoms) == 0 {
		return nil, fmt.Errorf("No atoms found in PDB file")
	}
	return atoms, nil
}

//readPDBLine parses a valid ATOM line of a PDB file.
func readPDBLine(line string) (*Atom, error) {
	if len(line) < 54 {
		return nil, fmt.Errorf("ATOM record too short (%d characters)", len(line))
	}
	err := make([]error, 5) //accumulate errors to check at the end of the line.
	atom := new(Atom)
	atom.ID, err[0] = strconv.Atoi(strings.TrimSpace(line[6:11]))
	atom.Name = strings.TrimSpace(line[12:16])
	atom.ResName = strings.TrimSpace(line[17:20])
	atom.Chain = line[21:22]
	atom.ResID, err[1] = strconv.Atoi(strings.TrimSpace(line[22:26]))
	atom.Coords.X, err[2] = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	atom.Coords.Y, err[3] = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	atom.Coords.Z, err[4] = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	for _, e := range err {
		if e != nil {
			return nil, e
		}
	}
	//Some old files use '*' instead of the prime.
	atom.Name = strings.ReplaceAll(atom.Name, "*", "'")
	return atom, nil
}
