/*
 * read.go, part of torsionrings.
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

package rings

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

//ReadFile reads the torsion angle table in the file name. Compressed files
//are accepted (see Open). It returns the dataset, which may be empty if
//no valid line was found, and an error if the file can't be opened or read.
func ReadFile(name string) (AngleDataset, error) {
	f, err := Open(name)
	if err != nil {
		return nil, errDecorate(err, "ReadFile")
	}
	defer f.Close()
	data, err := Read(f)
	if err != nil {
		return nil, Errorf(ErrReading, name, err, "Read", "ReadFile")
	}
	return data, nil
}

//Read reads a torsion angle table from r. Each data line has a residue
//number, optionally a label (such as the nucleotide type), and the seven
//angles in the order alpha, beta, gamma, delta, epsilon, zeta, chi.
//Blank lines, headers (lines containing "Residue" or "---") and lines that
//can't be parsed are skipped. Only errors from r are returned.
func Read(r io.Reader) (AngleDataset, error) {
	data := make(AngleDataset, 0, 100)
	in := bufio.NewReader(r)
	for {
		//lines have no length limit, a very long one is just malformed.
		line, err := in.ReadString('\n')
		if len(line) > 0 {
			if rec, ok := ParseLine(line); ok {
				data = append(data, rec)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

//ParseLine parses one line of a torsion angle table. It returns false
//if the line is a header, blank, or malformed.
func ParseLine(line string) (AngleRecord, bool) {
	var rec AngleRecord
	line = strings.TrimSpace(line)
	if line == "" || strings.Contains(line, "Residue") || strings.Contains(line, "---") {
		return rec, false
	}
	fields := strings.Fields(line)
	if len(fields) < NChannels+1 {
		return rec, false
	}
	//If the second field is not a number, it is a label and the angles start after it.
	//A numeric label is taken as an angle.
	first := 1
	if _, err := strconv.ParseFloat(fields[1], 64); err != nil {
		first = 2
	}
	if len(fields) < first+NChannels {
		return rec, false
	}
	for i, v := range fields[first : first+NChannels] {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return rec, false
		}
		rec[i] = f
	}
	return rec, true
}
