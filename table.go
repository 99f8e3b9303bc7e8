/*
 * table.go, part of torsionrings.
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
	"fmt"
	"io"
	"os"
)

//Residue is a numbered AngleRecord, as written in a torsion angle table.
type Residue struct {
	Number int
	Name   string
	Chain  string
	Angles AngleRecord
}

const tableHeader = "Residue  Alpha    Beta    Gamma   Delta  Epsilon   Zeta      Chi\n" +
	"------- -------- ------- ------- ------- -------- ------- -------\n"

//WriteTable writes residues to w as a torsion angle table, which Read
//can parse. Missing angles are written as 999.0.
func WriteTable(w io.Writer, residues []Residue) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(tableHeader); err != nil {
		return err
	}
	for _, r := range residues {
		a := r.Angles
		_, err := fmt.Fprintf(bw, "%7d %8.1f %7.1f %7.1f %7.1f %8.1f %7.1f %7.1f\n",
			r.Number, a[Alpha], a[Beta], a[Gamma], a[Delta], a[Epsilon], a[Zeta], a[Chi])
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

//WriteTableFile writes residues to the file name. See WriteTable.
func WriteTableFile(name string, residues []Residue) error {
	out, err := os.Create(name)
	if err != nil {
		return Errorf(ErrWriting, name, err, "WriteTableFile")
	}
	err = WriteTable(out, residues)
	if err2 := out.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return Errorf(ErrWriting, name, err, "WriteTableFile")
	}
	return nil
}
