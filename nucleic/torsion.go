/*
 * torsion.go, part of torsionrings.
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

//Package nucleic obtains the seven backbone torsion angles of nucleic acids
//from the atomic coordinates in a PDB file.
//
//The angles follow the IUPAC-IUBMB definitions:
//
//	alpha:   P(n-1)  O5'(n)   C5'(n)    C4'(n)
//	beta:    O5'(n)  C5'(n)   C4'(n)    C3'(n)
//	gamma:   C5'(n)  C4'(n)   C3'(n)    O3'(n)
//	delta:   C4'(n)  C3'(n)   O3'(n)    P(n+1)
//	epsilon: C3'(n)  O3'(n)   P(n+1)    O5'(n+1)
//	zeta:    O3'(n)  P(n+1)   O5'(n+1)  C5'(n+1)
//	chi:     O4'(n)  C1'(n)   N9(n)     C8(n)  (purines)
//	         O4'(n)  C1'(n)   N1(n)     C6(n)  (pyrimidines)
//
//Angles that can't be calculated because an atom is missing are set to rings.Missing.
package nucleic

import (
	"math"

	rings "github.com/rmera/torsionrings"
	"gonum.org/v1/gonum/spatial/r3"
)

//Dihedral returns the dihedral angle, in degrees in [-180,180], defined
//by the points a, b, c and d.
func Dihedral(a, b, c, d r3.Vec) float64 {
	//bma=b minus a
	bma := r3.Sub(b, a)
	cmb := r3.Sub(c, b)
	dmc := r3.Sub(d, c)
	bmascaled := r3.Scale(r3.Norm(cmb), bma)
	first := r3.Dot(bmascaled, r3.Cross(cmb, dmc))
	v1 := r3.Cross(bma, cmb)
	v2 := r3.Cross(cmb, dmc)
	second := r3.Dot(v1, v2)
	return math.Atan2(first, second) * 180 / math.Pi
}

//atomKey locates an atom by chain, residue number and name.
type atomKey struct {
	chain string
	resid int
	name  string
}

type index map[atomKey]*Atom

func newIndex(atoms []*Atom) index {
	ret := make(index, len(atoms))
	for _, at := range atoms {
		k := atomKey{at.Chain, at.ResID, at.Name}
		if _, ok := ret[k]; !ok {
			ret[k] = at //the first one wins, as with alternate locations.
		}
	}
	return ret
}

//find returns the coordinates of the atoms named in names, all from residue resid
//of chain, and false if any of them is not present.
func (I index) find(chain string, resid int, names ...string) ([]r3.Vec, bool) {
	ret := make([]r3.Vec, len(names))
	for i, n := range names {
		at, ok := I[atomKey{chain, resid, n}]
		if !ok {
			return nil, false
		}
		ret[i] = at.Coords
	}
	return ret, true
}

//quad describes the four atoms of a torsion, with the residue offset of each.
type quad struct {
	names   [4]string
	offsets [4]int
}

var backbone = [...]struct {
	c rings.Channel
	q quad
}{
	{rings.Alpha, quad{[4]string{"P", "O5'", "C5'", "C4'"}, [4]int{-1, 0, 0, 0}}},
	{rings.Beta, quad{[4]string{"O5'", "C5'", "C4'", "C3'"}, [4]int{0, 0, 0, 0}}},
	{rings.Gamma, quad{[4]string{"C5'", "C4'", "C3'", "O3'"}, [4]int{0, 0, 0, 0}}},
	{rings.Delta, quad{[4]string{"C4'", "C3'", "O3'", "P"}, [4]int{0, 0, 0, 1}}},
	{rings.Epsilon, quad{[4]string{"C3'", "O3'", "P", "O5'"}, [4]int{0, 0, 1, 1}}},
	{rings.Zeta, quad{[4]string{"O3'", "P", "O5'", "C5'"}, [4]int{0, 1, 1, 1}}},
}

func (I index) torsion(chain string, resid int, q quad) float64 {
	var p [4]r3.Vec
	for i := range p {
		v, ok := I.find(chain, resid+q.offsets[i], q.names[i])
		if !ok {
			return rings.Missing
		}
		p[i] = v[0]
	}
	return Dihedral(p[0], p[1], p[2], p[3])
}

//chi uses N9 and C8 for purines, N1 and C6 for pyrimidines. Each atom
//falls back independently of the other.
func (I index) chi(chain string, resid int) float64 {
	q := quad{[4]string{"O4'", "C1'", "N9", "C8"}, [4]int{}}
	if _, ok := I.find(chain, resid, "N9"); !ok {
		q.names[2] = "N1"
	}
	if _, ok := I.find(chain, resid, "C8"); !ok {
		q.names[3] = "C6"
	}
	return I.torsion(chain, resid, q)
}

//Torsions returns the torsion angles for each residue in atoms, in the
//order in which the residues first appear. Residue numbering is used to
//find the previous and next residues, so gaps in numbering give missing angles.
func Torsions(atoms []*Atom) []rings.Residue {
	idx := newIndex(atoms)
	ret := make([]rings.Residue, 0, len(atoms)/20+1)
	type resKey struct {
		chain string
		resid int
	}
	seen := make(map[resKey]bool)
	for _, at := range atoms {
		k := resKey{at.Chain, at.ResID}
		if seen[k] {
			continue
		}
		seen[k] = true
		res := rings.Residue{Number: at.ResID, Name: at.ResName, Chain: at.Chain}
		for _, b := range backbone {
			res.Angles[b.c] = idx.torsion(at.Chain, at.ResID, b.q)
		}
		res.Angles[rings.Chi] = idx.chi(at.Chain, at.ResID)
		ret = append(ret, res)
	}
	return ret
}

//Dataset returns just the angles of residues, in the same order.
func Dataset(residues []rings.Residue) rings.AngleDataset {
	ret := make(rings.AngleDataset, len(residues))
	for i, v := range residues {
		ret[i] = v.Angles
	}
	return ret
}
