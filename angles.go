/*
 * angles.go, part of torsionrings.
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

import "math"

//Missing is the value that marks an angle that could not be measured.
//It is never treated as a real angle.
const Missing float64 = 999.0

//NChannels is the number of torsion angles tracked per residue.
const NChannels int = 7

//Channel identifies one of the seven backbone torsion angles.
type Channel int

const (
	Alpha Channel = iota
	Beta
	Gamma
	Delta
	Epsilon
	Zeta
	Chi
)

var channelNames = [NChannels]string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "chi"}
var channelSymbols = [NChannels]string{"α", "β", "γ", "δ", "ε", "ζ", "χ"}

//Channels returns all the channels in table order (alpha first).
func Channels() []Channel {
	return []Channel{Alpha, Beta, Gamma, Delta, Epsilon, Zeta, Chi}
}

//Name returns the lowercase name of the angle, i.e. "epsilon".
func (c Channel) Name() string {
	if c < 0 || int(c) >= NChannels {
		return "unknown"
	}
	return channelNames[c]
}

//Symbol returns the greek letter for the angle.
func (c Channel) Symbol() string {
	if c < 0 || int(c) >= NChannels {
		return "?"
	}
	return channelSymbols[c]
}

func (c Channel) String() string { return c.Name() }

//AngleRecord contains the seven torsion angles of one residue, in degrees,
//in the order alpha, beta, gamma, delta, epsilon, zeta, chi.
type AngleRecord [NChannels]float64

//Angle returns the value for the channel c.
func (A AngleRecord) Angle(c Channel) float64 {
	return A[c]
}

//IsMissing returns true if the value for channel c is the Missing sentinel.
func (A AngleRecord) IsMissing(c Channel) bool {
	return A[c] == Missing
}

//AngleDataset is the ordered set of records read from a file. The position
//of a record is the residue index.
type AngleDataset []AngleRecord

//Len returns the number of residues in the set.
func (D AngleDataset) Len() int {
	return len(D)
}

//Column returns the present (non-missing) values of channel c,
//in residue order.
func (D AngleDataset) Column(c Channel) []float64 {
	ret := make([]float64, 0, len(D))
	for _, v := range D {
		if v.IsMissing(c) {
			continue
		}
		ret = append(ret, v[c])
	}
	return ret
}

//Normalize maps an angle in degrees to the interval [0,360).
func Normalize(angle float64) float64 {
	//Mod is exact, and it keeps the sign of the dividend.
	ret := math.Mod(angle, 360.0)
	if ret < 0 {
		ret += 360.0
	}
	//ret+360 rounds to exactly 360 for tiny negative values.
	if ret >= 360.0 {
		ret = 0
	}
	return ret
}

//Intensity is the factor applied to the base color of a spoke.
//For angles in [-180,180] it goes from 0.4 to 1.0 with |angle|.
func Intensity(angle float64) float64 {
	return 0.4 + math.Abs(angle)/180.0*0.6
}
