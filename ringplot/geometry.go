/*
 * geometry.go, part of torsionrings.
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

package ringplot

import (
	"image/color"
	"math"

	rings "github.com/rmera/torsionrings"
)

//Some geometry constants, in data units.
const (
	Extent    = 600.0 //the data space spans [-Extent,Extent] in both axes.
	FirstRing = 80.0  //inner radius of the innermost band
	BandWidth = 70.0
	TickInner = 550.0
	TickOuter = 580.0
	LabelRing = 600.0
	NGuides   = 8
	TickStep  = 60.0
	NBands    = rings.NChannels
)

//GuideRadii returns the radii of the reference circles.
func GuideRadii() []float64 {
	ret := make([]float64, NGuides)
	for i := range ret {
		ret[i] = FirstRing + float64(i)*BandWidth
	}
	return ret
}

//TickDegrees returns the angles, in degrees, where the degree marks go.
func TickDegrees() []float64 {
	ret := make([]float64, 0, 6)
	for d := 0.0; d < 360; d += TickStep {
		ret = append(ret, d)
	}
	return ret
}

//Band returns the inner and outer radii of band k. Band 0 is the innermost.
func Band(k int) (inner, outer float64) {
	inner = FirstRing + float64(k)*BandWidth
	return inner, inner + BandWidth
}

//ChannelForBand returns the angle drawn in band k. The order is reversed
//with respect to the table: chi is innermost, alpha outermost.
func ChannelForBand(k int) rings.Channel {
	return rings.Channel(NBands - 1 - k)
}

//BandForChannel is the inverse of ChannelForBand.
func BandForChannel(c rings.Channel) int {
	return NBands - 1 - int(c)
}

//TickTheta returns the position in radians for a degree mark.
//The marks go clockwise, so the angle is negated.
func TickTheta(degrees float64) float64 {
	return -degrees * math.Pi / 180.0
}

//SpokeTheta returns the position in radians for a torsion angle in degrees.
func SpokeTheta(angle float64) float64 {
	return rings.Normalize(angle) * math.Pi / 180.0
}

//Polar returns the cartesian coordinates of a point at radius r and angle theta (radians).
func Polar(r, theta float64) (x, y float64) {
	return r * math.Cos(theta), r * math.Sin(theta)
}

//SpokeColor returns the color for a spoke of channel c at the given angle:
//the base color of the channel scaled by rings.Intensity(angle).
func SpokeColor(S *Style, c rings.Channel, angle float64) color.NRGBA {
	k := rings.Intensity(angle)
	base := S.Colors[c]
	return color.NRGBA{
		R: unit2byte(base[0] * k),
		G: unit2byte(base[1] * k),
		B: unit2byte(base[2] * k),
		A: unit2byte(S.SpokeAlpha),
	}
}

//BaseColor returns the opaque base color for the channel c.
func BaseColor(S *Style, c rings.Channel) color.NRGBA {
	base := S.Colors[c]
	return color.NRGBA{R: unit2byte(base[0]), G: unit2byte(base[1]), B: unit2byte(base[2]), A: 255}
}

//unit2byte takes a value in [0,1] (it clamps otherwise) and returns it scaled to 0-255.
func unit2byte(v float64) uint8 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

//Spoke is one radial line of the plot.
type Spoke struct {
	Residue      int
	Channel      rings.Channel
	Band         int
	Angle        float64 //the torsion angle, degrees
	Theta        float64 //the position, radians
	Inner, Outer float64
	Color        color.NRGBA
}

//Spokes returns all the spokes to be drawn for data, band by band from the
//center. Missing, NaN and infinite values give no spoke.
func Spokes(data rings.AngleDataset, S *Style) []Spoke {
	ret := make([]Spoke, 0, len(data)*NBands)
	for k := 0; k < NBands; k++ {
		inner, outer := Band(k)
		c := ChannelForBand(k)
		for res, rec := range data {
			a := rec[c]
			if rec.IsMissing(c) || math.IsNaN(a) || math.IsInf(a, 0) {
				continue
			}
			ret = append(ret, Spoke{
				Residue: res,
				Channel: c,
				Band:    k,
				Angle:   a,
				Theta:   SpokeTheta(a),
				Inner:   inner,
				Outer:   outer,
				Color:   SpokeColor(S, c, a),
			})
		}
	}
	return ret
}
