/*
 * plotters.go, part of torsionrings.
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
	"fmt"
	"image/color"
	"math"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//frame maps the polar data space onto a canvas with the same scale
//in both axes, so circles stay circles.
type frame struct {
	origin vg.Point
	scale  float64 //canvas length per data unit
}

func newFrame(c draw.Canvas, plt *plot.Plot) frame {
	trX, trY := plt.Transforms(&c)
	sx := float64(trX(Extent)-trX(-Extent)) / (2 * Extent)
	sy := float64(trY(Extent)-trY(-Extent)) / (2 * Extent)
	return frame{origin: vg.Point{X: trX(0), Y: trY(0)}, scale: math.Min(sx, sy)}
}

func (F frame) at(r, theta float64) vg.Point {
	x, y := Polar(r, theta)
	return vg.Point{X: F.origin.X + vg.Length(x*F.scale), Y: F.origin.Y + vg.Length(y*F.scale)}
}

func (F frame) length(r float64) vg.Length {
	return vg.Length(r * F.scale)
}

//guideCircles draws the faint reference circles.
type guideCircles struct {
	radii []float64
	draw.LineStyle
}

func newGuideCircles() *guideCircles {
	return &guideCircles{
		radii:     GuideRadii(),
		LineStyle: draw.LineStyle{Color: color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 255}, Width: vg.Points(0.5)},
	}
}

func (G *guideCircles) Plot(c draw.Canvas, plt *plot.Plot) {
	f := newFrame(c, plt)
	c.SetLineStyle(G.LineStyle)
	for _, r := range G.radii {
		var p vg.Path
		rad := f.length(r)
		p.Move(vg.Point{X: f.origin.X + rad, Y: f.origin.Y})
		p.Arc(f.origin, rad, 0, 2*math.Pi)
		p.Close()
		c.Stroke(p)
	}
}

//degreeTicks draws the short radial marks and their labels, clockwise from the positive x axis.
type degreeTicks struct {
	degrees []float64
	draw.LineStyle
	Label text.Style
}

func newDegreeTicks(S *Style) *degreeTicks {
	lab := text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, vg.Points(S.LabelSize)),
		XAlign:  text.XCenter,
		YAlign:  text.YCenter,
		Handler: plot.DefaultTextHandler,
	}
	lab.Font.Weight = xfont.WeightBold
	return &degreeTicks{
		degrees:   TickDegrees(),
		LineStyle: draw.LineStyle{Color: color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}, Width: vg.Points(1.5)},
		Label:     lab,
	}
}

func (D *degreeTicks) Plot(c draw.Canvas, plt *plot.Plot) {
	f := newFrame(c, plt)
	for _, d := range D.degrees {
		theta := TickTheta(d)
		c.StrokeLines(D.LineStyle, []vg.Point{f.at(TickInner, theta), f.at(TickOuter, theta)})
		c.FillText(D.Label, f.at(LabelRing, theta), fmt.Sprintf("%.0f°", d))
	}
}

//spokes draws one radial line per residue and band.
type spokes struct {
	s     []Spoke
	width vg.Length
}

func (S *spokes) Plot(c draw.Canvas, plt *plot.Plot) {
	f := newFrame(c, plt)
	sty := draw.LineStyle{Width: S.width}
	for _, v := range S.s {
		sty.Color = v.Color
		c.StrokeLines(sty, []vg.Point{f.at(v.Inner, v.Theta), f.at(v.Outer, v.Theta)})
	}
}

//swatch is a legend thumbnail filled with a solid color.
type swatch struct {
	color color.Color
}

func (S swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(S.color, c.ClipPolygonY(pts))
}
