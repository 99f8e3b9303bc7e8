/*
 * ringplot.go, part of torsionrings.
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

//Package ringplot draws the torsion angles of a set of residues as
//concentric rings. Each of the seven bands contains one spoke per residue,
//placed at the angle's value, so conformational families show up as
//clusters of spokes.
package ringplot

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	rings "github.com/rmera/torsionrings"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
)

//Format is the output format of a plot.
type Format int

const (
	PNG Format = iota //raster, the default
	PDF               //vector
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case PDF:
		return "pdf"
	}
	return "unknown"
}

//ParseFormat returns the Format named by s ("png" or "pdf", any case).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return PNG, nil
	case "pdf":
		return PDF, nil
	}
	return PNG, rings.NewError(fmt.Sprintf("Unknown output format %q (use png or pdf)", s), "", nil, true, "ParseFormat")
}

//labelMargin leaves room around the data space for the degree labels,
//which are centered at the very edge of it.
const labelMargin = 22

func basicRingPlot() *plot.Plot {
	p := plot.New()
	p.HideAxes()
	//Constant axes
	p.X.Min = -Extent
	p.X.Max = Extent
	p.Y.Min = -Extent
	p.Y.Max = Extent
	p.BackgroundColor = color.Transparent
	return p
}

//NewPlot returns a plot with the guide circles, the degree marks and
//the spokes for data. It has no title and no legend, see Render.
func NewPlot(data rings.AngleDataset, S *Style) *plot.Plot {
	p := basicRingPlot()
	p.Add(newGuideCircles(), newDegreeTicks(S))
	p.Add(&spokes{s: Spokes(data, S), width: vg.Points(S.SpokeWidth)})
	return p
}

//NewLegend returns the legend, one entry per ring from the center
//("Ring 1: χ") with the base color of the angle.
func NewLegend(S *Style) plot.Legend {
	l := plot.NewLegend()
	l.Top = true
	l.Left = true
	l.TextStyle.Font.Size = vg.Points(S.LegendSize)
	l.Padding = vg.Points(4)
	l.ThumbnailWidth = vg.Points(14)
	for k := 0; k < NBands; k++ {
		c := ChannelForBand(k)
		l.Add(fmt.Sprintf("Ring %d: %s", k+1, c.Symbol()), swatch{BaseColor(S, c)})
	}
	return l
}

//Draw draws the complete figure (title, rings and legend) on c, which should
//have the size returned by S.CanvasSize.
func Draw(c draw.Canvas, data rings.AngleDataset, title string, S *Style) {
	side := vg.Length(S.Side) * vg.Inch
	legendw := vg.Length(S.LegendWidth) * vg.Inch
	titleh := vg.Length(S.TitleHeight) * vg.Inch
	w := c.Max.X - c.Min.X
	h := c.Max.Y - c.Min.Y
	c.FillPolygon(color.White, []vg.Point{c.Min, {X: c.Min.X, Y: c.Max.Y}, c.Max, {X: c.Max.X, Y: c.Min.Y}})
	if title != "" {
		sty := text.Style{
			Color:   color.Black,
			Font:    font.From(plot.DefaultFont, vg.Points(S.TitleSize)),
			XAlign:  text.XCenter,
			YAlign:  text.YCenter,
			Handler: plot.DefaultTextHandler,
		}
		sty.Font.Weight = xfont.WeightBold
		c.FillText(sty, vg.Point{X: c.Min.X + w/2, Y: c.Min.Y + h - titleh/2}, title)
	}
	m := vg.Points(labelMargin)
	area := draw.Crop(c, m, -(w - side) - m, m, -titleh-m)
	NewPlot(data, S).Draw(area)
	if legendw > 0 {
		l := NewLegend(S)
		l.Draw(draw.Crop(c, side, 0, 0, -titleh))
	}
}

//CanvasSize returns the width and height of the figure. The canvas fits
//the content, there is no slack around it.
func (S *Style) CanvasSize() (w, h vg.Length) {
	return vg.Length(S.Side+S.LegendWidth) * vg.Inch, vg.Length(S.Side+S.TitleHeight) * vg.Inch
}

func newCanvas(f Format, S *Style) (vg.CanvasWriterTo, error) {
	w, h := S.CanvasSize()
	switch f {
	case PNG:
		c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(S.DPI), vgimg.UseBackgroundColor(color.White))
		return vgimg.PngCanvas{Canvas: c}, nil
	case PDF:
		c := vgpdf.New(w, h)
		c.EmbedFonts(true)
		return c, nil
	}
	return nil, rings.NewError(fmt.Sprintf("Unknown output format %d", int(f)), "", nil, true)
}

//Render draws data to the file plotname, in the format f, with the given
//title. If S is nil, DefaultStyle is used. An empty dataset is an error,
//and no file is created in that case.
func Render(data rings.AngleDataset, plotname, title string, f Format, S *Style) error {
	if len(data) == 0 {
		return rings.Errorf(rings.ErrNoData, plotname, nil, "Render")
	}
	if S == nil {
		S = DefaultStyle()
	}
	if err := S.Check(); err != nil {
		return rings.NewError("Invalid style", "", err, true, "Render")
	}
	cv, err := newCanvas(f, S)
	if err != nil {
		return err
	}
	Draw(draw.New(cv), data, title, S)
	out, err := os.Create(plotname)
	if err != nil {
		return rings.Errorf(rings.ErrWriting, plotname, err, "Render")
	}
	_, err = cv.WriteTo(out)
	//here I intentionally shadow err.
	if err := out.Close(); err != nil {
		return rings.Errorf(rings.ErrWriting, plotname, err, "Render")
	}
	if err != nil {
		return rings.Errorf(rings.ErrWriting, plotname, err, "Render")
	}
	return nil
}
