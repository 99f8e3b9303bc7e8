/*
 * ringplot_test.go, part of torsionrings.
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
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	rings "github.com/rmera/torsionrings"
)

var scenario = rings.AngleRecord{-60, -45, 175, 80, -120, -95, -170}

func TestBands(Te *testing.T) {
	for k := 0; k < NBands; k++ {
		in, out := Band(k)
		if in != 80+70*float64(k) || out-in != 70 {
			Te.Errorf("Band %d spans [%g,%g]", k, in, out)
		}
		if BandForChannel(ChannelForBand(k)) != k {
			Te.Errorf("Band/channel mapping is not reversible for %d", k)
		}
	}
	if ChannelForBand(0) != rings.Chi || ChannelForBand(6) != rings.Alpha {
		Te.Errorf("Chi must be innermost and alpha outermost, got %v and %v", ChannelForBand(0), ChannelForBand(6))
	}
	radii := GuideRadii()
	want := []float64{80, 150, 220, 290, 360, 430, 500, 570}
	for i := range want {
		if radii[i] != want[i] {
			Te.Errorf("Guide radius %d is %g, want %g", i, radii[i], want[i])
		}
	}
}

func TestTicksClockwise(Te *testing.T) {
	degs := TickDegrees()
	if len(degs) != 6 || degs[0] != 0 || degs[5] != 300 {
		Te.Fatalf("Unexpected degree marks %v", degs)
	}
	//60 degrees clockwise from +x is below the x axis.
	x, y := Polar(LabelRing, TickTheta(60))
	if math.Abs(x-300) > 1e-9 || math.Abs(y+600*math.Sqrt(3)/2) > 1e-9 {
		Te.Errorf("60 degree mark at (%g,%g)", x, y)
	}
}

func TestSpokes(Te *testing.T) {
	S := DefaultStyle()
	withMissing := scenario
	withMissing[rings.Chi] = rings.Missing
	data := rings.AngleDataset{scenario, withMissing}
	sp := Spokes(data, S)
	if len(sp) != 2*rings.NChannels-1 {
		Te.Fatalf("Expected %d spokes, got %d", 2*rings.NChannels-1, len(sp))
	}
	for _, v := range sp {
		if v.Residue == 1 && v.Channel == rings.Chi {
			Te.Errorf("A spoke was drawn for a missing chi: %+v", v)
		}
		in, out := Band(v.Band)
		if v.Inner != in || v.Outer != out || ChannelForBand(v.Band) != v.Channel {
			Te.Errorf("Spoke in the wrong band: %+v", v)
		}
		if math.Abs(v.Theta-rings.Normalize(v.Angle)*math.Pi/180) > 1e-12 {
			Te.Errorf("Spoke at the wrong position: %+v", v)
		}
	}
	//the first spoke is the chi of the first residue, -170 -> 190 degrees.
	if sp[0].Channel != rings.Chi || math.Abs(sp[0].Theta-190*math.Pi/180) > 1e-12 {
		Te.Errorf("Unexpected first spoke %+v", sp[0])
	}
}

func TestSpokesNonFinite(Te *testing.T) {
	odd := scenario
	odd[rings.Alpha] = math.NaN()
	odd[rings.Beta] = math.Inf(-1)
	sp := Spokes(rings.AngleDataset{odd}, DefaultStyle())
	if len(sp) != rings.NChannels-2 {
		Te.Fatalf("Expected %d spokes, got %d", rings.NChannels-2, len(sp))
	}
	for _, v := range sp {
		if v.Channel == rings.Alpha || v.Channel == rings.Beta {
			Te.Errorf("A spoke was drawn for a non-finite angle: %+v", v)
		}
	}
}

func TestSpokeColor(Te *testing.T) {
	S := DefaultStyle()
	dim := SpokeColor(S, rings.Alpha, 0)
	bright := SpokeColor(S, rings.Alpha, -180)
	if dim.R != 102 || bright.R != 255 || dim.G != 0 || dim.B != 0 {
		Te.Errorf("Unexpected alpha colors %v %v", dim, bright)
	}
	if dim.A != 204 {
		Te.Errorf("Spokes should be 80%% opaque, got %d", dim.A)
	}
	//orange is (1,0.5,0): the green component scales too.
	if c := SpokeColor(S, rings.Delta, -120); c.R != 204 || c.G != 102 || c.B != 0 {
		Te.Errorf("Unexpected delta color %v", c)
	}
	if c := BaseColor(S, rings.Chi); c.R != 204 || c.G != 0 || c.B != 204 || c.A != 255 {
		Te.Errorf("Unexpected chi base color %v", c)
	}
}

func TestParseFormat(Te *testing.T) {
	for s, want := range map[string]Format{"png": PNG, "PDF": PDF, " pdf ": PDF} {
		f, err := ParseFormat(s)
		if err != nil || f != want {
			Te.Errorf("ParseFormat(%q)=%v,%v", s, f, err)
		}
	}
	if _, err := ParseFormat("svg"); err == nil {
		Te.Error("svg should not be accepted")
	}
}

//TestRender draws the same data as PNG and PDF.
func TestRender(Te *testing.T) {
	dir := Te.TempDir()
	withMissing := scenario
	withMissing[rings.Chi] = rings.Missing
	data := rings.AngleDataset{scenario, withMissing, {10, 20, 30, 40, 50, 60, 70}}
	pngname := filepath.Join(dir, "rings.png")
	if err := Render(data, pngname, "Test rings", PNG, nil); err != nil {
		Te.Fatal(err)
	}
	f, err := os.Open(pngname)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		Te.Fatal(err)
	}
	S := DefaultStyle()
	b := img.Bounds()
	wantW := int(math.Round((S.Side + S.LegendWidth) * float64(S.DPI)))
	wantH := int(math.Round((S.Side + S.TitleHeight) * float64(S.DPI)))
	fmt.Println("PNG size", b.Dx(), b.Dy())
	if abs(b.Dx()-wantW) > 1 || abs(b.Dy()-wantH) > 1 {
		Te.Errorf("PNG is %dx%d, want %dx%d", b.Dx(), b.Dy(), wantW, wantH)
	}
	//The corners are white background.
	if r, g, bl, a := img.At(b.Min.X, b.Min.Y).RGBA(); r != 0xffff || g != 0xffff || bl != 0xffff || a != 0xffff {
		Te.Errorf("Background is not opaque white: %d %d %d %d", r, g, bl, a)
	}
	pdfname := filepath.Join(dir, "rings.pdf")
	if err := Render(data, pdfname, "Test rings", PDF, nil); err != nil {
		Te.Fatal(err)
	}
	content, err := os.ReadFile(pdfname)
	if err != nil {
		Te.Fatal(err)
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		Te.Error("The PDF output doesn't look like a PDF")
	}
}

func TestRenderEmpty(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "rings.png")
	err := Render(rings.AngleDataset{}, name, "Nothing", PNG, nil)
	if !errors.Is(err, rings.ErrNoData) {
		Te.Errorf("Expected ErrNoData, got %v", err)
	}
	if _, err := os.Stat(name); !os.IsNotExist(err) {
		Te.Error("No output file should be created for an empty dataset")
	}
}

func TestRenderUnwritable(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "no", "such", "dir", "rings.png")
	err := Render(rings.AngleDataset{scenario}, name, "", PNG, nil)
	if !errors.Is(err, rings.ErrWriting) {
		Te.Errorf("Expected ErrWriting, got %v", err)
	}
}

func TestLoadStyle(Te *testing.T) {
	S, err := LoadStyle("../testdata/style.yaml")
	if err != nil {
		Te.Fatal(err)
	}
	if S.DPI != 72 || S.Side != 4 || S.SpokeWidth != 1 {
		Te.Errorf("Style values not read: %+v", S)
	}
	if S.Colors[rings.Alpha].Hex() != "#aa0000" || S.Colors[rings.Chi].Hex() != "#550055" {
		Te.Errorf("Colors not read: %s %s", S.Colors[rings.Alpha].Hex(), S.Colors[rings.Chi].Hex())
	}
	//untouched values keep the defaults
	if S.SpokeAlpha != 0.8 || S.Colors[rings.Beta] != DefaultStyle().Colors[rings.Beta] {
		Te.Errorf("Defaults lost: %+v", S)
	}
	name := filepath.Join(Te.TempDir(), "small.png")
	if err := Render(rings.AngleDataset{scenario}, name, "Styled", PNG, S); err != nil {
		Te.Fatal(err)
	}
}

func TestBadStyles(Te *testing.T) {
	bad := []string{
		"dpi: 0",
		"spoke_alpha: 2",
		"colors:\n  omega: \"#000000\"",
		"colors:\n  alpha: \"red\"",
		"side: [1, 2]",
	}
	for _, b := range bad {
		if _, err := ParseStyle([]byte(b)); err == nil {
			Te.Errorf("Style %q should be rejected", b)
		}
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
