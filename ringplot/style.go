/*
 * style.go, part of torsionrings.
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
	"os"
	"strconv"
	"strings"

	rings "github.com/rmera/torsionrings"
	"gopkg.in/yaml.v3"
)

//RGB is a color with components in [0,1].
type RGB [3]float64

//Hex returns the color in "#rrggbb" form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", unit2byte(c[0]), unit2byte(c[1]), unit2byte(c[2]))
}

//ParseRGB reads a color in "#rrggbb" form.
func ParseRGB(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("Invalid color %q, use #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("Invalid color %q: %w", s, err)
	}
	return RGB{float64(v>>16&0xff) / 255, float64(v>>8&0xff) / 255, float64(v&0xff) / 255}, nil
}

//Style contains the things of a ring plot that can be changed.
//Sizes are in inches, font sizes in points. The ring geometry is fixed.
type Style struct {
	DPI         int     `yaml:"dpi"`
	Side        float64 `yaml:"side"`
	LegendWidth float64 `yaml:"legend_width"`
	TitleHeight float64 `yaml:"title_height"`
	TitleSize   float64 `yaml:"title_size"`
	LabelSize   float64 `yaml:"label_size"`
	LegendSize  float64 `yaml:"legend_size"`
	SpokeWidth  float64 `yaml:"spoke_width"`
	SpokeAlpha  float64 `yaml:"spoke_alpha"`

	//Base color for each channel, indexed by rings.Channel.
	Colors [rings.NChannels]RGB `yaml:"-"`
}

//DefaultStyle returns the standard style: red alpha ring outermost, purple
//chi ring innermost, 150 dpi.
func DefaultStyle() *Style {
	return &Style{
		DPI:         150,
		Side:        9,
		LegendWidth: 1.8,
		TitleHeight: 0.6,
		TitleSize:   16,
		LabelSize:   10,
		LegendSize:  11,
		SpokeWidth:  1.5,
		SpokeAlpha:  0.8,
		Colors: [rings.NChannels]RGB{
			rings.Alpha:   {1.0, 0.0, 0.0}, //red
			rings.Beta:    {0.0, 0.8, 0.0}, //green
			rings.Gamma:   {0.0, 0.0, 1.0}, //blue
			rings.Delta:   {1.0, 0.5, 0.0}, //orange
			rings.Epsilon: {1.0, 0.0, 1.0}, //magenta
			rings.Zeta:    {0.0, 0.8, 0.8}, //cyan
			rings.Chi:     {0.8, 0.0, 0.8}, //purple
		},
	}
}

//Check returns an error if some value of the style can't be used.
func (S *Style) Check() error {
	switch {
	case S.DPI <= 0:
		return fmt.Errorf("dpi must be positive, got %d", S.DPI)
	case S.Side <= 0 || S.LegendWidth < 0 || S.TitleHeight < 0:
		return fmt.Errorf("Invalid canvas sizes side=%g legend_width=%g title_height=%g", S.Side, S.LegendWidth, S.TitleHeight)
	case S.TitleSize <= 0 || S.LabelSize <= 0 || S.LegendSize <= 0:
		return fmt.Errorf("Font sizes must be positive")
	case S.SpokeWidth <= 0:
		return fmt.Errorf("spoke_width must be positive, got %g", S.SpokeWidth)
	case S.SpokeAlpha < 0 || S.SpokeAlpha > 1:
		return fmt.Errorf("spoke_alpha must be in [0,1], got %g", S.SpokeAlpha)
	}
	return nil
}

//LoadStyle reads a YAML style file. Values not in the file keep
//their defaults. Colors go in a "colors" map keyed by angle name, i.e.
//
//	dpi: 300
//	colors:
//	  alpha: "#aa0000"
//	  chi: "#550055"
func LoadStyle(name string) (*Style, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, rings.Errorf(rings.ErrUnableOpen, name, err, "LoadStyle")
	}
	S, err := ParseStyle(b)
	if err != nil {
		return nil, rings.NewError("Invalid style", name, err, true, "LoadStyle")
	}
	return S, nil
}

//ParseStyle is like LoadStyle, but the YAML document is given directly.
func ParseStyle(b []byte) (*Style, error) {
	S := DefaultStyle()
	if err := yaml.Unmarshal(b, S); err != nil {
		return nil, err
	}
	var c struct {
		Colors map[string]string `yaml:"colors"`
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	for name, hex := range c.Colors {
		ch, ok := channelByName(name)
		if !ok {
			return nil, fmt.Errorf("Unknown angle %q in colors", name)
		}
		col, err := ParseRGB(hex)
		if err != nil {
			return nil, err
		}
		S.Colors[ch] = col
	}
	if err := S.Check(); err != nil {
		return nil, err
	}
	return S, nil
}

func channelByName(name string) (rings.Channel, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range rings.Channels() {
		if c.Name() == name {
			return c, true
		}
	}
	return 0, false
}
