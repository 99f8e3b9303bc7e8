/*
 * summary.go, part of torsionrings.
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
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//ChannelSummary holds a few statistics for the present values of one channel.
type ChannelSummary struct {
	Channel Channel
	Present int
	Missing int

	//Circular mean, in degrees in (-180,180]. NaN if there are no values.
	Mean float64
	Min  float64
	Max  float64

	//Number of values in each 60 degree sector of the normalized
	//angle: [0,60), [60,120) ... [300,360).
	Sectors [6]float64
}

var sectorDividers = []float64{0, 60, 120, 180, 240, 300, 360}

//sectors bins the normalized angles in vals.
func sectors(vals []float64) [6]float64 {
	var ret [6]float64
	norm := make([]float64, len(vals))
	for i, v := range vals {
		norm[i] = Normalize(v)
	}
	sort.Float64s(norm)
	copy(ret[:], stat.Histogram(nil, sectorDividers, norm, nil))
	return ret
}

//finite returns the values in vals that are neither NaN nor infinite.
func finite(vals []float64) []float64 {
	ret := vals[:0]
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		ret = append(ret, v)
	}
	return ret
}

//Summarize returns one ChannelSummary per channel, in table order.
//NaN and infinite angles are counted as missing.
func Summarize(data AngleDataset) []ChannelSummary {
	ret := make([]ChannelSummary, 0, NChannels)
	for _, c := range Channels() {
		vals := finite(data.Column(c))
		s := ChannelSummary{Channel: c, Present: len(vals), Missing: len(data) - len(vals)}
		if len(vals) == 0 {
			s.Mean, s.Min, s.Max = math.NaN(), math.NaN(), math.NaN()
			ret = append(ret, s)
			continue
		}
		rad := make([]float64, len(vals))
		floats.ScaleTo(rad, math.Pi/180.0, vals)
		s.Mean = stat.CircularMean(rad, nil) * 180.0 / math.Pi
		s.Min = floats.Min(vals)
		s.Max = floats.Max(vals)
		s.Sectors = sectors(vals)
		ret = append(ret, s)
	}
	return ret
}

func (S ChannelSummary) String() string {
	return fmt.Sprintf("%-8s %5d present %5d missing  mean %7.1f  min %7.1f  max %7.1f  sectors %v",
		S.Channel.Name(), S.Present, S.Missing, S.Mean, S.Min, S.Max, S.Sectors)
}

//SummaryString returns the summaries as a multi-line string.
func SummaryString(sums []ChannelSummary) string {
	t := make([]string, 0, len(sums))
	for _, v := range sums {
		t = append(t, v.String())
	}
	return strings.Join(t, "\n")
}
