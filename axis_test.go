// seehuhn.de/go/rangechart - an interactive price-range chart engine
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package rangechart

import (
	"math"
	"testing"
)

func TestAxisUnits(t *testing.T) {
	cases := []struct {
		name           string
		dataZoom       float64
		from, to, base float64
		values         []float64
		labels         []string
	}{
		{
			name: "whole", dataZoom: 1, from: 0, to: 1000, base: 100,
			values: []float64{0, 100, 200, 300, 400, 500, 600, 700, 800, 900},
			labels: []string{"0", "100", "200", "300", "400", "500", "600", "700", "800", "900"},
		},
		{
			name: "offset", dataZoom: 1, from: 150, to: 480, base: 100,
			values: []float64{100, 200, 300},
			labels: []string{"100", "200", "300"},
		},
		{
			name: "fraction", dataZoom: 1000, from: 0.05, to: 0.5, base: 100,
			values: []float64{0, 0.1, 0.2, 0.3},
			labels: []string{"0", "0.1", "0.2", "0.3"},
		},
		{
			name: "zoomed", dataZoom: 2, from: 10, to: 210, base: 100,
			values: []float64{0, 50, 100, 150},
			labels: []string{"0", "50", "100", "150"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AxisUnits(tc.dataZoom, tc.from, tc.to, tc.base)
			if len(got) != len(tc.values) {
				t.Fatalf("got %d ticks, want %d: %v", len(got), len(tc.values), got)
			}
			for i, u := range got {
				if u.Value != tc.values[i] || u.Label != tc.labels[i] {
					t.Errorf("tick %d = %g %q, want %g %q",
						i, u.Value, u.Label, tc.values[i], tc.labels[i])
				}
				if want := tc.values[i] * tc.dataZoom; math.Abs(u.VX-want) > 1e-9*max(1, want) {
					t.Errorf("tick %d at VX %g, want %g", i, u.VX, want)
				}
			}
		})
	}
}

func TestAxisUnitsEmpty(t *testing.T) {
	cases := []struct {
		name                     string
		dataZoom, from, to, base float64
	}{
		{"narrow", 1, 0, 50, 100},
		{"reversed", 1, 500, 100, 100},
		{"zero_zoom", 0, 0, 1000, 100},
		{"zero_unit", 1, 0, 1000, 0},
		{"nan", 1, math.NaN(), 1000, 100},
		{"inf", 1, 0, math.Inf(1), 100},
	}
	for _, tc := range cases {
		if got := AxisUnits(tc.dataZoom, tc.from, tc.to, tc.base); got != nil {
			t.Errorf("%s: got %v, want nil", tc.name, got)
		}
	}
}
