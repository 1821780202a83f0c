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

package testcases

import (
	"math"

	"seehuhn.de/go/rangechart"
)

var shapeCases = []TestCase{
	{
		Name:   "flat",
		Curve:  flat(50, 1, 1, 100),
		Width:  400,
		Height: 120,
	},
	{
		Name:   "ramp",
		Curve:  ramp(50, 1, 1, 10),
		Width:  400,
		Height: 120,
	},
	{
		Name:   "bell",
		Curve:  bell(200, 10, 0.5, 60, 10, 1000),
		Width:  400,
		Height: 120,
	},
	{
		Name:   "spike",
		Curve:  spike(200, 10, 0.5, 120, 5, 500),
		Width:  400,
		Height: 120,
	},
	{
		Name: "bimodal",
		Curve: sum(
			bell(300, 100, 1, 200, 15, 400),
			bell(300, 100, 1, 300, 30, 800),
		),
		Width:  400,
		Height: 120,
	},
}

var precisionCases = []TestCase{
	{
		Name:   "tiny_prices",
		Curve:  bell(400, 0.0001, 0.0001, 0.02, 0.005, 1e9),
		Width:  400,
		Height: 120,
	},
	{
		Name:   "large_prices",
		Curve:  bell(100, 10000, 500, 35000, 5000, 3),
		Width:  400,
		Height: 120,
	},
	{
		Name: "duplicates",
		Curve: []rangechart.CurvePoint{
			pt(1, 5), pt(1.5, 8), pt(1.5, 9), pt(2, 4), pt(2.5, 4), pt(2.5, 7), pt(3, 1),
		},
		Width:  200,
		Height: 80,
	},
}

var denseCases = []TestCase{
	{
		Name:   "dense_5k",
		Curve:  bell(5000, 1, 0.01, 25, 8, 2e6),
		Width:  600,
		Height: 160,
	},
	{
		Name:   "dense_20k_zoomed_out",
		Curve:  bell(20000, 1, 0.01, 100, 30, 2e6),
		Width:  600,
		Height: 160,
		Ops: []Operation{
			ZoomOut{Degree: 6, Align: rangechart.AlignCenter},
		},
	},
}

var degenerateCases = []TestCase{
	{
		Name:   "empty",
		Width:  100,
		Height: 40,
	},
	{
		Name:   "single",
		Curve:  []rangechart.CurvePoint{pt(5, 10)},
		Width:  100,
		Height: 40,
	},
	{
		Name:   "zero_gap",
		Curve:  []rangechart.CurvePoint{pt(2, 1), pt(2, 3), pt(4, 2)},
		Width:  100,
		Height: 40,
	},
}

var interactionCases = []TestCase{
	{
		Name:   "drag_min_right",
		Curve:  bell(200, 10, 0.5, 60, 10, 1000),
		Width:  400,
		Height: 120,
		Ops: []Operation{
			Drag{Handle: rangechart.MinHandle, DeltaPx: 80, Steps: 40},
		},
	},
	{
		Name:   "drag_max_left",
		Curve:  bell(200, 10, 0.5, 60, 10, 1000),
		Width:  400,
		Height: 120,
		Ops: []Operation{
			Drag{Handle: rangechart.MaxHandle, DeltaPx: -120, Steps: 60},
		},
	},
	{
		Name:   "input_then_shrink",
		Curve:  bell(200, 10, 0.5, 60, 10, 1000),
		Width:  400,
		Height: 120,
		Ops: []Operation{
			Input{Handle: rangechart.MinHandle, X: 40},
			Input{Handle: rangechart.MaxHandle, X: 75},
			Shrink{},
		},
	},
	{
		Name:   "zoom_and_pan",
		Curve:  bell(1000, 1, 0.1, 50, 12, 5000),
		Width:  400,
		Height: 120,
		Ops: []Operation{
			ZoomIn{Degree: 3, Align: rangechart.AlignCenter},
			Pan{DeltaPx: 150, Steps: 30},
			ZoomOut{Degree: 1, Align: rangechart.AlignRight},
		},
	},
}

// flat returns n points of constant liquidity y, starting at price x0.
func flat(n int, x0, dx, y float64) []rangechart.CurvePoint {
	curve := make([]rangechart.CurvePoint, n)
	for i := range curve {
		curve[i] = pt(x0+float64(i)*dx, y)
	}
	return curve
}

// ramp returns n points of linearly increasing liquidity.
func ramp(n int, x0, dx, slope float64) []rangechart.CurvePoint {
	curve := make([]rangechart.CurvePoint, n)
	for i := range curve {
		curve[i] = pt(x0+float64(i)*dx, slope*float64(i+1))
	}
	return curve
}

// bell returns n points of a Gaussian liquidity profile with the given
// centre, width and peak.
func bell(n int, x0, dx, center, width, peak float64) []rangechart.CurvePoint {
	curve := make([]rangechart.CurvePoint, n)
	for i := range curve {
		x := x0 + float64(i)*dx
		d := (x - center) / width
		curve[i] = pt(x, peak*math.Exp(-d*d/2))
	}
	return curve
}

// spike returns a flat curve of liquidity base, with a single point of
// liquidity top close to the price at.
func spike(n int, x0, dx, at, base, top float64) []rangechart.CurvePoint {
	curve := flat(n, x0, dx, base)
	i := int(math.Round((at - x0) / dx))
	if i >= 0 && i < n {
		curve[i].Y = top
	}
	return curve
}

// sum adds the liquidity of curves which share their price grid.
func sum(a, b []rangechart.CurvePoint) []rangechart.CurvePoint {
	out := make([]rangechart.CurvePoint, min(len(a), len(b)))
	for i := range out {
		out[i] = pt(a[i].X, a[i].Y+b[i].Y)
	}
	return out
}
