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

// Package testcases provides named liquidity curves and interaction
// scripts, used by the tests, the reference generator and the benchmarks.
package testcases

import (
	"seehuhn.de/go/rangechart"
)

// TestCase defines a single chart scenario.
type TestCase struct {
	Name   string                  // lowercase a-z, 0-9 and _ only
	Curve  []rangechart.CurvePoint // the liquidity curve
	Width  int                     // surface width in pixels
	Height int                     // surface height in pixels
	Ops    []Operation             // applied in order after mounting
}

// Operation is one user action applied to the chart.
type Operation interface {
	isOperation()
}

// ZoomIn zooms in by Degree steps.
type ZoomIn struct {
	Degree float64
	Align  rangechart.Align
}

// ZoomOut zooms out by Degree steps.
type ZoomOut struct {
	Degree float64
	Align  rangechart.Align
}

// Pan drags the background by DeltaPx pixels in Steps pointer moves.
type Pan struct {
	DeltaPx float64
	Steps   int
}

// Drag drags a handle by DeltaPx pixels in Steps pointer moves.
type Drag struct {
	Handle  rangechart.Handle
	DeltaPx float64
	Steps   int
}

// Input types a price into the input field of a handle.
type Input struct {
	Handle rangechart.Handle
	X      float64
}

// Shrink fits the view to the handles.
type Shrink struct{}

func (ZoomIn) isOperation()  {}
func (ZoomOut) isOperation() {}
func (Pan) isOperation()     {}
func (Drag) isOperation()    {}
func (Input) isOperation()   {}
func (Shrink) isOperation()  {}

// NewChart creates a chart for the test case and applies its operations.
func (tc TestCase) NewChart(opts rangechart.Options) (*rangechart.Chart, error) {
	c, err := rangechart.NewChart(float64(tc.Width), float64(tc.Height), tc.Curve, opts)
	if err != nil {
		return nil, err
	}
	for _, op := range tc.Ops {
		Apply(c, op)
	}
	return c, nil
}

// Apply performs a single operation on c.  Gestures are delivered as
// pointer events, the same way a render surface would deliver them.
func Apply(c *rangechart.Chart, op Operation) {
	_, h := c.Size()
	y := h / 2
	switch op := op.(type) {
	case ZoomIn:
		c.ZoomIn(op.Degree, op.Align)
	case ZoomOut:
		c.ZoomOut(op.Degree, op.Align)
	case Pan:
		gesture(c, panStart(c), y, op.DeltaPx, op.Steps)
	case Drag:
		t := c.Transform()
		vx := c.MinBoundaryVX()
		if op.Handle == rangechart.MaxHandle {
			vx = c.MaxBoundaryVX()
		}
		gesture(c, t.ToPixel(vx), y, op.DeltaPx, op.Steps)
	case Input:
		if op.Handle == rangechart.MinHandle {
			c.InputMinBoundaryX(op.X)
		} else {
			c.InputMaxBoundaryX(op.X)
		}
	case Shrink:
		c.ShrinkToView()
	}
}

func gesture(c *rangechart.Chart, x0, y, delta float64, steps int) {
	steps = max(steps, 1)
	c.Handle(rangechart.PointerDown{X: x0, Y: y})
	for i := 1; i < steps; i++ {
		c.Handle(rangechart.PointerMove{X: x0 + delta*float64(i)/float64(steps), Y: y})
	}
	c.Handle(rangechart.PointerUp{X: x0 + delta, Y: y})
}

// panStart returns a pointer position outside both handle grab areas:
// right of the max handle if there is room, otherwise left of the min
// handle.
func panStart(c *rangechart.Chart) float64 {
	f := c.Frame()
	if x := f.Handles[rangechart.MaxHandle].Box.URx + 1; x < f.Width {
		return x
	}
	return f.Handles[rangechart.MinHandle].Box.LLx - 1
}

// pt is a helper to create a curve point.
func pt(x, y float64) rangechart.CurvePoint {
	return rangechart.CurvePoint{X: x, Y: y}
}
