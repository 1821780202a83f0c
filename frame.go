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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// YFill is the fraction of the surface height used by the tallest bar.
const YFill = 0.9

// Frame is a snapshot of everything needed to draw the chart.
// The slices are shared between frames and must not be modified.
type Frame struct {
	Width, Height float64
	Transform     Transform

	// CTM maps view space to device space, with the origin in the
	// top-left corner of the surface and y pointing down.
	CTM matrix.Matrix

	Points  []ZoomedPoint // decimated curve points
	Outline []vec.Vec2    // step outline in view space
	Area    *path.Data    // step outline in device space
	Axis    []AxisUnit    // price axis ticks

	Handles [2]HandleMark // indexed by Handle
}

// HandleMark describes the on-screen state of one handle.
type HandleMark struct {
	VX    float64   // view space
	PX    float64   // device space
	Box   rect.Rect // area in which a pointer-down grabs the handle
	State DragState
}

// DeviceMatrix returns the transformation from view space to device space
// for a surface of the given height.
func DeviceMatrix(t Transform, height float64) matrix.Matrix {
	return matrix.Matrix{t.Zoom, 0, 0, -height * YFill, -t.OffsetVX * t.Zoom, height}
}

type frameKey struct {
	version       uint64
	zoom, offset  float64
	width, height float64
}

// frameCache memoizes the parts of a frame which depend only on the curve
// and the view.  Handle positions are recomputed for every frame.
type frameCache struct {
	valid   bool
	key     frameKey
	points  []ZoomedPoint
	outline []vec.Vec2
	area    *path.Data
	axis    []AxisUnit
}

// Frame returns the current render snapshot.
func (c *Chart) Frame() *Frame {
	t := c.Transform()
	w, h := c.Size()
	key := frameKey{
		version: c.version,
		zoom:    t.Zoom,
		offset:  t.OffsetVX,
		width:   w,
		height:  h,
	}
	ctm := DeviceMatrix(t, h)

	if !c.cache.valid || c.cache.key != key {
		points := Decimate(c.curve, t, c.opts.SidePadding)
		outline := BuildOutline(points)
		var axis []AxisUnit
		if len(c.curve) > 0 {
			lo, hi := t.Window()
			axis = AxisUnits(t.DataZoom(), t.ToData(lo), t.ToData(hi), c.opts.AxisBaseUnit)
		}
		c.cache = frameCache{
			valid:   true,
			key:     key,
			points:  points,
			outline: outline,
			area:    AreaPath(outline, ctm),
			axis:    axis,
		}
	}

	f := &Frame{
		Width:     w,
		Height:    h,
		Transform: t,
		CTM:       ctm,
		Points:    c.cache.points,
		Outline:   c.cache.outline,
		Area:      c.cache.area,
		Axis:      c.cache.axis,
	}
	for _, hd := range []Handle{MinHandle, MaxHandle} {
		vx := c.bounds.VX(hd, t.Zoom)
		f.Handles[hd] = HandleMark{
			VX:    vx,
			PX:    t.ToPixel(vx),
			Box:   c.handleBox(hd),
			State: c.bounds.State(hd),
		}
	}
	return f
}

// handleBox returns the grab area of handle h in device space.
func (c *Chart) handleBox(h Handle) rect.Rect {
	t := c.Transform()
	px := t.ToPixel(c.bounds.VX(h, t.Zoom))
	half := c.opts.HandleHitWidth / 2
	return rect.Rect{LLx: px - half, LLy: 0, URx: px + half, URy: c.view.Height()}
}

func inBox(r rect.Rect, x, y float64) bool {
	return r.LLx <= x && x <= r.URx && r.LLy <= y && y <= r.URy
}
