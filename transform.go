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

// Package rangechart implements the viewport engine behind an interactive
// price-range chart: a zoomable, pannable view of a piecewise liquidity
// curve with two draggable boundary handles.
//
// Four coordinate spaces are involved.  Data space holds the raw curve
// (price on x, liquidity on y).  Zoomed data space multiplies data
// coordinates by a [PrecisionScale], so that prices as small as 1e-4 are
// expressed in a numerically stable range.  View space additionally
// multiplies x by the zoom factor.  Finally, device space is the render
// surface in pixels, with px = (vx - OffsetVX) * Zoom.
package rangechart

import "math"

// CurvePoint is one sample of the liquidity curve.
// X is the price, Y the liquidity at that price.
type CurvePoint struct {
	X, Y float64
}

// PrecisionScale re-expresses data coordinates in a numerically stable
// range before any further scaling is applied.
type PrecisionScale struct {
	// DataZoomX is the reciprocal of the smallest meaningful price
	// interval, rounded up to a power of ten.  Always positive.
	DataZoomX float64

	// DataZoomY normalises the largest liquidity value to 1.
	// Always positive.
	DataZoomY float64
}

// DefaultScale is used when the curve has too few points to derive a scale.
var DefaultScale = PrecisionScale{DataZoomX: 1, DataZoomY: 1}

// NewPrecisionScale derives the precision scale for a curve.  The x scale
// comes from the gap between the first two points.  Curves with fewer than
// two points, or with a non-positive first gap, use the x scale of
// [DefaultScale].
func NewPrecisionScale(curve []CurvePoint) PrecisionScale {
	s := DefaultScale

	var maxY float64
	for _, p := range curve {
		maxY = max(maxY, p.Y)
	}
	if maxY > 0 && !math.IsInf(maxY, 0) {
		s.DataZoomY = 1 / maxY
	}

	if len(curve) < 2 {
		return s
	}
	gap := curve[1].X - curve[0].X
	if !(gap > 0) || math.IsInf(gap, 0) {
		return s
	}
	s.DataZoomX = math.Pow10(decimalExponent(gap))
	return s
}

// decimalExponent returns the smallest k such that gap * 10^k >= 1.  The
// small tolerance keeps exact powers of ten such as 1e-4 from rounding up
// to the next exponent.
func decimalExponent(gap float64) int {
	return int(math.Ceil(-math.Log10(gap) - exponentTolerance))
}

// DecimalLength returns the number of decimal digits resolved by the
// x scale: 4 for DataZoomX = 1e4, and 0 for scales of 1 or below.
func (s PrecisionScale) DecimalLength() int {
	if !(s.DataZoomX > 1) {
		return 0
	}
	return max(0, int(math.Round(math.Log10(s.DataZoomX))))
}

// ZoomedPoint is a curve point placed in view space.
type ZoomedPoint struct {
	VX, VY float64
	Source CurvePoint
}

// Transform maps between data space, view space and device space for one
// zoom/offset pair.  The zero value is not usable; Zoom must be positive.
type Transform struct {
	Scale    PrecisionScale
	Zoom     float64
	OffsetVX float64

	// SurfaceWidth is the width of the render surface in pixels.
	SurfaceWidth float64
}

// DataZoom returns the combined x scale from data space to view space.
func (t Transform) DataZoom() float64 {
	return t.Scale.DataZoomX * t.Zoom
}

// ToView converts a data-space price to view space.
func (t Transform) ToView(x float64) float64 {
	return x * t.Scale.DataZoomX * t.Zoom
}

// ToData converts a view-space position back to a data-space price.
// It is the inverse of ToView.
func (t Transform) ToData(vx float64) float64 {
	return vx / (t.Scale.DataZoomX * t.Zoom)
}

// ToPixel converts a view-space position to a device x coordinate.
func (t Transform) ToPixel(vx float64) float64 {
	return (vx - t.OffsetVX) * t.Zoom
}

// FromPixel converts a device x coordinate to view space.
func (t Transform) FromPixel(px float64) float64 {
	return px/t.Zoom + t.OffsetVX
}

// Window returns the visible view-space interval [lo, hi).
func (t Transform) Window() (lo, hi float64) {
	return t.OffsetVX, t.OffsetVX + t.SurfaceWidth/t.Zoom
}

// Visible reports whether vx lies inside the visible window.
func (t Transform) Visible(vx float64) bool {
	lo, hi := t.Window()
	return lo <= vx && vx < hi
}

// Zoomed places a curve point in view space.
func (t Transform) Zoomed(p CurvePoint) ZoomedPoint {
	return ZoomedPoint{
		VX:     t.ToView(p.X),
		VY:     p.Y * t.Scale.DataZoomY,
		Source: p,
	}
}

const exponentTolerance = 1e-9
