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
	"cmp"
	"math"
	"slices"
)

// DefaultSidePadding is the number of extra screens of points kept on each
// side of the visible window, so that panning does not reveal a cutoff.
const DefaultSidePadding = 2

// Decimate returns the points of curve which should be rendered for the
// view described by t.  The curve must be sorted by X.
//
// Points within padding screens on either side of the visible window are
// kept.  For Zoom >= 1 every such point is returned.  For smaller zoom
// factors, points are grouped into buckets one view-space unit wide and
// only the point at the median index of each bucket is kept, so the result
// has at most (1+2*padding)*SurfaceWidth/Zoom + 2 elements.
//
// The reduction is deterministic and order-preserving: decimating the
// sources of the returned points again yields the same points.
func Decimate(curve []CurvePoint, t Transform, padding float64) []ZoomedPoint {
	if len(curve) == 0 || !(t.Zoom > 0) {
		return nil
	}

	lo, hi := t.Window()
	pad := max(padding, 0) * (hi - lo)
	lo, hi = lo-pad, hi+pad

	// ToView is monotone, so the window is a contiguous index range.
	byView := func(p CurvePoint, vx float64) int {
		return cmp.Compare(t.ToView(p.X), vx)
	}
	first, _ := slices.BinarySearchFunc(curve, lo, byView)
	last, _ := slices.BinarySearchFunc(curve, hi, byView)
	if first >= last {
		return nil
	}

	visible := make([]ZoomedPoint, last-first)
	for i, p := range curve[first:last] {
		visible[i] = t.Zoomed(p)
	}
	if t.Zoom >= 1 {
		return visible
	}
	return reduceBuckets(visible)
}

// reduceBuckets keeps one point per view-space unit.  The points must be
// sorted by VX, so that every bucket is a contiguous run.
//
// TODO: the median sample can hide narrow liquidity spikes at high
// decimation ratios; a max-per-bucket variant would preserve them.
func reduceBuckets(points []ZoomedPoint) []ZoomedPoint {
	var out []ZoomedPoint
	start := 0
	for start < len(points) {
		key := math.Floor(points[start].VX)
		end := start + 1
		for end < len(points) && math.Floor(points[end].VX) == key {
			end++
		}
		out = append(out, points[(start+end-1)/2])
		start = end
	}
	return out
}
