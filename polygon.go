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
	"seehuhn.de/go/geom/vec"
)

// BuildOutline returns the closed outline of the step-shaped area below
// the given points, in view space.  The points must be sorted by VX.
//
// The curve consists of bucketed liquidity amounts, so each point is drawn
// as a flat step reaching to the next point.  The last step has the width
// of the first interval.  The outline starts and ends on the baseline VY=0.
func BuildOutline(points []ZoomedPoint) []vec.Vec2 {
	switch len(points) {
	case 0:
		return nil
	case 1:
		// No neighbour interval exists; use a segment twice the
		// fallback interval wide, centred on the point.
		p := points[0]
		return []vec.Vec2{
			{X: p.VX - singlePointHalfWidth, Y: 0},
			{X: p.VX - singlePointHalfWidth, Y: p.VY},
			{X: p.VX + singlePointHalfWidth, Y: p.VY},
			{X: p.VX + singlePointHalfWidth, Y: 0},
		}
	}

	gap := points[1].VX - points[0].VX
	out := make([]vec.Vec2, 0, 2*len(points)+2)
	out = append(out, vec.Vec2{X: points[0].VX, Y: 0})
	for i, p := range points {
		next := p.VX + gap
		if i+1 < len(points) {
			next = points[i+1].VX
		}
		out = append(out,
			vec.Vec2{X: p.VX, Y: p.VY},
			vec.Vec2{X: next, Y: p.VY})
	}
	out = append(out, vec.Vec2{X: out[len(out)-1].X, Y: 0})
	return out
}

// AreaPath converts an outline to a closed path, mapping every vertex
// through m.  An empty outline gives an empty path.
func AreaPath(outline []vec.Vec2, m matrix.Matrix) *path.Data {
	p := &path.Data{}
	if len(outline) == 0 {
		return p
	}
	p.MoveTo(apply(m, outline[0]))
	for _, v := range outline[1:] {
		p.LineTo(apply(m, v))
	}
	p.Close()
	return p
}

// apply maps v through the affine transformation m.
func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// singlePointHalfWidth is half the width of the step drawn for a curve
// with only one point, in view-space units.
const singlePointHalfWidth = 1.0
