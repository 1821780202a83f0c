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
	"image"
	"image/color"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
)

// Render draws the current frame into dst: the liquidity area, both handles
// and the axis ticks.  Coverage values are composited over the existing
// content of dst.  The rasteriser is reused between calls.
func (c *Chart) Render(dst *image.Alpha) {
	b := dst.Bounds()
	if c.raster == nil {
		c.raster = vector.NewRasterizer(b.Dx(), b.Dy())
	} else {
		c.raster.Reset(b.Dx(), b.Dy())
	}
	DrawFrame(c.raster, c.Frame())
	c.raster.Draw(dst, b, image.NewUniform(color.Alpha{A: 255}), image.Point{})
}

// DrawFrame adds the shapes of f to r, in device coordinates.
func DrawFrame(r *vector.Rasterizer, f *Frame) {
	addPath(r, f.Area)

	for _, hm := range f.Handles {
		addRect(r, hm.PX-HandleLineWidth/2, 0, hm.PX+HandleLineWidth/2, f.Height)
	}

	for _, u := range f.Axis {
		px := f.Transform.ToPixel(u.VX)
		if px < 0 || px >= f.Width {
			continue
		}
		addRect(r, px, f.Height-TickLength, px+1, f.Height)
	}
}

func addPath(r *vector.Rasterizer, p *path.Data) {
	if p == nil {
		return
	}
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdLineTo:
			r.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdClose:
			r.ClosePath()
		}
	}
}

func addRect(r *vector.Rasterizer, x0, y0, x1, y1 float64) {
	r.MoveTo(float32(x0), float32(y0))
	r.LineTo(float32(x1), float32(y0))
	r.LineTo(float32(x1), float32(y1))
	r.LineTo(float32(x0), float32(y1))
	r.ClosePath()
}

// Sizes of the decorations drawn by [DrawFrame], in pixels.
const (
	HandleLineWidth = 2.0
	TickLength      = 4.0
)
