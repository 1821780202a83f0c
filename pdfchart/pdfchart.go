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

// Package pdfchart writes chart frames as single-page PDF files.
//
// The output uses the same coverage convention as the raster renderer:
// the page is black and everything the renderer would cover is painted
// white, so that a grayscale rendering of the PDF can be compared pixel
// by pixel with the output of [rangechart.Chart.Render].
package pdfchart

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/rangechart"
)

// Write renders f into a new PDF file.
// One PDF point corresponds to one device pixel.
func Write(f *rangechart.Frame, fileName string) error {
	paper := &pdf.Rectangle{
		URx: f.Width,
		URy: f.Height,
	}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, f.Width, f.Height)
	page.Fill()

	// Frame coordinates have the origin in the top-left corner.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, f.Height})

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))

	if f.Area != nil && len(f.Area.Cmds) > 0 {
		for cmd, pts := range f.Area.Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Fill()
	}

	page.SetLineWidth(rangechart.HandleLineWidth)
	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinMiter)
	for _, hm := range f.Handles {
		page.MoveTo(hm.PX, 0)
		page.LineTo(hm.PX, f.Height)
	}
	page.Stroke()

	ticks := 0
	for _, u := range f.Axis {
		px := f.Transform.ToPixel(u.VX)
		if px < 0 || px >= f.Width {
			continue
		}
		page.Rectangle(px, f.Height-rangechart.TickLength, 1, rangechart.TickLength)
		ticks++
	}
	if ticks > 0 {
		page.Fill()
	}

	return page.Close()
}
