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

package rangechart_test

import (
	"fmt"
	"image"
	"testing"

	"seehuhn.de/go/rangechart"
	"seehuhn.de/go/rangechart/testcases"
)

// BenchmarkDecimate measures the point reduction for the dense curves at
// several zoom levels.
func BenchmarkDecimate(b *testing.B) {
	for _, tc := range testcases.All["dense"] {
		scale := rangechart.NewPrecisionScale(tc.Curve)
		for _, zoom := range []float64{rangechart.MinZoom, 0.7, 1} {
			b.Run(fmt.Sprintf("%s/zoom=%g", tc.Name, zoom), func(b *testing.B) {
				t := rangechart.Transform{
					Scale:        scale,
					Zoom:         zoom,
					OffsetVX:     0,
					SurfaceWidth: float64(tc.Width),
				}
				b.ReportAllocs()
				for b.Loop() {
					rangechart.Decimate(tc.Curve, t, rangechart.DefaultSidePadding)
				}
			})
		}
	}
}

// BenchmarkDragFrame simulates a handle drag on a dense curve, building a
// frame after every pointer move.
func BenchmarkDragFrame(b *testing.B) {
	tc := testcases.All["dense"][0]
	c, err := tc.NewChart(rangechart.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	x0 := c.Frame().Handles[rangechart.MinHandle].PX
	y := float64(tc.Height) / 2

	b.ReportAllocs()
	i := 0
	for b.Loop() {
		if i%100 == 0 {
			c.Handle(rangechart.PointerDown{X: x0, Y: y})
		}
		c.Handle(rangechart.PointerMove{X: x0 + float64(i%100), Y: y})
		c.Frame()
		if i%100 == 99 {
			c.Handle(rangechart.PointerCancel{})
		}
		i++
	}
}

// BenchmarkPanRender measures a full redraw while panning.
func BenchmarkPanRender(b *testing.B) {
	for _, tc := range testcases.All["dense"] {
		b.Run(tc.Name, func(b *testing.B) {
			c, err := tc.NewChart(rangechart.DefaultOptions())
			if err != nil {
				b.Fatal(err)
			}
			dst := image.NewAlpha(image.Rect(0, 0, tc.Width, tc.Height))

			b.ReportAllocs()
			i := 0
			for b.Loop() {
				c.PanBy(float64(i%7 - 3))
				clear(dst.Pix)
				c.Render(dst)
				i++
			}
		})
	}
}
