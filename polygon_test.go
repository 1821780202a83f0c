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
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestBuildOutline(t *testing.T) {
	cases := []struct {
		name   string
		points []ZoomedPoint
		want   []vec.Vec2
	}{
		{"empty", nil, nil},
		{
			"single",
			[]ZoomedPoint{{VX: 5, VY: 0.7}},
			[]vec.Vec2{{X: 4, Y: 0}, {X: 4, Y: 0.7}, {X: 6, Y: 0.7}, {X: 6, Y: 0}},
		},
		{
			"steps",
			[]ZoomedPoint{{VX: 0, VY: 1}, {VX: 1, VY: 2}, {VX: 3, VY: 0.5}},
			[]vec.Vec2{
				{X: 0, Y: 0},
				{X: 0, Y: 1}, {X: 1, Y: 1},
				{X: 1, Y: 2}, {X: 3, Y: 2},
				{X: 3, Y: 0.5}, {X: 4, Y: 0.5},
				{X: 4, Y: 0},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildOutline(tc.points)
			if !slices.Equal(got, tc.want) {
				t.Errorf("BuildOutline() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAreaPath(t *testing.T) {
	outline := []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 0}}

	p := AreaPath(outline, matrix.Identity)
	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	if !slices.Equal(p.Cmds, wantCmds) {
		t.Errorf("Cmds = %v, want %v", p.Cmds, wantCmds)
	}
	if !slices.Equal(p.Coords, outline) {
		t.Errorf("Coords = %v, want %v", p.Coords, outline)
	}

	// scale x by 3, flip y onto a surface of height 10
	m := matrix.Matrix{3, 0, 0, -10, 0, 10}
	p = AreaPath(outline, m)
	want := []vec.Vec2{{X: 0, Y: 10}, {X: 0, Y: 0}, {X: 6, Y: 0}, {X: 6, Y: 10}}
	if !slices.Equal(p.Coords, want) {
		t.Errorf("mapped Coords = %v, want %v", p.Coords, want)
	}

	if p := AreaPath(nil, matrix.Identity); len(p.Cmds) != 0 {
		t.Errorf("empty outline gave %d commands", len(p.Cmds))
	}
}

func TestDeviceMatrix(t *testing.T) {
	tr := Transform{Scale: DefaultScale, Zoom: 2, OffsetVX: 5, SurfaceWidth: 100}
	m := DeviceMatrix(tr, 50)

	for _, vx := range []float64{5, 10, 55} {
		got := apply(m, vec.Vec2{X: vx, Y: 0})
		if got.X != tr.ToPixel(vx) || got.Y != 50 {
			t.Errorf("baseline at %g maps to %v, want (%g, 50)", vx, got, tr.ToPixel(vx))
		}
	}
	top := apply(m, vec.Vec2{X: 5, Y: 1})
	if want := 50 * (1 - YFill); top.Y < want-1e-12 || top.Y > want+1e-12 {
		t.Errorf("tallest bar top at y=%g, want %g", top.Y, want)
	}
}
