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
	"math"
	"math/rand/v2"
	"testing"
)

var threePoints = []CurvePoint{{X: 1, Y: 10}, {X: 2, Y: 20}, {X: 3, Y: 5}}

type recorder struct {
	min, max []BoundaryValue
}

func (r *recorder) attach(b *Boundaries) {
	b.OnChangeMinBoundary = func(v BoundaryValue) { r.min = append(r.min, v) }
	b.OnChangeMaxBoundary = func(v BoundaryValue) { r.max = append(r.max, v) }
}

func unitTransform(zoom float64) Transform {
	return Transform{Scale: NewPrecisionScale(threePoints), Zoom: zoom, SurfaceWidth: 400}
}

func TestDragSnapsOnRelease(t *testing.T) {
	for _, zoom := range []float64{1, 2, MinZoom} {
		tr := unitTransform(zoom)
		b := &Boundaries{Decimals: 4}
		var rec recorder
		rec.attach(b)
		b.SetRange(tr.ToView(1), tr.ToView(3), zoom)

		// drag the min handle from price 1 to price 2.4
		b.Begin(MinHandle, zoom)
		target := tr.ToView(2.4)
		steps := 7
		for i := 1; i <= steps; i++ {
			total := (target - tr.ToView(1)) * zoom * float64(i) / float64(steps)
			b.Move(MinHandle, total, zoom)
		}
		if len(rec.min) != 0 {
			t.Fatalf("zoom %g: %d commits before release", zoom, len(rec.min))
		}
		if b.State(MinHandle) != Dragging {
			t.Errorf("zoom %g: state = %v during drag", zoom, b.State(MinHandle))
		}
		if got := b.MinVX(zoom); !near(got, target, 1e-9) {
			t.Errorf("zoom %g: handle at %g during drag, want %g", zoom, got, target)
		}

		v, ok := b.End(MinHandle, threePoints, tr)
		if !ok {
			t.Fatalf("zoom %g: End reported no gesture", zoom)
		}
		want := BoundaryValue{X: 2, Y: 20}
		if v != want || len(rec.min) != 1 || rec.min[0] != want {
			t.Errorf("zoom %g: committed %v (callbacks %v), want %v", zoom, v, rec.min, want)
		}
		if got := b.MinVX(zoom); !near(got, tr.ToView(2), 1e-12) {
			t.Errorf("zoom %g: handle at %g after snap, want %g", zoom, got, tr.ToView(2))
		}
		if b.State(MinHandle) != Idle {
			t.Errorf("zoom %g: state = %v after release", zoom, b.State(MinHandle))
		}

		if _, ok := b.End(MinHandle, threePoints, tr); ok || len(rec.min) != 1 {
			t.Errorf("zoom %g: second End committed again", zoom)
		}
		if len(rec.max) != 0 {
			t.Errorf("zoom %g: max handle reported %v", zoom, rec.max)
		}
	}
}

func TestEndAfterZoomChange(t *testing.T) {
	b := &Boundaries{}
	b.SetRange(1, 3, 1)
	b.Begin(MinHandle, 1)
	b.Move(MinHandle, 0.9, 1)

	// the zoom changes between the last move and the release
	b.Reclamp(2)
	v, ok := b.End(MinHandle, threePoints, unitTransform(2))
	if !ok {
		t.Fatal("End reported no gesture")
	}
	if v != (BoundaryValue{X: 2, Y: 20}) {
		t.Errorf("committed %v, want {2 20}", v)
	}
	if got := b.MinVX(2); !near(got, 4, 1e-12) {
		t.Errorf("handle at %g, want 4", got)
	}
}

func TestMoveWithoutBegin(t *testing.T) {
	b := &Boundaries{}
	b.SetRange(1, 3, 1)
	b.Move(MinHandle, 50, 1)
	if b.MinVX(1) != 1 {
		t.Errorf("Move without gesture changed handle to %g", b.MinVX(1))
	}
}

func TestCancel(t *testing.T) {
	tr := unitTransform(1)
	b := &Boundaries{}
	var rec recorder
	rec.attach(b)
	b.SetRange(1, 3, 1)

	b.Begin(MaxHandle, 1)
	b.Move(MaxHandle, -0.6, 1)
	b.Cancel(MaxHandle)
	if b.State(MaxHandle) != Idle {
		t.Error("handle still dragging after Cancel")
	}
	if _, ok := b.End(MaxHandle, threePoints, tr); ok {
		t.Error("End after Cancel committed")
	}
	if len(rec.max) != 0 {
		t.Errorf("cancelled gesture reported %v", rec.max)
	}
}

func TestBeginRestarts(t *testing.T) {
	b := &Boundaries{}
	b.SetRange(1, 3, 1)
	b.Begin(MinHandle, 1)
	b.Move(MinHandle, 0.5, 1)

	// the end of the first gesture was lost
	b.Begin(MinHandle, 1)
	b.Move(MinHandle, 0.25, 1)
	if got := b.MinVX(1); got != 1.75 {
		t.Errorf("handle at %g, want 1.75", got)
	}
}

func TestSnapTieBreak(t *testing.T) {
	tr := unitTransform(1)
	b := &Boundaries{}
	b.SetRange(1, 3, 1)

	// 2.5 is halfway between 2 and 3; the later point wins
	v := b.MoveVX(MinHandle, 2.5, threePoints, tr)
	if v != (BoundaryValue{X: 3, Y: 5}) {
		t.Errorf("MoveVX(2.5) = %v, want {3 5}", v)
	}
}

func TestSnapDuplicates(t *testing.T) {
	curve := []CurvePoint{{X: 1, Y: 1}, {X: 2, Y: 4}, {X: 2, Y: 7}, {X: 3, Y: 2}}
	tr := Transform{Scale: DefaultScale, Zoom: 1, SurfaceWidth: 100}
	b := &Boundaries{}
	b.SetRange(0, 10, 1)

	v := b.MoveVX(MinHandle, 2.1, curve, tr)
	if v != (BoundaryValue{X: 2, Y: 7}) {
		t.Errorf("MoveVX(2.1) = %v, want {2 7}", v)
	}
}

func TestSnapInsideRange(t *testing.T) {
	tr := unitTransform(1)
	b := &Boundaries{}
	b.SetRange(1, 2, 1)

	// price 3 lies beyond the max handle, so the min handle stops at 2
	v := b.Input(MinHandle, 2.9, threePoints, tr)
	if v != (BoundaryValue{X: 2, Y: 20}) {
		t.Errorf("Input(2.9) = %v, want {2 20}", v)
	}
	if b.MinVX(1) > b.MaxVX(1) {
		t.Errorf("handles crossed: min %g, max %g", b.MinVX(1), b.MaxVX(1))
	}
}

func TestMinGap(t *testing.T) {
	tr := unitTransform(1)
	b := &Boundaries{MinGap: 0.5}
	b.SetRange(1, 3, 1)

	b.Begin(MaxHandle, 1)
	b.Move(MaxHandle, -10, 1)
	if got := b.MaxVX(1); got != 1.5 {
		t.Errorf("max handle dragged to %g, want 1.5", got)
	}
	v, _ := b.End(MaxHandle, threePoints, tr)
	if v != (BoundaryValue{X: 2, Y: 20}) {
		t.Errorf("committed %v, want {2 20}", v)
	}
}

func TestSetRangeTieBreak(t *testing.T) {
	cases := []struct {
		min, max         float64
		wantMin, wantMax float64
	}{
		{1, 3, 1, 3},
		{2.5, 3, 2, 3},
		{5, 0.5, 0, 1},
		{-4, 2, 0, 2},
		{math.NaN(), math.Inf(1), 0, 1},
	}
	for _, tc := range cases {
		b := &Boundaries{MinGap: 1}
		b.SetRange(tc.min, tc.max, 2)
		if b.MinVX(2) != tc.wantMin || b.MaxVX(2) != tc.wantMax {
			t.Errorf("SetRange(%g, %g) = [%g, %g], want [%g, %g]",
				tc.min, tc.max, b.MinVX(2), b.MaxVX(2), tc.wantMin, tc.wantMax)
		}
	}
}

func TestInputEmptyCurve(t *testing.T) {
	tr := Transform{Scale: DefaultScale, Zoom: 1, SurfaceWidth: 100}
	b := &Boundaries{Decimals: 2}
	b.SetRange(0, 10, 1)
	v := b.Input(MaxHandle, 4.5678, nil, tr)
	if v != (BoundaryValue{X: 4.56}) {
		t.Errorf("Input() = %v, want {4.56 0}", v)
	}
}

func TestTrimDecimals(t *testing.T) {
	cases := []struct {
		x      float64
		digits int
		want   float64
	}{
		{1.23456, 2, 1.23},
		{-1.239, 2, -1.23},
		{0.00019999, 4, 0.0001},
		{7.5, 0, 7},
		{1.23456, -1, 1.23456},
	}
	for _, tc := range cases {
		if got := trimDecimals(tc.x, tc.digits); got != tc.want {
			t.Errorf("trimDecimals(%g, %d) = %g, want %g", tc.x, tc.digits, got, tc.want)
		}
	}
}

// TestBoundaryInvariant applies random operations and checks that the
// handles never cross and never leave the positive axis.
func TestBoundaryInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	var curve []CurvePoint
	for i := range 50 {
		curve = append(curve, CurvePoint{X: float64(i) * 0.5, Y: rng.Float64()})
	}
	scale := NewPrecisionScale(curve)

	const gap = 0.75
	b := &Boundaries{MinGap: gap, Decimals: 2}
	zoom := 1.0
	b.SetRange(scale.DataZoomX*2*zoom, scale.DataZoomX*20*zoom, zoom)

	for i := range 5000 {
		h := Handle(rng.IntN(2))
		tr := Transform{Scale: scale, Zoom: zoom, SurfaceWidth: 300}
		switch rng.IntN(7) {
		case 0:
			b.Begin(h, zoom)
		case 1:
			b.Move(h, rng.Float64()*400-200, zoom)
		case 2:
			b.End(h, curve, tr)
		case 3:
			b.Cancel(h)
		case 4:
			b.Input(h, rng.Float64()*30-5, curve, tr)
		case 5:
			b.MoveVX(h, rng.Float64()*60-10, curve, tr)
		case 6:
			zoom = MinZoom + rng.Float64()*(MaxZoom-MinZoom)
			b.Reclamp(zoom)
		}

		lo, hi := b.MinVX(zoom), b.MaxVX(zoom)
		if lo < -1e-12 {
			t.Fatalf("step %d: min handle at %g", i, lo)
		}
		if hi-lo < gap-1e-9 {
			t.Fatalf("step %d: handles at %g and %g, closer than %g", i, lo, hi, gap)
		}
	}
}
