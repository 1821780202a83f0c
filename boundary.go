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
	"slices"

	"github.com/shopspring/decimal"
)

// Handle identifies one of the two boundary handles.
type Handle int

// These are the two boundary handles.
const (
	MinHandle Handle = iota
	MaxHandle
)

func (h Handle) String() string {
	if h == MinHandle {
		return "min"
	}
	return "max"
}

// DragState is the gesture state of a single handle.
type DragState int

// These are the states of the per-handle gesture state machine.
const (
	Idle DragState = iota
	Dragging
)

// BoundaryValue is a committed boundary in data space.
type BoundaryValue struct {
	X float64 // price
	Y float64 // liquidity of the curve point at X
}

// dragSession holds the state of one active gesture.  Moves are
// expressed relative to the gesture start, never relative to the
// previous move, so that rounding errors do not accumulate.
type dragSession struct {
	startU      float64 // handle position at gesture start (zoomed data units)
	totalDeltaX float64 // pointer offset since gesture start (pixels)
	candidateU  float64 // clamped position after the last move (zoomed data units)
}

// Boundaries holds the two boundary handles and their drag state.
//
// Handle positions are stored in zoomed data units (view units divided by
// the zoom factor), so that zoom changes do not rewrite the stored state;
// view-space positions are derived on read.  The handles satisfy
// MinVX >= 0 and MaxVX >= MinVX + MinGap.
//
// Intermediate drag moves only change the visual handle position.
// Values are reported through OnChangeMinBoundary and OnChangeMaxBoundary
// only on commit: at the end of a gesture, or for programmatic input.
type Boundaries struct {
	// MinGap is the smallest allowed distance between the handles,
	// in view-space units.
	MinGap float64

	// Decimals is the number of decimal digits kept in committed values.
	Decimals int

	OnChangeMinBoundary func(BoundaryValue)
	OnChangeMaxBoundary func(BoundaryValue)

	minU, maxU float64
	session    [2]*dragSession
}

// MinVX returns the position of the min handle in view space.
func (b *Boundaries) MinVX(zoom float64) float64 { return b.minU * zoom }

// MaxVX returns the position of the max handle in view space.
func (b *Boundaries) MaxVX(zoom float64) float64 { return b.maxU * zoom }

// VX returns the position of handle h in view space.
func (b *Boundaries) VX(h Handle, zoom float64) float64 {
	if h == MinHandle {
		return b.MinVX(zoom)
	}
	return b.MaxVX(zoom)
}

// State returns the gesture state of handle h.
func (b *Boundaries) State(h Handle) DragState {
	if b.session[h] != nil {
		return Dragging
	}
	return Idle
}

// SetRange places both handles at once, without committing.  If the
// positions violate the minimum gap, the max handle keeps its position and
// the min handle is pushed down.
func (b *Boundaries) SetRange(minVX, maxVX, zoom float64) {
	gap := max(b.MinGap, 0)
	maxVX = max(finiteOr(maxVX, 0), gap)
	minVX = min(max(finiteOr(minVX, 0), 0), maxVX-gap)
	b.minU = minVX / zoom
	b.maxU = maxVX / zoom
}

// Reclamp re-establishes the gap invariant after a zoom change.
func (b *Boundaries) Reclamp(zoom float64) {
	b.SetRange(b.MinVX(zoom), b.MaxVX(zoom), zoom)
}

// clampRange returns the allowed view-space interval for handle h.
func (b *Boundaries) clampRange(h Handle, zoom float64) (lo, hi float64) {
	gap := max(b.MinGap, 0)
	if h == MinHandle {
		return 0, max(b.MaxVX(zoom)-gap, 0)
	}
	return b.MinVX(zoom) + gap, math.Inf(1)
}

func (b *Boundaries) clamp(h Handle, vx, zoom float64) float64 {
	lo, hi := b.clampRange(h, zoom)
	return min(max(vx, lo), hi)
}

func (b *Boundaries) place(h Handle, vx, zoom float64) {
	if h == MinHandle {
		b.minU = vx / zoom
	} else {
		b.maxU = vx / zoom
	}
}

// Begin starts a drag gesture on handle h.  A gesture which is still
// active, because its end was never delivered, is discarded.
func (b *Boundaries) Begin(h Handle, zoom float64) {
	u := b.minU
	if h == MaxHandle {
		u = b.maxU
	}
	b.session[h] = &dragSession{startU: u, candidateU: u}
}

// Move updates an active gesture on handle h.  The argument is the total
// pointer offset in pixels since the gesture started.  The handle follows
// the pointer, clamped against the other handle, but nothing is reported.
// Moves without an active gesture are ignored.
func (b *Boundaries) Move(h Handle, totalDeltaX, zoom float64) {
	s := b.session[h]
	if s == nil || math.IsNaN(totalDeltaX) {
		return
	}
	s.totalDeltaX = totalDeltaX
	vx := b.clamp(h, s.startU*zoom+totalDeltaX/zoom, zoom)
	s.candidateU = vx / zoom
	b.place(h, vx, zoom)
}

// End finishes the gesture on handle h and commits the final position.
// The return value is false if no gesture was active.
func (b *Boundaries) End(h Handle, curve []CurvePoint, t Transform) (BoundaryValue, bool) {
	s := b.session[h]
	if s == nil {
		return BoundaryValue{}, false
	}
	b.session[h] = nil
	// The candidate was clamped at its last move; the zoom or the other
	// handle may have changed since.
	return b.commit(h, b.clamp(h, s.candidateU*t.Zoom, t.Zoom), curve, t), true
}

// Cancel drops the gesture on handle h without committing.  The handle
// stays where the last move put it.
func (b *Boundaries) Cancel(h Handle) {
	b.session[h] = nil
}

// Input sets handle h to the data-space price x and commits immediately,
// bypassing the gesture state.
func (b *Boundaries) Input(h Handle, x float64, curve []CurvePoint, t Transform) BoundaryValue {
	return b.commit(h, b.clamp(h, finiteOr(t.ToView(x), 0), t.Zoom), curve, t)
}

// MoveVX sets handle h to a view-space position and commits immediately.
func (b *Boundaries) MoveVX(h Handle, vx float64, curve []CurvePoint, t Transform) BoundaryValue {
	return b.commit(h, b.clamp(h, finiteOr(vx, 0), t.Zoom), curve, t)
}

// commit snaps vx to the nearest curve point inside the allowed range,
// moves the handle there and reports the value.
func (b *Boundaries) commit(h Handle, vx float64, curve []CurvePoint, t Transform) BoundaryValue {
	lo, hi := b.clampRange(h, t.Zoom)
	val := BoundaryValue{X: t.ToData(vx)}
	if p, ok := nearestPoint(curve, t, vx, lo, hi); ok {
		val = BoundaryValue{X: p.X, Y: p.Y}
		vx = min(max(t.ToView(p.X), lo), hi)
	}
	b.place(h, vx, t.Zoom)
	val.X = trimDecimals(val.X, b.Decimals)

	cb := b.OnChangeMinBoundary
	if h == MaxHandle {
		cb = b.OnChangeMaxBoundary
	}
	if cb != nil {
		cb(val)
	}
	return val
}

// nearestPoint finds the curve point closest to vx, among the points whose
// view position lies in [lo, hi].  Ties are broken towards the later point.
func nearestPoint(curve []CurvePoint, t Transform, vx, lo, hi float64) (CurvePoint, bool) {
	tol := snapTolerance * max(1, math.Abs(lo), math.Abs(vx))
	first, _ := slices.BinarySearchFunc(curve, lo-tol, func(p CurvePoint, v float64) int {
		return cmpFloat(t.ToView(p.X), v)
	})
	end := len(curve)
	if !math.IsInf(hi, 1) {
		end, _ = slices.BinarySearchFunc(curve, hi+tol, func(p CurvePoint, v float64) int {
			// first index strictly beyond hi
			if t.ToView(p.X) <= v {
				return -1
			}
			return 1
		})
	}
	if first >= end {
		return CurvePoint{}, false
	}
	inRange := curve[first:end]

	i, _ := slices.BinarySearchFunc(inRange, vx, func(p CurvePoint, v float64) int {
		return cmpFloat(t.ToView(p.X), v)
	})
	if i == len(inRange) {
		return inRange[i-1], true
	}
	if i > 0 {
		before := vx - t.ToView(inRange[i-1].X)
		after := t.ToView(inRange[i].X) - vx
		if before < after {
			return inRange[i-1], true
		}
	}
	for i+1 < len(inRange) && inRange[i+1].X == inRange[i].X {
		i++
	}
	return inRange[i], true
}

// trimDecimals truncates x to the given number of decimal digits.
// Negative digit counts leave x unchanged.
func trimDecimals(x float64, digits int) float64 {
	if digits < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return decimal.NewFromFloat(x).Truncate(int32(digits)).InexactFloat64()
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func finiteOr(x, def float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return def
	}
	return x
}

// snapTolerance is the relative tolerance used when deciding whether a
// curve point lies inside the allowed handle range.
const snapTolerance = 1e-9
