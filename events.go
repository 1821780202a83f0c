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

// Event is an input event from the render surface.
// Coordinates are in device pixels.
type Event interface {
	isEvent()
}

// PointerDown starts a gesture.
type PointerDown struct {
	X, Y float64
}

// PointerMove continues a gesture.
type PointerMove struct {
	X, Y float64
}

// PointerUp ends a gesture and commits its result.
type PointerUp struct {
	X, Y float64
}

// PointerCancel aborts a gesture without committing it, for example
// when the surface loses focus.
type PointerCancel struct{}

// Wheel reports mouse-wheel notches.  Negative values zoom in.
type Wheel struct {
	Notches int
}

// Resize reports a new render surface size.
type Resize struct {
	Width, Height float64
}

func (PointerDown) isEvent()   {}
func (PointerMove) isEvent()   {}
func (PointerUp) isEvent()     {}
func (PointerCancel) isEvent() {}
func (Wheel) isEvent()         {}
func (Resize) isEvent()        {}

// Surface is a source of input events, for example a window or a canvas
// element.
type Surface interface {
	// Subscribe registers fn to receive events and returns a function
	// which removes the registration again.
	Subscribe(fn func(Event)) (unsubscribe func())
}

// gestureKind says what an active pointer gesture is acting on.
type gestureKind int

const (
	gestureNone gestureKind = iota
	gestureHandle
	gesturePan
)

// gesture is the chart-level state of the active pointer gesture.
type gesture struct {
	kind        gestureKind
	handle      Handle
	startPX     float64
	startOffset float64
}
