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
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"golang.org/x/image/vector"
)

// Errors returned by [Chart.SetCurve].
var (
	ErrUnsortedCurve = errors.New("curve not sorted by price")
	ErrInvalidPoint  = errors.New("curve point not finite")
)

// Options configures a [Chart].  Use [DefaultOptions] to obtain the
// defaults and change individual fields.
type Options struct {
	// MinGap is the smallest allowed distance between the two handles,
	// in view-space units.
	MinGap float64

	// SidePadding is the number of screens of curve points rendered on
	// either side of the visible window.
	SidePadding float64

	// PadFactor is the room left around the handles by ShrinkToView.
	PadFactor float64

	// AxisBaseUnit is the spacing of axis ticks in view-space units.
	AxisBaseUnit float64

	// CareDecimalLength is the number of decimal digits kept in committed
	// boundary values.  Negative values select AccurateDecimalLength.
	CareDecimalLength int

	// HandleHitWidth is the width of the area around a handle, in pixels,
	// in which a pointer-down grabs the handle.
	HandleHitWidth float64

	// InitMinBoundaryX and InitMaxBoundaryX are optional initial handle
	// prices.  If nil, the handles start at the first and last curve point.
	InitMinBoundaryX *float64
	InitMaxBoundaryX *float64

	// OnChangeMinBoundary and OnChangeMaxBoundary are called whenever a
	// boundary is committed.
	OnChangeMinBoundary func(BoundaryValue)
	OnChangeMaxBoundary func(BoundaryValue)

	// Logger receives debug records for commits and view fits.
	// If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns the default chart configuration.
func DefaultOptions() Options {
	return Options{
		SidePadding:       DefaultSidePadding,
		PadFactor:         DefaultPadFactor,
		AxisBaseUnit:      DefaultAxisBaseUnit,
		CareDecimalLength: -1,
		HandleHitWidth:    defaultHandleHitWidth,
	}
}

// Chart is the interactive price-range viewport.  It owns the curve, the
// viewport state and the two boundary handles, and reacts to input events.
//
// A Chart is not safe for concurrent use.  All methods are expected to be
// called from the single thread which delivers input events.
type Chart struct {
	opts    Options
	log     *slog.Logger
	curve   []CurvePoint
	version uint64
	scale   PrecisionScale
	view    *Viewport
	bounds  Boundaries
	gesture gesture
	mounted bool

	cache  frameCache
	raster *vector.Rasterizer
}

// NewChart returns a chart for the given curve.  If the surface size is
// positive, the view is fitted to the handles immediately; otherwise this
// happens on the first [Resize] event.
func NewChart(width, height float64, curve []CurvePoint, opts Options) (*Chart, error) {
	c := &Chart{
		opts: opts,
		log:  opts.Logger,
		view: NewViewport(width, height),
	}
	if c.log == nil {
		c.log = slog.New(slog.DiscardHandler)
	}
	if c.opts.PadFactor <= 0 {
		c.opts.PadFactor = DefaultPadFactor
	}
	if c.opts.AxisBaseUnit <= 0 {
		c.opts.AxisBaseUnit = DefaultAxisBaseUnit
	}
	if c.opts.HandleHitWidth <= 0 {
		c.opts.HandleHitWidth = defaultHandleHitWidth
	}
	c.opts.SidePadding = max(c.opts.SidePadding, 0)
	c.bounds.MinGap = max(opts.MinGap, 0)
	c.bounds.OnChangeMinBoundary = c.notify(MinHandle, opts.OnChangeMinBoundary)
	c.bounds.OnChangeMaxBoundary = c.notify(MaxHandle, opts.OnChangeMaxBoundary)

	if err := c.SetCurve(curve); err != nil {
		return nil, err
	}

	minX, maxX := 0.0, 0.0
	if len(c.curve) > 0 {
		minX, maxX = c.curve[0].X, c.curve[len(c.curve)-1].X
	}
	if opts.InitMinBoundaryX != nil {
		minX = *opts.InitMinBoundaryX
	}
	if opts.InitMaxBoundaryX != nil {
		maxX = *opts.InitMaxBoundaryX
	}
	t := c.Transform()
	c.bounds.SetRange(t.ToView(minX), t.ToView(maxX), t.Zoom)

	if width > 0 && height > 0 {
		c.mount()
	}
	return c, nil
}

func (c *Chart) notify(h Handle, fn func(BoundaryValue)) func(BoundaryValue) {
	return func(v BoundaryValue) {
		c.log.Debug("boundary committed", "handle", h, "x", v.X, "y", v.Y)
		if fn != nil {
			fn(v)
		}
	}
}

// SetCurve replaces the curve.  The points must be finite and sorted by
// price; otherwise an error is returned and the previous curve is kept.
// The handles keep their prices.
func (c *Chart) SetCurve(curve []CurvePoint) error {
	for i, p := range curve {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("point %d: %w", i, ErrInvalidPoint)
		}
		if i > 0 && p.X < curve[i-1].X {
			return fmt.Errorf("point %d: %w", i, ErrUnsortedCurve)
		}
	}

	// Handles are stored in zoomed data units, which depend on the scale.
	old := c.scale
	c.curve = slices.Clone(curve)
	c.version++
	c.scale = NewPrecisionScale(c.curve)
	c.bounds.Decimals = c.decimals()

	if old.DataZoomX > 0 && old.DataZoomX != c.scale.DataZoomX {
		// Gesture start positions are in the old units.
		c.cancelGesture()
		ratio := c.scale.DataZoomX / old.DataZoomX
		zoom := c.view.Zoom()
		c.bounds.SetRange(c.bounds.MinVX(zoom)*ratio, c.bounds.MaxVX(zoom)*ratio, zoom)
	}
	return nil
}

// Curve returns the current curve.  The caller must not modify it.
func (c *Chart) Curve() []CurvePoint {
	return c.curve
}

// Scale returns the precision scale of the current curve.
func (c *Chart) Scale() PrecisionScale {
	return c.scale
}

// AccurateDecimalLength returns the number of decimal digits resolved by
// the precision scale of the current curve.
func (c *Chart) AccurateDecimalLength() int {
	return c.scale.DecimalLength()
}

func (c *Chart) decimals() int {
	if c.opts.CareDecimalLength >= 0 {
		return c.opts.CareDecimalLength
	}
	return c.AccurateDecimalLength()
}

// Transform returns the coordinate transform for the current view.
func (c *Chart) Transform() Transform {
	return c.view.Transform(c.scale)
}

// Zoom returns the current zoom factor.
func (c *Chart) Zoom() float64 { return c.view.Zoom() }

// OffsetVX returns the current pan offset in view-space units.
func (c *Chart) OffsetVX() float64 { return c.view.OffsetVX() }

// Size returns the surface size in pixels.
func (c *Chart) Size() (width, height float64) {
	return c.view.Width(), c.view.Height()
}

// MinBoundaryVX returns the view-space position of the min handle.
func (c *Chart) MinBoundaryVX() float64 { return c.bounds.MinVX(c.view.Zoom()) }

// MaxBoundaryVX returns the view-space position of the max handle.
func (c *Chart) MaxBoundaryVX() float64 { return c.bounds.MaxVX(c.view.Zoom()) }

// HandleState returns the gesture state of handle h.
func (c *Chart) HandleState(h Handle) DragState {
	return c.bounds.State(h)
}

// ZoomIn zooms in by the given degree, see [Viewport.ZoomIn].
func (c *Chart) ZoomIn(degree float64, align Align) {
	c.view.ZoomIn(degree, align)
	c.bounds.Reclamp(c.view.Zoom())
}

// ZoomOut zooms out by the given degree, see [Viewport.ZoomOut].
func (c *Chart) ZoomOut(degree float64, align Align) {
	c.view.ZoomOut(degree, align)
	c.bounds.Reclamp(c.view.Zoom())
}

// PanBy moves the view by deltaPx pixels.
func (c *Chart) PanBy(deltaPx float64) {
	c.view.PanBy(deltaPx)
}

// ShrinkToView fits the view to the range between the two handles.
func (c *Chart) ShrinkToView() {
	zoom := c.view.Zoom()
	c.view.FitToRange(c.bounds.MinVX(zoom), c.bounds.MaxVX(zoom), c.opts.PadFactor)
	c.bounds.Reclamp(c.view.Zoom())
	c.log.Debug("view fitted", "zoom", c.view.Zoom(), "offset", c.view.OffsetVX())
}

// MoveMinBoundaryVX moves the min handle to a view-space position and
// commits the snapped value.
func (c *Chart) MoveMinBoundaryVX(vx float64) BoundaryValue {
	return c.bounds.MoveVX(MinHandle, vx, c.curve, c.Transform())
}

// MoveMaxBoundaryVX moves the max handle to a view-space position and
// commits the snapped value.
func (c *Chart) MoveMaxBoundaryVX(vx float64) BoundaryValue {
	return c.bounds.MoveVX(MaxHandle, vx, c.curve, c.Transform())
}

// InputMinBoundaryX sets the min handle to the price x, as typed into a
// price input field, and commits the snapped value.
func (c *Chart) InputMinBoundaryX(x float64) BoundaryValue {
	return c.bounds.Input(MinHandle, x, c.curve, c.Transform())
}

// InputMaxBoundaryX sets the max handle to the price x and commits the
// snapped value.
func (c *Chart) InputMaxBoundaryX(x float64) BoundaryValue {
	return c.bounds.Input(MaxHandle, x, c.curve, c.Transform())
}

// mount performs the initial fit once the surface size is known.
func (c *Chart) mount() {
	c.mounted = true
	if c.bounds.maxU > c.bounds.minU {
		c.ShrinkToView()
	}
}

// Handle processes one input event.
func (c *Chart) Handle(ev Event) {
	switch ev := ev.(type) {
	case PointerDown:
		c.pointerDown(ev.X, ev.Y)
	case PointerMove:
		c.pointerMove(ev.X)
	case PointerUp:
		c.pointerMove(ev.X)
		c.pointerUp()
	case PointerCancel:
		c.cancelGesture()
	case Wheel:
		c.view.Wheel(ev.Notches)
		c.bounds.Reclamp(c.view.Zoom())
	case Resize:
		c.view.Resize(ev.Width, ev.Height)
		// Hidden surfaces report a zero size; wait for a real one.
		if !c.mounted && ev.Width > 0 && ev.Height > 0 {
			c.mount()
		}
	}
}

// Attach subscribes the chart to the events of s.  The returned function
// removes the subscription and aborts any gesture in progress.
func (c *Chart) Attach(s Surface) (detach func()) {
	unsubscribe := s.Subscribe(c.Handle)
	return func() {
		if unsubscribe != nil {
			unsubscribe()
			unsubscribe = nil
		}
		c.cancelGesture()
	}
}

func (c *Chart) pointerDown(px, py float64) {
	// A gesture whose end was never delivered is dropped, not committed.
	c.cancelGesture()

	c.gesture = gesture{
		kind:        gesturePan,
		startPX:     px,
		startOffset: c.view.OffsetVX(),
	}
	if h, ok := c.hitHandle(px, py); ok {
		c.gesture.kind = gestureHandle
		c.gesture.handle = h
		c.bounds.Begin(h, c.view.Zoom())
	}
}

func (c *Chart) pointerMove(px float64) {
	total := px - c.gesture.startPX
	switch c.gesture.kind {
	case gestureHandle:
		c.bounds.Move(c.gesture.handle, total, c.view.Zoom())
	case gesturePan:
		c.view.SetOffset(c.gesture.startOffset - total/c.view.Zoom())
	}
}

func (c *Chart) pointerUp() {
	if c.gesture.kind == gestureHandle {
		c.bounds.End(c.gesture.handle, c.curve, c.Transform())
	}
	c.gesture = gesture{}
}

func (c *Chart) cancelGesture() {
	switch c.gesture.kind {
	case gestureHandle:
		c.bounds.Cancel(c.gesture.handle)
	case gesturePan:
		c.view.SetOffset(c.gesture.startOffset)
	}
	c.gesture = gesture{}
}

// hitHandle returns the handle grabbed by a pointer-down at (px, py).
// When both handles are in reach, the nearer one wins; at equal distance
// the max handle is taken for pointers at or right of it.
func (c *Chart) hitHandle(px, py float64) (Handle, bool) {
	minBox := c.handleBox(MinHandle)
	maxBox := c.handleBox(MaxHandle)
	inMin := inBox(minBox, px, py)
	inMax := inBox(maxBox, px, py)
	switch {
	case inMin && inMax:
		t := c.Transform()
		dMin := math.Abs(px - t.ToPixel(c.MinBoundaryVX()))
		maxPX := t.ToPixel(c.MaxBoundaryVX())
		dMax := math.Abs(px - maxPX)
		if dMin < dMax || (dMin == dMax && px < maxPX) {
			return MinHandle, true
		}
		return MaxHandle, true
	case inMin:
		return MinHandle, true
	case inMax:
		return MaxHandle, true
	}
	return 0, false
}

const defaultHandleHitWidth = 12
