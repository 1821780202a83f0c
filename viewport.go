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
	"strconv"

	"seehuhn.de/go/geom/rect"
)

// Zoom limits and step size.
const (
	MinZoom = 0.4
	MaxZoom = 6.0

	zoomStep = 0.1
)

// DefaultPadFactor is the amount of room left around a range by
// [Viewport.FitToRange], as a multiple of the range width.
const DefaultPadFactor = 1.2

// Align selects the screen position which stays fixed during a zoom change.
type Align int

// These are the supported zoom alignments.
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "Align(" + strconv.Itoa(int(a)) + ")"
	}
}

// Viewport holds the zoom factor, pan offset and render surface size.
//
// All operations clamp their arguments: the zoom factor always stays in
// [MinZoom, MaxZoom] and the surface size is always positive.
//
// A Viewport is not safe for concurrent use.
type Viewport struct {
	width, height float64
	zoom          float64
	offsetVX      float64
}

// NewViewport returns a viewport for a surface of the given pixel size,
// with zoom factor 1 and no pan offset.
func NewViewport(width, height float64) *Viewport {
	v := &Viewport{zoom: 1}
	v.Resize(width, height)
	return v
}

// Width returns the surface width in pixels.
func (v *Viewport) Width() float64 { return v.width }

// Height returns the surface height in pixels.
func (v *Viewport) Height() float64 { return v.height }

// Zoom returns the current zoom factor.
func (v *Viewport) Zoom() float64 { return v.zoom }

// OffsetVX returns the view-space position of the left surface edge.
func (v *Viewport) OffsetVX() float64 { return v.offsetVX }

// Bounds returns the surface in device coordinates.
func (v *Viewport) Bounds() rect.Rect {
	return rect.Rect{LLx: 0, LLy: 0, URx: v.width, URy: v.height}
}

// Transform returns the coordinate transform for the current state.
func (v *Viewport) Transform(scale PrecisionScale) Transform {
	return Transform{
		Scale:        scale,
		Zoom:         v.zoom,
		OffsetVX:     v.offsetVX,
		SurfaceWidth: v.width,
	}
}

// Resize sets the surface size.  Non-positive sizes are replaced by 1.
// Resizing never changes the zoom factor or the offset.
func (v *Viewport) Resize(width, height float64) {
	v.width = positiveOr(width, 1)
	v.height = positiveOr(height, 1)
}

// ZoomIn multiplies the zoom factor by 1+0.1*degree.  Degrees below or
// equal to zero count as 1.  The method returns the ratio between new and
// old zoom factor.
func (v *Viewport) ZoomIn(degree float64, align Align) float64 {
	return v.SetZoom(v.zoom*(1+zoomStep*normDegree(degree)), align)
}

// ZoomOut multiplies the zoom factor by 1-0.1*degree, see [Viewport.ZoomIn].
func (v *Viewport) ZoomOut(degree float64, align Align) float64 {
	f := 1 - zoomStep*normDegree(degree)
	if f <= 0 {
		return v.SetZoom(MinZoom, align)
	}
	return v.SetZoom(v.zoom*f, align)
}

// SetZoom sets the zoom factor, clamped to [MinZoom, MaxZoom].  The offset
// is adjusted so that the data point shown at the aligned screen position
// stays in place.  The method returns the ratio between new and old zoom
// factor.
func (v *Viewport) SetZoom(zoom float64, align Align) float64 {
	old := v.zoom
	zoom = clampZoom(zoom)
	if zoom == old {
		return 1
	}

	anchor := v.anchor(align)
	u := (anchor/old + v.offsetVX) / old // zoomed data coordinate under the anchor
	v.zoom = zoom
	v.offsetVX = u*zoom - anchor/zoom
	return zoom / old
}

// anchor returns the device x coordinate which is kept fixed for align.
func (v *Viewport) anchor(align Align) float64 {
	switch align {
	case AlignCenter:
		return v.width / 2
	case AlignRight:
		return v.width
	default:
		return 0
	}
}

// PanBy moves the view by deltaPx device pixels.  Positive values move
// the content to the right.
func (v *Viewport) PanBy(deltaPx float64) {
	v.SetOffset(v.offsetVX - deltaPx/v.zoom)
}

// SetOffset sets the view-space position of the left surface edge.
// Non-finite values are ignored.
func (v *Viewport) SetOffset(offsetVX float64) {
	if math.IsNaN(offsetVX) || math.IsInf(offsetVX, 0) {
		return
	}
	v.offsetVX = offsetVX
}

// FitToRange chooses zoom and offset so that the view-space interval
// [minVX, maxVX], widened by padFactor, fills the surface width and is
// centred on it.  The range is interpreted at the current zoom factor.
// A padFactor <= 0 selects [DefaultPadFactor].  The method returns the
// ratio between new and old zoom factor.
func (v *Viewport) FitToRange(minVX, maxVX, padFactor float64) float64 {
	if padFactor <= 0 {
		padFactor = DefaultPadFactor
	}
	if maxVX < minVX {
		minVX, maxVX = maxVX, minVX
	}
	old := v.zoom
	spanU := (maxVX - minVX) / old
	centerU := (minVX + maxVX) / (2 * old)

	zoom := old
	if spanU > 0 {
		// The pixel width of the span scales with zoom squared:
		// once for view space and once for the device mapping.
		zoom = clampZoom(math.Sqrt(v.width / (spanU * padFactor)))
	}
	v.zoom = zoom
	v.SetOffset(centerU*zoom - v.width/(2*zoom))
	return zoom / old
}

// Wheel applies mouse-wheel input.  Each notch zooms by one step around
// the surface centre; negative notches zoom in.  The method returns the
// ratio between new and old zoom factor.
func (v *Viewport) Wheel(notches int) float64 {
	ratio := 1.0
	for ; notches < 0; notches++ {
		ratio *= v.ZoomIn(1, AlignCenter)
	}
	for ; notches > 0; notches-- {
		ratio *= v.ZoomOut(1, AlignCenter)
	}
	return ratio
}

func clampZoom(z float64) float64 {
	if math.IsNaN(z) {
		return 1
	}
	return min(max(z, MinZoom), MaxZoom)
}

func normDegree(degree float64) float64 {
	if !(degree > 0) {
		return 1
	}
	return degree
}

// positiveOr returns x if it is a positive finite number, and def otherwise.
func positiveOr(x, def float64) float64 {
	if x > 0 && !math.IsInf(x, 1) {
		return x
	}
	return def
}
