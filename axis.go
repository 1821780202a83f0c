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

	"github.com/shopspring/decimal"
)

// DefaultAxisBaseUnit is the default tick spacing, in view-space units.
const DefaultAxisBaseUnit = 100

// AxisUnit is one tick of the price axis.
type AxisUnit struct {
	VX    float64 // position in view space
	Value float64 // price at the tick, rounded to the tick resolution
	Label string
}

// AxisUnits returns evenly spaced ticks for the price interval
// [fromX, toX].  The argument dataZoom is the combined scale from data
// space to view space (DataZoomX times the zoom factor), and baseUnit is
// the tick spacing in view space.
//
// Ticks are placed on multiples of baseUnit/dataZoom, starting at the
// largest multiple not above fromX.  No ticks are returned if the
// interval is narrower than one tick spacing or any argument is not a
// positive, finite number.
func AxisUnits(dataZoom, fromX, toX, baseUnit float64) []AxisUnit {
	if !(dataZoom > 0) || !(baseUnit > 0) || math.IsInf(dataZoom, 0) || math.IsInf(baseUnit, 0) {
		return nil
	}
	if math.IsNaN(fromX) || math.IsNaN(toX) || math.IsInf(fromX, 0) || math.IsInf(toX, 0) {
		return nil
	}

	unitDiff := baseUnit / dataZoom
	n := int(math.Floor((toX - fromX) / unitDiff))
	if n <= 0 {
		return nil
	}

	first := math.Floor(fromX/unitDiff) * unitDiff
	digits := labelDigits(unitDiff)
	out := make([]AxisUnit, n)
	for i := range out {
		// Computed from the index, not by repeated addition.
		x := first + float64(i)*unitDiff
		d := decimal.NewFromFloat(x).Round(digits)
		out[i] = AxisUnit{
			VX:    x * dataZoom,
			Value: d.InexactFloat64(),
			Label: d.String(),
		}
	}
	return out
}

// labelDigits returns the number of decimal digits needed to print
// multiples of unitDiff.  At most two digits beyond the leading digit of
// unitDiff are used.
func labelDigits(unitDiff float64) int32 {
	exact := -decimal.NewFromFloat(unitDiff).Exponent()
	limit := int32(math.Ceil(-math.Log10(unitDiff))) + 2
	return max(0, min(exact, limit))
}
