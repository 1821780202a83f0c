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

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/rangechart"
	"seehuhn.de/go/rangechart/testcases"
)

var errBadOp = errors.New("invalid operation")

// parseOps parses a comma-separated list of chart operations:
//
//	zoomin[:degree[:align]]   zoomout[:degree[:align]]
//	pan:dx[:steps]            shrink
//	dragmin:dx[:steps]        dragmax:dx[:steps]
//	inputmin:price            inputmax:price
//
// where align is one of left, center, right.
func parseOps(s string) ([]testcases.Operation, error) {
	var ops []testcases.Operation
	for i, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		op, err := parseOp(item)
		if err != nil {
			return nil, fmt.Errorf("operation %d (%q): %w", i+1, item, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func parseOp(item string) (testcases.Operation, error) {
	fields := strings.Split(item, ":")
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "zoomin", "zoomout":
		if len(args) > 2 {
			return nil, errBadOp
		}
		degree, err := floatArg(args, 0, 1)
		if err != nil {
			return nil, err
		}
		align := rangechart.AlignLeft
		if len(args) == 2 {
			if align, err = parseAlign(args[1]); err != nil {
				return nil, err
			}
		}
		if name == "zoomin" {
			return testcases.ZoomIn{Degree: degree, Align: align}, nil
		}
		return testcases.ZoomOut{Degree: degree, Align: align}, nil

	case "pan", "dragmin", "dragmax":
		if len(args) < 1 || len(args) > 2 {
			return nil, errBadOp
		}
		dx, err := floatArg(args, 0, 0)
		if err != nil {
			return nil, err
		}
		steps, err := floatArg(args, 1, 10)
		if err != nil {
			return nil, err
		}
		switch name {
		case "pan":
			return testcases.Pan{DeltaPx: dx, Steps: int(steps)}, nil
		case "dragmin":
			return testcases.Drag{Handle: rangechart.MinHandle, DeltaPx: dx, Steps: int(steps)}, nil
		default:
			return testcases.Drag{Handle: rangechart.MaxHandle, DeltaPx: dx, Steps: int(steps)}, nil
		}

	case "inputmin", "inputmax":
		if len(args) != 1 {
			return nil, errBadOp
		}
		x, err := floatArg(args, 0, 0)
		if err != nil {
			return nil, err
		}
		h := rangechart.MinHandle
		if name == "inputmax" {
			h = rangechart.MaxHandle
		}
		return testcases.Input{Handle: h, X: x}, nil

	case "shrink":
		if len(args) != 0 {
			return nil, errBadOp
		}
		return testcases.Shrink{}, nil
	}
	return nil, fmt.Errorf("%w: unknown name %q", errBadOp, name)
}

func floatArg(args []string, i int, def float64) (float64, error) {
	if i >= len(args) || args[i] == "" {
		return def, nil
	}
	x, err := strconv.ParseFloat(args[i], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errBadOp, err)
	}
	return x, nil
}

func parseAlign(s string) (rangechart.Align, error) {
	for _, a := range []rangechart.Align{rangechart.AlignLeft, rangechart.AlignCenter, rangechart.AlignRight} {
		if strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown alignment %q", errBadOp, s)
}
