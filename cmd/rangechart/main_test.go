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
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/rangechart"
	"seehuhn.de/go/rangechart/testcases"
)

func TestParseOps(t *testing.T) {
	got, err := parseOps("zoomin:2:center, zoomout, pan:-30:5,dragmin:40,dragmax:-12.5:3,inputmin:0.25,inputmax:7,shrink,")
	if err != nil {
		t.Fatal(err)
	}
	want := []testcases.Operation{
		testcases.ZoomIn{Degree: 2, Align: rangechart.AlignCenter},
		testcases.ZoomOut{Degree: 1, Align: rangechart.AlignLeft},
		testcases.Pan{DeltaPx: -30, Steps: 5},
		testcases.Drag{Handle: rangechart.MinHandle, DeltaPx: 40, Steps: 10},
		testcases.Drag{Handle: rangechart.MaxHandle, DeltaPx: -12.5, Steps: 3},
		testcases.Input{Handle: rangechart.MinHandle, X: 0.25},
		testcases.Input{Handle: rangechart.MaxHandle, X: 7},
		testcases.Shrink{},
	}
	if !slices.Equal(got, want) {
		t.Errorf("parseOps() = %v, want %v", got, want)
	}

	if ops, err := parseOps(""); err != nil || len(ops) != 0 {
		t.Errorf("parseOps(\"\") = %v, %v", ops, err)
	}
}

func TestParseOpsErrors(t *testing.T) {
	for _, s := range []string{
		"jump",
		"zoomin:x",
		"zoomin:1:up",
		"zoomin:1:left:extra",
		"pan",
		"dragmin:1:2:3",
		"inputmax",
		"shrink:1",
	} {
		if _, err := parseOps(s); !errors.Is(err, errBadOp) {
			t.Errorf("parseOps(%q): err = %v", s, err)
		}
	}
}

func TestRun(t *testing.T) {
	t.Setenv("RANGECHART_WIDTH", "")
	t.Setenv("RANGECHART_HEIGHT", "")
	t.Setenv("RANGECHART_FORMAT", "")
	t.Setenv("RANGECHART_CARE_DECIMALS", "")
	t.Setenv("RANGECHART_MIN_GAP", "")
	t.Setenv("RANGECHART_PAD_FACTOR", "")
	t.Setenv("RANGECHART_LOG_LEVEL", "error")

	dir := t.TempDir()
	in := filepath.Join(dir, "curve.json")
	data := `{"width": 160, "height": 50, "points": [[1, 10], [2, 20], [3, 5], [4, 8]]}`
	if err := os.WriteFile(in, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "chart.png")

	err := run([]string{"-in", in, "-out", out, "-ops", "zoomout:2:center,dragmin:15"})
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 50 {
		t.Errorf("image size = %dx%d, want 160x50", b.Dx(), b.Dy())
	}
}

func TestRunErrors(t *testing.T) {
	t.Setenv("RANGECHART_FORMAT", "")
	t.Setenv("RANGECHART_LOG_LEVEL", "error")
	dir := t.TempDir()

	if err := run([]string{"-out", filepath.Join(dir, "x.png")}); err == nil {
		t.Error("missing -in accepted")
	}

	in := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(in, []byte(`{"points": [[3, 1], [1, 1]]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	err := run([]string{"-in", in, "-out", filepath.Join(dir, "x.png")})
	if !errors.Is(err, rangechart.ErrUnsortedCurve) {
		t.Errorf("unsorted input: err = %v", err)
	}
}
