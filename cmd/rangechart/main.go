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

// Command rangechart renders a liquidity curve as an interactive price-range
// chart would show it, after applying a scripted sequence of user actions.
//
// Usage:
//
//	rangechart -in curve.json -out chart.png [-ops "zoomin:2:center,dragmin:40"]
//
// The input file contains an object with a "points" array of [price,
// liquidity] pairs and optional "width" and "height" fields, as written by
// testcases/export.  Settings can also be given as RANGECHART_* environment
// variables or in a .env file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"seehuhn.de/go/rangechart"
	"seehuhn.de/go/rangechart/pdfchart"
	"seehuhn.de/go/rangechart/testcases"
)

const (
	defaultWidth  = 400
	defaultHeight = 120
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("rangechart failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("rangechart", flag.ContinueOnError)
	in := fs.String("in", "", "input curve (JSON)")
	out := fs.String("out", "", "output file")
	opsFlag := fs.String("ops", "", "comma-separated operations to apply")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "surface width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "surface height in pixels")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format (png or pdf)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("both -in and -out are required")
	}
	if err := checkFormat(cfg.Format); err != nil {
		return err
	}
	ops, err := parseOps(*opsFlag)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	input, err := readCurve(*in)
	if err != nil {
		return err
	}
	width := firstPositive(cfg.Width, input.Width, defaultWidth)
	height := firstPositive(cfg.Height, input.Height, defaultHeight)

	opts := rangechart.DefaultOptions()
	opts.MinGap = cfg.MinGap
	opts.PadFactor = cfg.PadFactor
	opts.CareDecimalLength = cfg.CareDecimals
	opts.Logger = logger
	opts.OnChangeMinBoundary = func(v rangechart.BoundaryValue) {
		logger.Info("min boundary", "price", v.X, "liquidity", v.Y)
	}
	opts.OnChangeMaxBoundary = func(v rangechart.BoundaryValue) {
		logger.Info("max boundary", "price", v.X, "liquidity", v.Y)
	}

	c, err := rangechart.NewChart(float64(width), float64(height), input.curve(), opts)
	if err != nil {
		return fmt.Errorf("%s: %w", *in, err)
	}
	for _, op := range ops {
		testcases.Apply(c, op)
	}
	logger.Debug("chart ready",
		"points", len(c.Curve()),
		"zoom", c.Zoom(),
		"decimals", c.AccurateDecimalLength())

	switch cfg.Format {
	case "pdf":
		err = pdfchart.Write(c.Frame(), *out)
	default:
		err = writePNG(c, width, height, *out)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", *out, err)
	}
	logger.Info("chart written", "file", *out, "format", cfg.Format)
	return nil
}

type curveFile struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Points [][2]float64 `json:"points"`
}

func (f *curveFile) curve() []rangechart.CurvePoint {
	curve := make([]rangechart.CurvePoint, len(f.Points))
	for i, p := range f.Points {
		curve[i] = rangechart.CurvePoint{X: p[0], Y: p[1]}
	}
	return curve
}

func readCurve(fileName string) (*curveFile, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	f := &curveFile{}
	if err := json.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return f, nil
}

func writePNG(c *rangechart.Chart, width, height int, fileName string) (err error) {
	img := image.NewAlpha(image.Rect(0, 0, width, height))
	c.Render(img)

	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
