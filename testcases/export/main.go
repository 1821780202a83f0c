// Command export writes the test case curves to JSON files, in the input
// format of the rangechart command.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/rangechart/testcases"
)

const outDir = "testdata/curves"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := writeJSON(filepath.Join(outDir, name+".json"), toJSON(name, tc)); err != nil {
				panic(err)
			}
		}
	}
}

type jsonTestCase struct {
	Name   string       `json:"name"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Points [][2]float64 `json:"points"`
}

func toJSON(name string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   name,
		Width:  tc.Width,
		Height: tc.Height,
		Points: make([][2]float64, len(tc.Curve)),
	}
	for i, p := range tc.Curve {
		jtc.Points[i] = [2]float64{p.X, p.Y}
	}
	return jtc
}

func writeJSON(fileName string, v any) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(v)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
