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
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the settings of the rangechart command.
// Command line flags override the values loaded from the environment.
type Config struct {
	// Surface size in pixels.  Zero means: take the size from the
	// input file, or use the built-in default.
	Width  int
	Height int

	Format string // "png" or "pdf"

	// Chart parameters
	CareDecimals int // negative: derive from the curve
	MinGap       float64
	PadFactor    float64

	LogLevel slog.Level
}

// LoadConfig loads the configuration from RANGECHART_* environment
// variables.  A .env file in the working directory is read first, if
// present.
func LoadConfig() (*Config, error) {
	// Missing .env files are fine; plain environment variables work too.
	_ = godotenv.Load()

	cfg := &Config{}
	var err error
	var errs []string

	cfg.Width, err = getEnvAsInt("RANGECHART_WIDTH", 0)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid RANGECHART_WIDTH: %v", err))
	} else if cfg.Width < 0 {
		errs = append(errs, "RANGECHART_WIDTH cannot be negative")
	}

	cfg.Height, err = getEnvAsInt("RANGECHART_HEIGHT", 0)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid RANGECHART_HEIGHT: %v", err))
	} else if cfg.Height < 0 {
		errs = append(errs, "RANGECHART_HEIGHT cannot be negative")
	}

	cfg.Format = strings.ToLower(getEnv("RANGECHART_FORMAT", "png"))
	if err := checkFormat(cfg.Format); err != nil {
		errs = append(errs, err.Error())
	}

	cfg.CareDecimals, err = getEnvAsInt("RANGECHART_CARE_DECIMALS", -1)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid RANGECHART_CARE_DECIMALS: %v", err))
	}

	cfg.MinGap, err = getEnvAsFloat("RANGECHART_MIN_GAP", 0)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid RANGECHART_MIN_GAP: %v", err))
	} else if cfg.MinGap < 0 {
		errs = append(errs, "RANGECHART_MIN_GAP cannot be negative")
	}

	cfg.PadFactor, err = getEnvAsFloat("RANGECHART_PAD_FACTOR", 1.2)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid RANGECHART_PAD_FACTOR: %v", err))
	} else if cfg.PadFactor <= 0 {
		errs = append(errs, "RANGECHART_PAD_FACTOR must be positive")
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("RANGECHART_LOG_LEVEL", "INFO"))); err != nil {
		errs = append(errs, fmt.Sprintf("invalid RANGECHART_LOG_LEVEL: %v", err))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

func checkFormat(format string) error {
	switch format {
	case "png", "pdf":
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// --- Env Var Helpers ---

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(valueStr)
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	return strconv.ParseFloat(valueStr, 64)
}
