package brlrender

import (
	"fmt"
	"image/color"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// optionsFile is the TOML schema for render option files. Absent fields
// keep their default; colors are hex strings like "#1A2B3C".
type optionsFile struct {
	CellWidth   float64 `toml:"cell_width"`
	CellHeight  float64 `toml:"cell_height"`
	DotRadius   float64 `toml:"dot_radius"`
	DotSpacing  float64 `toml:"dot_spacing"`
	LineSpacing float64 `toml:"line_spacing"`
	Margin      float64 `toml:"margin"`
	DotColor    string  `toml:"dot_color"`
	EmptyColor  string  `toml:"empty_color"`
	Background  string  `toml:"background"`
	ShowGrid    *bool   `toml:"grid"`
}

// LoadOptions reads a TOML option file and overlays it onto the defaults.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("render options: %w", err)
	}
	return ParseOptions(data)
}

// ParseOptions parses TOML option data and overlays it onto the defaults.
// The result is validated so that a bad file fails here rather than at
// render time.
func ParseOptions(data []byte) (Options, error) {
	var f optionsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return Options{}, fmt.Errorf("render options: %w", err)
	}
	opts := DefaultOptions()
	overlay := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	overlay(&opts.CellWidth, f.CellWidth)
	overlay(&opts.CellHeight, f.CellHeight)
	overlay(&opts.DotRadius, f.DotRadius)
	overlay(&opts.DotSpacing, f.DotSpacing)
	overlay(&opts.LineSpacing, f.LineSpacing)
	overlay(&opts.Margin, f.Margin)
	if f.ShowGrid != nil {
		opts.ShowGrid = *f.ShowGrid
	}
	for _, c := range []struct {
		src string
		dst *color.RGBA
	}{
		{f.DotColor, &opts.DotColor},
		{f.EmptyColor, &opts.EmptyColor},
		{f.Background, &opts.Background},
	} {
		if c.src == "" {
			continue
		}
		rgba, err := parseHexColor(c.src)
		if err != nil {
			return Options{}, err
		}
		*c.dst = rgba
	}
	if err := opts.validate(); err != nil {
		return Options{}, err
	}
	tracer().Debugf("render options loaded: cell %gx%g, radius %g", opts.CellWidth, opts.CellHeight, opts.DotRadius)
	return opts, nil
}

// parseHexColor parses "#RRGGBB" (leading '#' optional) into an opaque
// color.
func parseHexColor(s string) (color.RGBA, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("render options: color %q is not #RRGGBB", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("render options: color %q is not #RRGGBB", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}
