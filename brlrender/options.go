package brlrender

import (
	"fmt"
	"image/color"
)

// Options configures cell geometry and colors for rendering. The zero
// value is not usable; start from [DefaultOptions]. All lengths are in
// pixels (raster) or user units (SVG).
type Options struct {
	CellWidth   float64 // horizontal advance per cell
	CellHeight  float64 // vertical extent of one line of cells
	DotRadius   float64 // radius of a raised dot
	DotSpacing  float64 // center distance between neighboring dot positions
	LineSpacing float64 // extra space between lines
	Margin      float64 // blank border around the drawing

	DotColor   color.RGBA // raised dots
	EmptyColor color.RGBA // unraised positions, drawn only with ShowGrid
	Background color.RGBA

	// ShowGrid draws unraised dot positions as faint pips, which makes
	// the cell raster visible on sparse text.
	ShowGrid bool
}

// DefaultOptions returns the rendering defaults: black dots on white at
// a comfortable screen size.
func DefaultOptions() Options {
	return Options{
		CellWidth:   24,
		CellHeight:  36,
		DotRadius:   3.2,
		DotSpacing:  9,
		LineSpacing: 12,
		Margin:      16,
		DotColor:    color.RGBA{A: 0xFF},
		EmptyColor:  color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF},
		Background:  color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		ShowGrid:    false,
	}
}

// validate rejects geometry a renderer cannot draw.
func (o Options) validate() error {
	if o.CellWidth <= 0 || o.CellHeight <= 0 {
		return fmt.Errorf("render options: cell size %gx%g must be positive", o.CellWidth, o.CellHeight)
	}
	if o.DotRadius <= 0 {
		return fmt.Errorf("render options: dot radius %g must be positive", o.DotRadius)
	}
	if o.DotSpacing <= 0 {
		return fmt.Errorf("render options: dot spacing %g must be positive", o.DotSpacing)
	}
	if 2*o.DotRadius > o.DotSpacing {
		return fmt.Errorf("render options: dot radius %g overlaps neighboring positions at spacing %g",
			o.DotRadius, o.DotSpacing)
	}
	if o.Margin < 0 || o.LineSpacing < 0 {
		return fmt.Errorf("render options: margin and line spacing must not be negative")
	}
	return nil
}

// dotPosition returns column (0 or 1) and row (0…3) of dot number n
// within the cell grid. Dots 1,2,3,7 form the left column top to bottom,
// dots 4,5,6,8 the right column.
func dotPosition(n int) (col, row int) {
	switch n {
	case 1, 2, 3:
		return 0, n - 1
	case 7:
		return 0, 3
	case 4, 5, 6:
		return 1, n - 4
	case 8:
		return 1, 3
	}
	panic(fmt.Sprintf("brlrender: dot number %d out of range 1..8", n))
}

// dotCenter returns the center coordinates of dot number n for a cell
// whose top-left corner is at (cellX, lineY).
func (o Options) dotCenter(cellX, lineY float64, n int) (x, y float64) {
	col, row := dotPosition(n)
	x = cellX + o.CellWidth/2 + (float64(col)-0.5)*o.DotSpacing
	y = lineY + o.CellHeight/2 + (float64(row)-1.5)*o.DotSpacing
	return
}
