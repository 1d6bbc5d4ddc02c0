package brlrender

import (
	"fmt"
	"image/color"
	"io"

	"github.com/npillmayer/braille/brlconv"
)

// SVG writes records as a standalone SVG document. Layout matches
// [Raster]: lines split at newline markers, whitespace advances without
// emitting an element.
func SVG(w io.Writer, recs []brlconv.Record, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	lines := splitLines(recs)
	cw, ch := canvasSize(lines, opts)
	tracer().Debugf("writing SVG, %d line(s), %dx%d user units", len(lines), cw, ch)
	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		cw, ch, cw, ch); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  <rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n",
		hexColor(opts.Background)); err != nil {
		return err
	}
	for li, line := range lines {
		lineY := opts.Margin + float64(li)*(opts.CellHeight+opts.LineSpacing)
		for ci, rec := range line {
			if rec.Cell == ' ' {
				continue
			}
			cellX := opts.Margin + float64(ci)*opts.CellWidth
			if err := writeCell(w, rec, cellX, lineY, opts); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(w, "</svg>\n")
	return err
}

func writeCell(w io.Writer, rec brlconv.Record, cellX, lineY float64, opts Options) error {
	for n := 1; n <= 8; n++ {
		raised := rec.Dots.Has(n)
		if !raised && !opts.ShowGrid {
			continue
		}
		x, y := opts.dotCenter(cellX, lineY, n)
		r, fill := opts.DotRadius, hexColor(opts.DotColor)
		if !raised {
			r, fill = opts.DotRadius*0.4, hexColor(opts.EmptyColor)
		}
		if _, err := fmt.Fprintf(w, "  <circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.2f\" fill=\"%s\"/>\n",
			x, y, r, fill); err != nil {
			return err
		}
	}
	return nil
}

// hexColor formats a color as #RRGGBB. Alpha is dropped; SVG opacity is
// not part of the option surface.
func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
