package brlrender

import (
	"image"
	"image/draw"
	"math"

	"github.com/npillmayer/braille/brlconv"
	"golang.org/x/image/vector"
)

// Raster draws records into a new RGBA image. Lines are split at newline
// records; whitespace records advance the pen without drawing. The image
// is sized to fit the longest line plus margins.
func Raster(recs []brlconv.Record, opts Options) (image.Image, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	lines := splitLines(recs)
	w, h := canvasSize(lines, opts)
	tracer().Debugf("rasterizing %d line(s) onto %dx%d canvas", len(lines), w, h)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	raised := vector.NewRasterizer(w, h)
	var pips *vector.Rasterizer
	if opts.ShowGrid {
		pips = vector.NewRasterizer(w, h)
	}
	for li, line := range lines {
		lineY := opts.Margin + float64(li)*(opts.CellHeight+opts.LineSpacing)
		for ci, rec := range line {
			if rec.Cell == ' ' {
				continue
			}
			cellX := opts.Margin + float64(ci)*opts.CellWidth
			for n := 1; n <= 8; n++ {
				x, y := opts.dotCenter(cellX, lineY, n)
				if rec.Dots.Has(n) {
					fillCircle(raised, x, y, opts.DotRadius)
				} else if pips != nil {
					fillCircle(pips, x, y, opts.DotRadius*0.4)
				}
			}
		}
	}
	if pips != nil {
		pips.Draw(img, img.Bounds(), image.NewUniform(opts.EmptyColor), image.Point{})
	}
	raised.Draw(img, img.Bounds(), image.NewUniform(opts.DotColor), image.Point{})
	return img, nil
}

// splitLines cuts the record sequence at newline markers. The markers
// themselves are dropped; empty lines survive as empty slices so that
// vertical layout is preserved.
func splitLines(recs []brlconv.Record) [][]brlconv.Record {
	lines := make([][]brlconv.Record, 1)
	for _, rec := range recs {
		if rec.Cell == '\n' {
			lines = append(lines, nil)
			continue
		}
		lines[len(lines)-1] = append(lines[len(lines)-1], rec)
	}
	return lines
}

// canvasSize computes pixel dimensions for the split lines.
func canvasSize(lines [][]brlconv.Record, opts Options) (w, h int) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	fw := 2*opts.Margin + float64(maxLen)*opts.CellWidth
	fh := 2*opts.Margin + float64(len(lines))*opts.CellHeight +
		float64(len(lines)-1)*opts.LineSpacing
	return int(math.Ceil(fw)), int(math.Ceil(fh))
}

// kappa approximates a quarter circle with one cubic Bézier segment.
const kappa = 0.5522847498

// fillCircle adds a circle path at (cx, cy) to the rasterizer, built
// from four cubic Bézier quadrants.
func fillCircle(z *vector.Rasterizer, cx, cy, r float64) {
	k := float32(kappa * r)
	x, y, rr := float32(cx), float32(cy), float32(r)
	z.MoveTo(x+rr, y)
	z.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
	z.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
	z.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
	z.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
	z.ClosePath()
}
