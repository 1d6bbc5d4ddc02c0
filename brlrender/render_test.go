package brlrender

import (
	"image/color"
	"strings"
	"testing"

	"github.com/npillmayer/braille/brlconv"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "braille.render")
	defer teardown()
	//
	assert.NoError(t, DefaultOptions().validate())

	bad := DefaultOptions()
	bad.CellWidth = 0
	assert.Error(t, bad.validate())

	bad = DefaultOptions()
	bad.DotRadius = bad.DotSpacing // dots would touch their neighbors
	assert.Error(t, bad.validate())

	bad = DefaultOptions()
	bad.Margin = -1
	assert.Error(t, bad.validate())
}

func TestRasterCanvasSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "braille.render")
	defer teardown()
	//
	opts := DefaultOptions()
	img, err := Raster(brlconv.ConvertString("a"), opts)
	require.NoError(t, err)
	b := img.Bounds()
	assert.Equal(t, int(2*opts.Margin+opts.CellWidth), b.Dx())
	assert.Equal(t, int(2*opts.Margin+opts.CellHeight), b.Dy())

	// A second line adds cell height plus line spacing.
	img, err = Raster(brlconv.ConvertString("a\nbc"), opts)
	require.NoError(t, err)
	b = img.Bounds()
	assert.Equal(t, int(2*opts.Margin+2*opts.CellWidth), b.Dx(), "widest line wins")
	assert.Equal(t, int(2*opts.Margin+2*opts.CellHeight+opts.LineSpacing), b.Dy())
}

func TestRasterDrawsDots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "braille.render")
	defer teardown()
	//
	opts := DefaultOptions()
	img, err := Raster(brlconv.ConvertString("a"), opts)
	require.NoError(t, err)

	// Dot 1 of the single cell is raised; its center must carry dot color.
	x, y := opts.dotCenter(opts.Margin, opts.Margin, 1)
	r, _, _, _ := img.At(int(x), int(y)).RGBA()
	assert.Less(t, r, uint32(0x8000), "dot center should be dark")

	// Dot 5 is not raised and the grid is off, so its center stays white.
	x, y = opts.dotCenter(opts.Margin, opts.Margin, 5)
	r, _, _, _ = img.At(int(x), int(y)).RGBA()
	assert.Equal(t, uint32(0xFFFF), r, "unraised position should be background")
}

func TestRasterSpaceEmitsNothing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "braille.render")
	defer teardown()
	//
	img, err := Raster(brlconv.ConvertString(" "), DefaultOptions())
	require.NoError(t, err)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r != 0xFFFF || g != 0xFFFF || bl != 0xFFFF {
				t.Fatalf("space cell drew a pixel at %d,%d", x, y)
			}
		}
	}
}

func TestRasterRejectsBadOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "braille.render")
	defer teardown()
	//
	bad := DefaultOptions()
	bad.CellHeight = -10
	_, err := Raster(brlconv.ConvertString("a"), bad)
	assert.Error(t, err)
}

func TestSVGCircleCount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "braille.render")
	defer teardown()
	//
	// "ab" raises 1 + 2 dots.
	var sb strings.Builder
	err := SVG(&sb, brlconv.ConvertString("ab"), DefaultOptions())
	require.NoError(t, err)
	out := sb.String()
	assert.Equal(t, 3, strings.Count(out, "<circle"))
	assert.Contains(t, out, "<svg xmlns")
	assert.Contains(t, out, "</svg>")

	// Grid mode pips every unraised position: 2 cells of 8 positions.
	opts := DefaultOptions()
	opts.ShowGrid = true
	sb.Reset()
	err = SVG(&sb, brlconv.ConvertString("ab"), opts)
	require.NoError(t, err)
	assert.Equal(t, 16, strings.Count(sb.String(), "<circle"))
}

func TestSVGSkipsWhitespace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "braille.render")
	defer teardown()
	//
	var plain, spaced strings.Builder
	require.NoError(t, SVG(&plain, brlconv.ConvertString("aa"), DefaultOptions()))
	require.NoError(t, SVG(&spaced, brlconv.ConvertString("a a"), DefaultOptions()))
	// The space advances the pen but emits no element.
	assert.Equal(t,
		strings.Count(plain.String(), "<circle"),
		strings.Count(spaced.String(), "<circle"))
}

func TestSplitLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "braille.render")
	defer teardown()
	//
	lines := splitLines(brlconv.ConvertString("ab\n\ncd"))
	require.Len(t, lines, 3)
	assert.Len(t, lines[0], 2)
	assert.Empty(t, lines[1], "empty lines survive for vertical layout")
	assert.Len(t, lines[2], 2)
}

func TestParseOptionsOverlay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "braille.render")
	defer teardown()
	//
	opts, err := ParseOptions([]byte(`
cell_width = 30.0
dot_color = "#336699"
grid = true
`))
	require.NoError(t, err)
	assert.Equal(t, 30.0, opts.CellWidth)
	assert.Equal(t, DefaultOptions().CellHeight, opts.CellHeight, "absent fields keep defaults")
	assert.Equal(t, color.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xFF}, opts.DotColor)
	assert.True(t, opts.ShowGrid)
}

func TestParseOptionsErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "braille.render")
	defer teardown()
	//
	_, err := ParseOptions([]byte(`cell_width = "wide"`))
	assert.Error(t, err, "type mismatch")

	_, err = ParseOptions([]byte(`dot_color = "bluish"`))
	assert.Error(t, err, "malformed color")

	_, err = ParseOptions([]byte(`dot_radius = 100.0`))
	assert.Error(t, err, "invalid geometry must fail at load time")
}
