package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/braille"
	"github.com/npillmayer/braille/brlconv"
	"github.com/npillmayer/braille/brlrender"
	"github.com/thatisuday/commando"
)

func runRenderCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	text := inputText(args, flags)
	opts := brlrender.DefaultOptions()
	if cfg := mustFlagString(flags["config"], "config"); cfg != "" && cfg != "-" {
		var err error
		if opts, err = brlrender.LoadOptions(cfg); err != nil {
			fatalf("%v", err)
		}
	}
	if mustFlagBool(flags["grid"], "grid") {
		opts.ShowGrid = true
	}
	outPath := mustFlagString(flags["output"], "output")
	if outPath == "" {
		fatalf("output path is empty")
	}
	recs := braille.Convert(text)
	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".svg":
		if err := writeSVGFile(outPath, recs, opts); err != nil {
			fatalf("%v", err)
		}
	case ".png":
		if err := writePNGFile(outPath, recs, opts); err != nil {
			fatalf("%v", err)
		}
	default:
		fatalf("output must be a .png or .svg file, have %s", outPath)
	}
	fmt.Printf("rendered %d record(s) to %s\n", len(recs), outPath)
}

func writeSVGFile(outPath string, recs []brlconv.Record, opts brlrender.Options) error {
	f, err := createOutputFile(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return brlrender.SVG(f, recs, opts)
}

func writePNGFile(outPath string, recs []brlconv.Record, opts brlrender.Options) error {
	img, err := brlrender.Raster(recs, opts)
	if err != nil {
		return err
	}
	f, err := createOutputFile(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("cannot encode png: %w", err)
	}
	return nil
}

func createOutputFile(outPath string) (*os.File, error) {
	if dir := filepath.Dir(outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("cannot create output directory: %w", err)
		}
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("cannot create output file: %w", err)
	}
	return f, nil
}
