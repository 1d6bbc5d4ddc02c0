package braille

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'braille'
func tracer() tracing.Trace {
	return tracing.Select("braille")
}

// LoadText reads a UTF-8 text file for conversion.
func LoadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text, err := ParseText(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

// ParseText validates raw bytes as UTF-8 text and strips a leading BOM
// if present. Invalid encodings are rejected rather than silently
// converted to replacement runes, since every byte of input is expected
// to surface as a conversion record.
func ParseText(data []byte) (string, error) {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("input is not valid UTF-8")
	}
	tracer().Debugf("loaded %d byte(s) of input text", len(data))
	return string(data), nil
}
