package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/braille"
	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("brl-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for text-to-Braille conversion and table diagnostics.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("convert").
		SetDescription("Convert text and print it as Braille Patterns characters.").
		SetShortDescription("convert text").
		AddArgument("text...", "text to convert (variadic argument parts joined by comma by commando)", "").
		AddFlag("file,F", "read input text from a UTF-8 file instead of arguments", commando.String, "-").
		AddFlag("dots,d", "print per-character dot sets instead of Braille text", commando.Bool, nil).
		AddFlag("records,r", "print full conversion records", commando.Bool, nil).
		SetAction(runConvertCommand)

	commando.
		Register("detect").
		SetDescription("Detect the dominant script mixture of text (korean|english|japanese|mixed).").
		SetShortDescription("detect language").
		AddArgument("text...", "text to classify", "").
		AddFlag("file,F", "read input text from a UTF-8 file instead of arguments", commando.String, "-").
		SetAction(runDetectCommand)

	commando.
		Register("render").
		SetDescription("Render converted text to a PNG image or an SVG document.").
		SetShortDescription("render text").
		AddArgument("text...", "text to render", "").
		AddFlag("file,F", "read input text from a UTF-8 file instead of arguments", commando.String, "-").
		AddFlag("output,o", "output file (.png or .svg)", commando.String, "brl-tools-render.png").
		AddFlag("config,c", "TOML file with render options", commando.String, "-").
		AddFlag("grid,g", "draw unraised dot positions as faint pips", commando.Bool, nil).
		SetAction(runRenderCommand)

	commando.
		Register("check").
		SetDescription("Audit the static lookup tables for authoring mistakes.").
		SetShortDescription("audit tables").
		SetAction(runCheckCommand)

	commando.Parse(nil)
}

// inputText resolves the input either from the --file flag or from the
// variadic text argument. commando joins variadic parts by comma.
func inputText(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) string {
	path := mustFlagString(flags["file"], "file")
	if path != "" && path != "-" {
		text, err := braille.LoadText(path)
		if err != nil {
			fatalf("%v", err)
		}
		return text
	}
	text := strings.ReplaceAll(args["text"].Value, ",", " ")
	if strings.TrimSpace(text) == "" {
		fatalf("input text is empty")
	}
	return text
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return strings.TrimSpace(s)
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "brl-tools: "+format+"\n", args...)
	os.Exit(1)
}
