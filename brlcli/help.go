package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "lang", "language":
		pterm.Info.Println("Language selection")
		pterm.Println(`
	:lang              show current selection
	:lang auto         detect language per input line (default)
	:lang korean       preselect a language
	Detection is informational only; conversion always classifies each
	character by its own script.
	`)
	case "dots", "table", "tables":
		pterm.Info.Println("Inspection")
		pterm.Println(`
	:dots <text>       per-character dot sets for <text>
	:table             list the lookup tables
	:table korean      dump one table (korean|japanese|english|punct)
	:audit             check the tables for authoring slips
	`)
	default:
		pterm.Info.Println("Braille CLI")
		pterm.Println(`
	<text>             convert a line of text and print it as Braille
	:dots <text>       show the dot sets behind the cells
	:lang [...]        language selection, see :help lang
	:table [...]       inspect lookup tables, see :help table
	:quit              leave (also <ctrl>D)
	`)
	}
}
