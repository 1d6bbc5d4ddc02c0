package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/braille/brl"
	"github.com/npillmayer/braille/brlconv"
	"github.com/pterm/pterm"
)

// printRecords prints the Braille form of a converted line, flagging
// fallback cells.
func printRecords(recs []brlconv.Record) {
	sb := strings.Builder{}
	misses := 0
	for _, rec := range recs {
		sb.WriteRune(rec.Cell)
		if !rec.Recognized {
			misses++
		}
	}
	pterm.Printf("braille: %s\n", sb.String())
	if misses > 0 {
		pterm.Error.Printf("%d character(s) without mapping, shown as %s\n",
			misses, string(brl.Fallback.Rune()))
	}
}

// printDots prints one table row per record: rune, cell, dot numbers.
func printDots(recs []brlconv.Record) {
	data := [][]string{
		{"Char", "Cell", "Dots", "Recognized"},
	}
	for _, rec := range recs {
		data = append(data, []string{
			formatChar(rec.Char),
			formatChar(rec.Cell),
			rec.Dots.String(),
			fmt.Sprintf("%v", rec.Recognized),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// tableOp prints the entries of one lookup table.
func tableOp(arg string) error {
	var table *brl.Table
	switch strings.ToLower(arg) {
	case "korean", "ko":
		table = brl.KoreanTable()
	case "japanese", "ja":
		table = brl.JapaneseTable()
	case "english", "en":
		table = brl.EnglishTable()
	case "punct", "punctuation":
		table = brl.PunctTable()
	case "":
		for _, t := range brl.AllTables() {
			pterm.Printf("%-12s %d entries\n", t.Name(), t.Len())
		}
		return nil
	default:
		return fmt.Errorf("no table named %q", arg)
	}
	pterm.Printf("%s table, %d entries\n", table.Name(), table.Len())
	data := [][]string{
		{"Rune", "Cell", "Dots"},
	}
	for _, r := range table.Runes() {
		d, _ := table.Lookup(r)
		data = append(data, []string{formatChar(r), string(d.Rune()), d.String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil
}

// auditOp runs the table audit and prints the findings.
func auditOp() error {
	issues := brl.Audit()
	if len(issues) == 0 {
		pterm.Info.Println("table audit clean")
		return nil
	}
	for _, issue := range issues {
		if issue.Severity == brl.SeverityMinor {
			pterm.Printf("%s\n", issue)
		} else {
			pterm.Error.Printf("%s\n", issue)
		}
	}
	return nil
}

// formatChar makes control characters visible in table output.
func formatChar(r rune) string {
	switch r {
	case ' ':
		return "␣"
	case '\t':
		return "\\t"
	case '\n':
		return "\\n"
	}
	return string(r)
}
