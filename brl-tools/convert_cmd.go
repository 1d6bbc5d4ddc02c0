package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/braille"
	"github.com/npillmayer/braille/brl"
	"github.com/npillmayer/braille/brlconv"
	"github.com/thatisuday/commando"
)

func runConvertCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	text := inputText(args, flags)
	recs := braille.Convert(text)
	switch {
	case mustFlagBool(flags["records"], "records"):
		for _, rec := range recs {
			fmt.Println(formatRecord(rec))
		}
	case mustFlagBool(flags["dots"], "dots"):
		for _, rec := range recs {
			fmt.Printf("%s %s\n", formatChar(rec.Char), rec.Dots)
		}
	default:
		sb := strings.Builder{}
		for _, rec := range recs {
			sb.WriteRune(rec.Cell)
		}
		fmt.Println(sb.String())
	}
	if n := missCount(recs); n > 0 {
		fmt.Printf("%d character(s) without mapping, shown as %s\n", n, string(brl.Fallback.Rune()))
	}
}

func runDetectCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	text := inputText(args, flags)
	fmt.Println(braille.DetectLanguage(text))
}

func runCheckCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	issues := brl.Audit()
	if len(issues) == 0 {
		fmt.Println("table audit clean")
		return
	}
	severe := 0
	for _, issue := range issues {
		fmt.Println(issue)
		if issue.Severity != brl.SeverityMinor {
			severe++
		}
	}
	if severe > 0 {
		fatalf("%d severe table issue(s)", severe)
	}
}

func missCount(recs []brlconv.Record) int {
	n := 0
	for _, rec := range recs {
		if !rec.Recognized {
			n++
		}
	}
	return n
}

func formatRecord(rec brlconv.Record) string {
	return fmt.Sprintf("%s cell=%s dots=%s recognized=%v",
		formatChar(rec.Char), formatChar(rec.Cell), rec.Dots, rec.Recognized)
}

func formatChar(r rune) string {
	switch r {
	case ' ':
		return "'␣'"
	case '\t':
		return "'\\t'"
	case '\n':
		return "'\\n'"
	}
	return fmt.Sprintf("%q", r)
}
