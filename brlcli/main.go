package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/braille"
	"github.com/npillmayer/braille/brlconv"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'braille'
func tracer() tracing.Trace {
	return tracing.Select("braille")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":       "go",
		"trace.braille":         "Info",
		"trace.braille.core":    "Info",
		"trace.braille.convert": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	langname := flag.String("lang", "", "Preselect language [korean|english|japanese]")
	flag.Parse()
	pterm.Info.Println("Welcome to Braille CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("brl > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, autoLang: true}
	if *langname != "" {
		lang, err := brlconv.ParseLanguage(*langname)
		if err != nil {
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
		intp.lang = lang
		intp.autoLang = false
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	lang     brlconv.Language
	autoLang bool // detect language per input line instead of using lang
}

func (intp *Intp) String() string {
	if intp.autoLang {
		return "( lang=auto )"
	}
	return fmt.Sprintf("( lang=%s )", intp.lang)
}

// REPL starts interactive mode. Lines starting with ':' are commands;
// everything else is converted to Braille and printed.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		err, quit := intp.execute(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(line string) (error, bool) {
	if !strings.HasPrefix(line, ":") {
		intp.convertLine(line)
		return nil, false
	}
	cmd, arg, _ := strings.Cut(line[1:], " ")
	arg = strings.TrimSpace(arg)
	switch strings.ToLower(cmd) {
	case "quit", "q":
		return nil, true
	case "help", "h":
		help(arg)
		return nil, false
	case "lang":
		return intp.langOp(arg), false
	case "dots":
		return intp.dotsOp(arg), false
	case "table":
		return tableOp(arg), false
	case "audit":
		return auditOp(), false
	}
	help("")
	return nil, false
}

// convertLine prints a converted input line plus its detection verdict.
func (intp *Intp) convertLine(text string) {
	if intp.autoLang {
		pterm.Printf("detected language: %s\n", braille.DetectLanguage(text))
	}
	printRecords(braille.Convert(text))
}

// langOp switches language selection, or reports detection for an
// argument text. ':lang auto' re-enables per-line detection.
func (intp *Intp) langOp(arg string) error {
	switch {
	case arg == "":
		pterm.Println(intp.String())
	case strings.EqualFold(arg, "auto"):
		intp.autoLang = true
	default:
		lang, err := brlconv.ParseLanguage(arg)
		if err != nil {
			return err
		}
		intp.lang = lang
		intp.autoLang = false
	}
	return nil
}

// dotsOp prints the per-rune dot sets for an argument text.
func (intp *Intp) dotsOp(arg string) error {
	if arg == "" {
		return fmt.Errorf("usage: :dots <text>")
	}
	printDots(braille.Convert(arg))
	return nil
}
