package brl

import "fmt"

// IssueSeverity grades a table-audit finding.
type IssueSeverity int

const (
	// SeverityCritical indicates an entry that would corrupt conversion output.
	SeverityCritical IssueSeverity = iota
	// SeverityMajor indicates an entry that is almost certainly a table-authoring mistake.
	SeverityMajor
	// SeverityMinor indicates a finding that is usually acceptable, e.g. two
	// punctuation marks sharing a pattern.
	SeverityMinor
)

// String returns a human-readable representation of the issue severity.
func (s IssueSeverity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	default:
		return "UNKNOWN"
	}
}

// TableIssue is one finding of [Audit]. The tables are authored by hand,
// so the audit exists to catch slips like a blank entry or a rune filed
// under the wrong script's table.
type TableIssue struct {
	Table    string        // table name, e.g. "korean"
	Rune     rune          // the offending entry's key (0 if not tied to one entry)
	Issue    string        // human-readable description
	Severity IssueSeverity // severity grade
}

// String formats the issue for trace output and CLI display.
func (i TableIssue) String() string {
	if i.Rune != 0 {
		return fmt.Sprintf("[%s] %s table, entry %q: %s", i.Severity, i.Table, i.Rune, i.Issue)
	}
	return fmt.Sprintf("[%s] %s table: %s", i.Severity, i.Table, i.Issue)
}

// auditCollector accumulates findings during a table audit.
type auditCollector struct {
	issues []TableIssue
}

func (ac *auditCollector) add(table string, r rune, issue string, severity IssueSeverity) {
	ac.issues = append(ac.issues, TableIssue{
		Table:    table,
		Rune:     r,
		Issue:    issue,
		Severity: severity,
	})
}

// Audit checks all static tables for internal consistency and returns the
// findings, worst first within each table. A clean table set returns nil.
//
// Checked per entry: the dot set is not blank (a blank entry would be
// indistinguishable from a space cell), and the key belongs to the block
// family the table is consulted for. Pattern duplicates within one table
// are reported as minor.
func Audit() []TableIssue {
	ac := &auditCollector{}
	for _, t := range AllTables() {
		auditTable(ac, t)
	}
	if len(ac.issues) == 0 {
		tracer().Debugf("table audit clean")
		return nil
	}
	tracer().Infof("table audit found %d issue(s)", len(ac.issues))
	return ac.issues
}

func auditTable(ac *auditCollector, t *Table) {
	seen := make(map[DotSet]rune, t.Len())
	for _, r := range t.Runes() {
		d, _ := t.Lookup(r)
		if d == Blank {
			ac.add(t.name, r, "blank dot set; blank cells are reserved for whitespace", SeverityMajor)
		}
		if !keyFitsTable(t.name, r) {
			ac.add(t.name, r, "rune outside the table's script blocks", SeverityMajor)
		}
		if prev, dup := seen[d]; dup && d != Blank {
			if !isKanaMirror(prev, r) {
				ac.add(t.name, r, fmt.Sprintf("pattern %s already used by %q", d, prev), SeverityMinor)
			}
		} else {
			seen[d] = r
		}
	}
}

// isKanaMirror reports whether a and b are a hiragana/katakana pair for
// the same syllable. Such pairs share a pattern on purpose.
func isKanaMirror(a, b rune) bool {
	if a > b {
		a, b = b, a
	}
	return IsKana(a) && IsKana(b) && b-a == 0x60
}

// keyFitsTable reports whether rune r is a plausible key for the named
// table. The Korean table additionally accepts compatibility jamo, which
// classification never routes to but the table legitimately contains.
func keyFitsTable(name string, r rune) bool {
	switch name {
	case "korean":
		return IsHangulSyllable(r) || (r >= 0x3131 && r <= 0x3163)
	case "japanese":
		return IsKana(r)
	case "english":
		return (r >= 'a' && r <= 'z') || IsASCIIDigit(r)
	case "punctuation":
		return ScriptOf(r) == ScriptNone
	}
	return false
}
