package domain

import (
	"regexp"
	"strings"
	"unicode"
)

var assignmentRE = regexp.MustCompile(`^([A-Z0-9_]+)\s*=\s*(.*)$`)

// EntryKind tells raw passthrough lines apart from recognized assignments.
type EntryKind int

const (
	EntryRaw EntryKind = iota
	EntrySetting
)

// Entry is one line of an xcconfig template.
// Raw entries keep the original text including its line terminator.
type Entry struct {
	Kind EntryKind
	Line string
	Key  Key
}

// Template is a parsed xcconfig file: its lines in order plus the default
// value of every recognized assignment.
type Template struct {
	Entries  []Entry
	Defaults Values
}

// ParseTemplate splits text into entries. Comments (//), blank lines, lines that
// are not KEY = VALUE assignments and assignments to unknown keys are kept
// byte-for-byte. When a key is assigned twice the later default wins; both lines
// remain settings.
func ParseTemplate(text string) Template {
	t := Template{Defaults: Values{}}

	for _, line := range splitLines(text) {
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, "//") {
			t.Entries = append(t.Entries, Entry{Kind: EntryRaw, Line: line})
			continue
		}

		m := assignmentRE.FindStringSubmatch(stripped)
		if m == nil {
			t.Entries = append(t.Entries, Entry{Kind: EntryRaw, Line: line})
			continue
		}

		key, ok := ParseKey(m[1])
		if !ok {
			t.Entries = append(t.Entries, Entry{Kind: EntryRaw, Line: line})
			continue
		}

		t.Entries = append(t.Entries, Entry{Kind: EntrySetting, Key: key})
		t.Defaults[key] = strings.TrimSpace(m[2])
	}

	return t
}

// Render re-emits the template with resolved values substituted into every
// setting line. Keys missing from resolved fall back to the template default.
func Render(t Template, resolved Values) string {
	var b strings.Builder

	for _, e := range t.Entries {
		if e.Kind == EntryRaw {
			b.WriteString(e.Line)
			continue
		}

		v, ok := resolved[e.Key]
		if !ok {
			v = t.Defaults[e.Key]
		}

		b.WriteString(e.Key.String())
		b.WriteString(" = ")
		b.WriteString(FormatValue(v))
		b.WriteByte('\n')
	}

	return b.String()
}

// FormatValue renders a value for the right-hand side of an assignment.
// Double quotes are escaped; values with whitespace or '#' are quoted.
func FormatValue(v string) string {
	if v == "" {
		return ""
	}

	escaped := strings.ReplaceAll(v, `"`, `\"`)
	if strings.IndexFunc(escaped, unicode.IsSpace) >= 0 || strings.Contains(escaped, "#") {
		return `"` + escaped + `"`
	}
	return escaped
}

// splitLines splits text after each '\n', keeping terminators.
// A trailing fragment without terminator is returned as its own line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
