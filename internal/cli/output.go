package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/intrale/brandkit/internal/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

const emptyValue = "(empty)"

func printSummary(w io.Writer, values domain.Values) {
	fmt.Fprintln(w, headerStyle.Render("Branding.xcconfig generated with:"))
	for _, k := range domain.Keys() {
		v := values[k]
		if v == "" {
			v = faintStyle.Render(emptyValue)
		}
		fmt.Fprintf(w, " - %s: %s\n", keyStyle.Render(k.String()), v)
	}
}

func printIconResults(w io.Writer, results []domain.IconResult) {
	changed := 0
	for _, r := range results {
		if !r.Changed {
			continue
		}
		changed++
		fmt.Fprintf(w, "generated %s\n", r.Target)
	}
	if changed == 0 {
		fmt.Fprintln(w, faintStyle.Render("icons already up to date"))
	}
}

func printIssues(w io.Writer, issues []domain.Issue) {
	if len(issues) == 0 {
		fmt.Fprintln(w, "No issues in Todo.")
		return
	}

	width := 0
	for _, is := range issues {
		if n := len(strconv.Itoa(is.Number)); n > width {
			width = n
		}
	}

	for _, is := range issues {
		fmt.Fprintf(w, "#%*d - %s\n    %s\n", width, is.Number, is.Title, is.URL)
	}
}

func printIssuesJSON(w io.Writer, issues []domain.Issue) error {
	if issues == nil {
		issues = []domain.Issue{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(issues)
}
