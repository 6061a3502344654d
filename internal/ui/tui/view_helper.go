package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/intrale/brandkit/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderIssueDetails(is domain.Issue) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("#%d %s\n\n", is.Number, is.Title))
	if is.Repository != "" {
		b.WriteString("Repository: ")
		b.WriteString(is.Repository)
		b.WriteString("\n")
	}
	b.WriteString("URL:        ")
	b.WriteString(is.URL)
	b.WriteString("\n")

	return b.String()
}
