package tui

import "github.com/intrale/brandkit/internal/domain"

type issuesLoadedMsg struct {
	issues []domain.Issue
	err    error
}
