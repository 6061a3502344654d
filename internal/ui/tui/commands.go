package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const loadTimeout = 2 * time.Minute

func cmdLoadIssues(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Issues == nil {
			return issuesLoadedMsg{err: errors.New("IssueLister is nil")}
		}

		log := deps.Logger
		parent := deps.Ctx
		if parent == nil {
			parent = context.Background()
		}
		ctx, cancel := context.WithTimeout(parent, loadTimeout)
		defer cancel()

		start := time.Now()
		issues, err := deps.Issues.Execute(ctx, deps.Filter)
		if log != nil {
			if err != nil {
				log.Error("tui.issues.failed", "err", err)
			} else {
				log.Info("tui.issues.loaded",
					"count", len(issues),
					"took_ms", time.Since(start).Milliseconds(),
				)
			}
		}
		return issuesLoadedMsg{issues: issues, err: err}
	}
}
