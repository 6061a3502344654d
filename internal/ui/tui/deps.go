package tui

import (
	"context"
	"log/slog"

	"github.com/intrale/brandkit/internal/domain"
)

// IssueLister loads the issues shown by the browser.
type IssueLister interface {
	Execute(ctx context.Context, filter domain.StatusFilter) ([]domain.Issue, error)
}

type Deps struct {
	// Ctx bounds every load; nil means context.Background.
	Ctx    context.Context
	Issues IssueLister
	Filter domain.StatusFilter

	Logger *slog.Logger
	Debug  bool
}
