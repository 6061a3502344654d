package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/intrale/brandkit/internal/domain"
	"github.com/intrale/brandkit/internal/ports"
)

type ListTodo struct {
	client ports.BoardClient
	logger *slog.Logger
}

type ListTodoOption func(*ListTodo)

func WithListLogger(l *slog.Logger) ListTodoOption {
	return func(uc *ListTodo) {
		if l != nil {
			uc.logger = l
		}
	}
}

func NewListTodo(client ports.BoardClient, opts ...ListTodoOption) *ListTodo {
	uc := &ListTodo{
		client: client,
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute walks every page of the board and returns the issues matching the
// filter, sorted by number.
func (uc *ListTodo) Execute(ctx context.Context, filter domain.StatusFilter) ([]domain.Issue, error) {
	issues := []domain.Issue{}
	cursor := ""
	pages := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := uc.client.FetchItems(ctx, cursor)
		if err != nil {
			return nil, err
		}
		pages++

		issues = append(issues, domain.FilterIssues(page.Items, filter)...)
		uc.logger.Debug("board.page", "page", pages, "items", len(page.Items), "has_next", page.HasNextPage)

		if !page.HasNextPage {
			break
		}
		if page.EndCursor == "" || page.EndCursor == cursor {
			return nil, &domain.OpError{
				Op:   "board.paginate",
				Kind: domain.KindExecution,
				Err:  fmt.Errorf("page %d reports more items but no new cursor: %w", pages, domain.ErrExecution),
			}
		}
		cursor = page.EndCursor
	}

	domain.SortIssues(issues)
	uc.logger.Info("board.todo.done", "pages", pages, "issues", len(issues))
	return issues, nil
}
