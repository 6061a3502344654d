package ports

import (
	"context"

	"github.com/intrale/brandkit/internal/domain"
)

// BoardClient fetches project board items one page at a time.
// An empty cursor requests the first page.
type BoardClient interface {
	FetchItems(ctx context.Context, cursor string) (domain.BoardPage, error)
}
