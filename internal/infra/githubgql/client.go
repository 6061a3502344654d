package githubgql

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/intrale/brandkit/internal/domain"
	"github.com/intrale/brandkit/internal/infra/httpclient"
	"github.com/intrale/brandkit/internal/ports"
)

const userAgent = "brandkit"

// Config selects the endpoint, credentials and project to page through.
type Config struct {
	Endpoint  string
	Token     string
	ProjectID string
	PageSize  int
	HTTP      httpclient.Config
}

// Client is a GitHub GraphQL client for ProjectV2 boards.
type Client struct {
	rest      *resty.Client
	endpoint  string
	projectID string
	pageSize  int
	logger    *slog.Logger
}

type Option func(*Client)

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New validates cfg and builds the client. A missing token or project id is
// reported before any request is made.
func New(cfg Config, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, &domain.OpError{
			Op:   "githubgql.new",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("GITHUB_TOKEN is not set: %w", domain.ErrInvalidConfig),
		}
	}
	if strings.TrimSpace(cfg.ProjectID) == "" {
		return nil, &domain.OpError{
			Op:   "githubgql.new",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("project id is empty: %w", domain.ErrInvalidConfig),
		}
	}
	if strings.TrimSpace(cfg.Endpoint) == "" {
		cfg.Endpoint = domain.DefaultConfig().Board.APIURL
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = domain.DefaultConfig().Board.PageSize
	}

	rest := resty.NewWithClient(httpclient.New(cfg.HTTP)).
		SetAuthToken(cfg.Token).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	c := &Client{
		rest:      rest,
		endpoint:  cfg.Endpoint,
		projectID: cfg.ProjectID,
		pageSize:  cfg.PageSize,
		logger:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

var _ ports.BoardClient = (*Client)(nil)

// FetchItems requests one page of project items starting after cursor.
func (c *Client) FetchItems(ctx context.Context, cursor string) (domain.BoardPage, error) {
	vars := map[string]any{
		"project": c.projectID,
		"cursor":  nil,
		"first":   c.pageSize,
	}
	if cursor != "" {
		vars["cursor"] = cursor
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(graphQLRequest{Query: itemsQuery, Variables: vars}).
		Post(c.endpoint)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.BoardPage{}, ctxErr
		}
		return domain.BoardPage{}, &domain.OpError{
			Op:   "githubgql.request",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	c.logger.Debug("githubgql.response", "status", resp.StatusCode(), "bytes", len(resp.Body()), "duration", resp.Time())

	if resp.IsError() {
		return domain.BoardPage{}, &domain.OpError{
			Op:   "githubgql.request",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("unexpected status %d: %s", resp.StatusCode(), snippet(resp.Body())),
		}
	}

	page, err := decodePage(resp.Body())
	if err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) {
			return domain.BoardPage{}, err
		}
		return domain.BoardPage{}, &domain.OpError{
			Op:   "githubgql.decode",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	return page, nil
}

func snippet(b []byte) string {
	const max = 200
	s := strings.TrimSpace(string(b))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
