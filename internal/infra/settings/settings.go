// Package settings layers brandkit configuration sources.
//
// Sources are merged first-wins in the order they are added, so callers add
// them from highest to lowest precedence: flags, environment, brandkit.yaml.
package settings

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"

	"github.com/intrale/brandkit/internal/domain"
)

// boardEnv maps the board settings to their environment variables.
type boardEnv struct {
	APIURL        string `env:"BRANDKIT_GRAPHQL_URL"`
	Token         string `env:"GITHUB_TOKEN"`
	ProjectID     string `env:"INTRALE_PROJECT_ID"`
	StatusFieldID string `env:"INTRALE_STATUS_FIELD_ID"`
	TodoOptionID  string `env:"INTRALE_STATUS_TODO"`
	PageSize      int    `env:"BRANDKIT_PAGE_SIZE"`
}

func (e boardEnv) toDomain() domain.BoardConfig {
	return domain.BoardConfig{
		APIURL:        e.APIURL,
		Token:         e.Token,
		ProjectID:     e.ProjectID,
		StatusFieldID: e.StatusFieldID,
		TodoOptionID:  e.TodoOptionID,
		PageSize:      e.PageSize,
	}
}

// FromEnv reads the board settings from environ, or from the process
// environment when environ is nil.
func FromEnv(environ map[string]string) (domain.BoardConfig, error) {
	var e boardEnv
	if err := env.ParseWithOptions(&e, env.Options{Environment: environ}); err != nil {
		return domain.BoardConfig{}, &domain.OpError{
			Op:   "settings.env",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}
	return e.toDomain(), nil
}

// Builder accumulates configuration layers.
type Builder struct {
	layers []domain.Config
	err    error
}

func NewBuilder() *Builder {
	return &Builder{layers: make([]domain.Config, 0, 4)}
}

// WithFlags adds explicitly set flag values. Zero fields are unset.
func (b *Builder) WithFlags(cfg domain.Config) *Builder {
	b.layers = append(b.layers, cfg)
	return b
}

// WithEnv adds the board settings found in environ (see FromEnv).
func (b *Builder) WithEnv(environ map[string]string) *Builder {
	board, err := FromEnv(environ)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.layers = append(b.layers, domain.Config{Board: board})
	return b
}

// WithFile adds the workspace file configuration, usually already merged
// over domain.DefaultConfig by workspacefinder.LoadConfig.
func (b *Builder) WithFile(cfg domain.Config) *Builder {
	b.layers = append(b.layers, cfg)
	return b
}

// Build merges the layers and validates the result.
func (b *Builder) Build() (domain.Config, error) {
	if b.err != nil {
		return domain.Config{}, b.err
	}

	layers := make([]domain.Config, 0, len(b.layers)+1)
	layers = append(layers, b.layers...)
	layers = append(layers, domain.DefaultConfig())

	var cfg domain.Config
	for _, layer := range layers {
		if err := mergo.Merge(&cfg, layer); err != nil {
			return domain.Config{}, &domain.OpError{
				Op:   "settings.merge",
				Kind: domain.KindInvalidConfig,
				Err:  err,
			}
		}
	}

	return cfg, validate(cfg)
}

func validate(cfg domain.Config) error {
	if cfg.Board.PageSize < 1 || cfg.Board.PageSize > 100 {
		return &domain.OpError{
			Op:   "settings.validate",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("page size must be between 1 and 100, got %d", cfg.Board.PageSize),
		}
	}
	return nil
}
