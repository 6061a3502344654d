package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/intrale/brandkit/internal/domain"
	"github.com/intrale/brandkit/internal/ports"
)

type SyncIcons struct {
	pack   ports.IconPack
	writer ports.IconWriter
	logger *slog.Logger
}

type SyncIconsOption func(*SyncIcons)

func WithSyncLogger(l *slog.Logger) SyncIconsOption {
	return func(uc *SyncIcons) {
		if l != nil {
			uc.logger = l
		}
	}
}

func NewSyncIcons(pack ports.IconPack, w ports.IconWriter, opts ...SyncIconsOption) *SyncIcons {
	uc := &SyncIcons{
		pack:   pack,
		writer: w,
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute decodes every icon source in the pack and writes the ones whose
// binary differs from what is already on disk. Results follow source order.
func (uc *SyncIcons) Execute(ctx context.Context) ([]domain.IconResult, error) {
	sources, err := uc.pack.ListSources()
	if err != nil {
		return nil, err
	}

	results := make([]domain.IconResult, 0, len(sources))
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res, err := uc.syncOne(src)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	uc.logger.Info("icons.sync.done", "sources", len(sources), "changed", countChanged(results))
	return results, nil
}

func (uc *SyncIcons) syncOne(src string) (domain.IconResult, error) {
	encoded, err := uc.pack.ReadSource(src)
	if err != nil {
		return domain.IconResult{}, err
	}

	raw, err := base64.StdEncoding.DecodeString(string(bytes.TrimSpace(encoded)))
	if err != nil {
		return domain.IconResult{}, &domain.OpError{
			Op:   "icons.decode",
			Kind: domain.KindInvalidFormat,
			Path: src,
			Err:  fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err),
		}
	}

	target := domain.IconTarget(src)
	changed, err := uc.writer.WriteIfChanged(target, raw)
	if err != nil {
		return domain.IconResult{}, err
	}

	uc.logger.Debug("icons.sync.file", "source", src, "target", target, "changed", changed)
	return domain.IconResult{Source: src, Target: target, Changed: changed}, nil
}

func countChanged(results []domain.IconResult) int {
	n := 0
	for _, r := range results {
		if r.Changed {
			n++
		}
	}
	return n
}
