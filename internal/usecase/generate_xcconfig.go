package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/intrale/brandkit/internal/domain"
	"github.com/intrale/brandkit/internal/ports"
)

type GenerateXCConfig struct {
	templates ports.TemplateLoader
	writer    ports.ConfigWriter
	resolver  *domain.BrandingResolver
	logger    *slog.Logger
}

type GenerateOption func(*GenerateXCConfig)

// WithBrandingResolver replaces the default resolver (which sees no environment).
func WithBrandingResolver(r *domain.BrandingResolver) GenerateOption {
	return func(uc *GenerateXCConfig) {
		if r != nil {
			uc.resolver = r
		}
	}
}

func WithGenerateLogger(l *slog.Logger) GenerateOption {
	return func(uc *GenerateXCConfig) {
		if l != nil {
			uc.logger = l
		}
	}
}

func NewGenerateXCConfig(tl ports.TemplateLoader, w ports.ConfigWriter, opts ...GenerateOption) *GenerateXCConfig {
	uc := &GenerateXCConfig{
		templates: tl,
		writer:    w,
		resolver:  domain.NewBrandingResolver(),
		logger:    discardLogger(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute loads the template, resolves every branding key and writes the
// rendered file. Nothing is written unless resolution succeeds for all keys.
func (uc *GenerateXCConfig) Execute(ctx context.Context, templatePath, outputPath string, rawOverrides []string) (domain.Values, error) {
	start := time.Now()
	uc.logger.Info("xcconfig.generate.start", "template", templatePath, "output", outputPath, "overrides", len(rawOverrides))

	tmpl, err := uc.templates.LoadTemplate(templatePath)
	if err != nil {
		return nil, err
	}

	overrides, err := domain.ParseOverrides(rawOverrides)
	if err != nil {
		return nil, err
	}

	resolved, err := uc.resolver.Resolve(tmpl.Defaults, overrides)
	if err != nil {
		uc.logger.Warn("xcconfig.generate.resolve_failed", "error", err)
		return nil, err
	}

	content := domain.Render(tmpl, resolved)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := uc.writer.WriteConfig(outputPath, content); err != nil {
		return nil, err
	}

	uc.logger.Info("xcconfig.generate.done", "output", outputPath, "bytes", len(content), "duration", time.Since(start))
	return resolved, nil
}
