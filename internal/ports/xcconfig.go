package ports

import "github.com/intrale/brandkit/internal/domain"

// TemplateLoader reads and parses an xcconfig template.
type TemplateLoader interface {
	LoadTemplate(path string) (domain.Template, error)
}

// ConfigWriter persists a rendered xcconfig in a single write.
type ConfigWriter interface {
	WriteConfig(path string, content string) error
}
