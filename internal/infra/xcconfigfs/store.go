package xcconfigfs

import (
	"errors"
	"io/fs"
	"os"

	"github.com/intrale/brandkit/internal/domain"
	"github.com/intrale/brandkit/internal/infra/atomicfile"
	"github.com/intrale/brandkit/internal/ports"
)

// Store reads xcconfig templates and writes generated xcconfig files.
type Store struct {
	perm os.FileMode
}

type Option func(*Store)

// WithPerm sets the mode of generated files (default 0644).
func WithPerm(perm os.FileMode) Option {
	return func(s *Store) { s.perm = perm }
}

func NewStore(opts ...Option) *Store {
	s := &Store{perm: 0o644}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	_ ports.TemplateLoader = (*Store)(nil)
	_ ports.ConfigWriter   = (*Store)(nil)
)

func (s *Store) LoadTemplate(path string) (domain.Template, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Template{}, &domain.OpError{
				Op:   "xcconfigfs.read",
				Kind: domain.KindNotFound,
				Path: path,
				Err:  domain.ErrNotFound,
			}
		}
		return domain.Template{}, &domain.OpError{
			Op:   "xcconfigfs.read",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	return domain.ParseTemplate(string(b)), nil
}

func (s *Store) WriteConfig(path string, content string) error {
	return atomicfile.WriteFile(path, []byte(content), s.perm)
}
