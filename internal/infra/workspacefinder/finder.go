package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/intrale/brandkit/internal/domain"
	"github.com/intrale/brandkit/internal/ports"
)

// ConfigFile is the optional workspace configuration file name.
const ConfigFile = "brandkit.yaml"

// Finder locates a workspace root by searching upward for any of its markers.
// The markers are tried in order at each level, so brandkit.yaml in a nested
// directory wins over the repository's .git further up.
type Finder struct {
	Markers []string
}

func NewFinder() *Finder {
	return &Finder{Markers: []string{ConfigFile, ".git"}}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		for _, marker := range f.Markers {
			if _, err := os.Stat(filepath.Join(cur, marker)); err == nil {
				return cur, nil
			}
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
