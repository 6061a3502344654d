package iconfs

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/intrale/brandkit/internal/domain"
	"github.com/intrale/brandkit/internal/infra/atomicfile"
	"github.com/intrale/brandkit/internal/ports"
)

const sourcePattern = "**/*" + domain.IconSourceExt

// Pack is an icon pack directory on disk.
type Pack struct {
	dir string
}

func NewPack(dir string) *Pack {
	return &Pack{dir: filepath.Clean(dir)}
}

var _ ports.IconPack = (*Pack)(nil)

// ListSources returns slash-separated paths relative to the pack, sorted.
func (p *Pack) ListSources() ([]string, error) {
	info, err := os.Stat(p.dir)
	if err != nil || !info.IsDir() {
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.OpError{
				Op:   "iconfs.list",
				Kind: domain.KindNotFound,
				Path: p.dir,
				Err:  domain.ErrNotFound,
			}
		}
		return nil, &domain.OpError{
			Op:   "iconfs.list",
			Kind: domain.KindExecution,
			Path: p.dir,
			Err:  err,
		}
	}

	matches, err := doublestar.Glob(os.DirFS(p.dir), sourcePattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, &domain.OpError{
			Op:   "iconfs.glob",
			Kind: domain.KindInvalidConfig,
			Path: p.dir,
			Err:  err,
		}
	}

	sort.Strings(matches)
	return matches, nil
}

func (p *Pack) ReadSource(rel string) ([]byte, error) {
	full := filepath.Join(p.dir, filepath.FromSlash(rel))
	b, err := os.ReadFile(full)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "iconfs.read",
			Kind: domain.KindExecution,
			Path: full,
			Err:  err,
		}
	}
	return b, nil
}

// Writer materializes icons under a root directory.
type Writer struct {
	root string
	perm os.FileMode
}

func NewWriter(root string) *Writer {
	return &Writer{root: filepath.Clean(root), perm: 0o644}
}

var _ ports.IconWriter = (*Writer)(nil)

func (w *Writer) WriteIfChanged(rel string, data []byte) (bool, error) {
	clean := path.Clean(rel)
	if clean == ".." || path.IsAbs(clean) || strings.HasPrefix(clean, "../") {
		return false, &domain.OpError{
			Op:   "iconfs.write",
			Kind: domain.KindInvalidConfig,
			Path: rel,
			Err:  errors.New("target escapes the workspace root"),
		}
	}

	full := filepath.Join(w.root, filepath.FromSlash(clean))
	existing, err := os.ReadFile(full)
	if err == nil && bytes.Equal(existing, data) {
		return false, nil
	}

	if err := atomicfile.WriteFile(full, data, w.perm); err != nil {
		return false, err
	}
	return true, nil
}
