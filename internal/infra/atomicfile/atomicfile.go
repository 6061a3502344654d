// Package atomicfile writes files so that readers never observe partial content.
package atomicfile

import (
	"os"
	"path/filepath"

	"github.com/intrale/brandkit/internal/domain"
)

// WriteFile creates the parent directories of path, writes data to a temporary
// file next to it and renames it into place.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.OpError{
			Op:   "atomicfile.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &domain.OpError{
			Op:   "atomicfile.create",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return &domain.OpError{
			Op:   "atomicfile.write",
			Kind: domain.KindExecution,
			Path: tmpPath,
			Err:  err,
		}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return &domain.OpError{
			Op:   "atomicfile.close",
			Kind: domain.KindExecution,
			Path: tmpPath,
			Err:  err,
		}
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return &domain.OpError{
			Op:   "atomicfile.chmod",
			Kind: domain.KindExecution,
			Path: tmpPath,
			Err:  err,
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return &domain.OpError{
			Op:   "atomicfile.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}
