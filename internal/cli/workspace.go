package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/intrale/brandkit/internal/domain"
	"github.com/intrale/brandkit/internal/infra/workspacefinder"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{root: root, cfg: cfg}, nil
}

// loadWorkspaceOrDefaults lets commands run outside a workspace: the working
// directory becomes the root and the built-in defaults apply.
func loadWorkspaceOrDefaults(workspaceFlag string) (*workspaceCtx, error) {
	ws, err := loadWorkspace(workspaceFlag)
	if err == nil {
		return ws, nil
	}
	if strings.TrimSpace(workspaceFlag) == "" && domain.IsKind(err, domain.KindNotFound) {
		wd, _ := os.Getwd()
		return &workspaceCtx{root: wd, cfg: domain.DefaultConfig()}, nil
	}
	return nil, err
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: add a brandkit.yaml at the repository root): %w", wd, err)
	}
	return root, nil
}

// path resolves p against the workspace root unless it is absolute.
func (ws *workspaceCtx) path(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(ws.root, filepath.FromSlash(p))
}

// resolveEnvironmentArg turns --env into something yamlenv.Loader accepts:
// plain names pass through, paths are anchored at the workspace root.
func resolveEnvironmentArg(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", errors.New("environment name is empty")
	}

	if looksLikePath(in) || hasYAMLExt(in) {
		p := ws.path(in)
		if !fileExists(p) {
			return "", &domain.OpError{
				Op:   "cli.env",
				Kind: domain.KindNotFound,
				Path: p,
				Err:  domain.ErrNotFound,
			}
		}
		return p, nil
	}

	return in, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
