package workspacefinder

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/intrale/brandkit/internal/domain"
)

// LoadConfig loads brandkit.yaml from the workspace root and applies it on top
// of the defaults. A missing file is not an error.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	p := y.Brandkit.Paths
	if p.Template != "" {
		cfg.Paths.Template = p.Template
	}
	if p.Output != "" {
		cfg.Paths.Output = p.Output
	}
	if p.IconPack != "" {
		cfg.Paths.IconPack = p.IconPack
	}

	bd := y.Brandkit.Board
	if bd.APIURL != "" {
		cfg.Board.APIURL = bd.APIURL
	}
	if bd.ProjectID != "" {
		cfg.Board.ProjectID = bd.ProjectID
	}
	if bd.StatusFieldID != "" {
		cfg.Board.StatusFieldID = bd.StatusFieldID
	}
	if bd.TodoOptionID != "" {
		cfg.Board.TodoOptionID = bd.TodoOptionID
	}
	if bd.PageSize != nil {
		if *bd.PageSize < 1 || *bd.PageSize > 100 {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  errors.New("board.page_size must be between 1 and 100"),
			}
		}
		cfg.Board.PageSize = *bd.PageSize
	}

	return cfg, nil
}

// The token is deliberately absent: it only comes from the environment.
type yamlConfig struct {
	Brandkit struct {
		Paths struct {
			Template string `yaml:"template"`
			Output   string `yaml:"output"`
			IconPack string `yaml:"icon_pack"`
		} `yaml:"paths"`

		Board struct {
			APIURL        string `yaml:"api_url"`
			ProjectID     string `yaml:"project_id"`
			StatusFieldID string `yaml:"status_field_id"`
			TodoOptionID  string `yaml:"todo_option_id"`
			PageSize      *int   `yaml:"page_size"`
		} `yaml:"board"`
	} `yaml:"brandkit"`
}
