// Package yamlenv loads brand environment files: YAML maps of branding keys
// that stand in for process environment variables.
package yamlenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/intrale/brandkit/internal/domain"
)

type Loader struct {
	rootDir     string
	envDir      string
	secretsFile string
}

type Option func(*Loader)

func WithEnvDir(dir string) Option {
	return func(l *Loader) { l.envDir = dir }
}

func WithSecretsFile(name string) Option {
	return func(l *Loader) { l.secretsFile = name }
}

func NewLoader(root string, opts ...Option) *Loader {
	l := &Loader{
		rootDir:     root,
		envDir:      filepath.Join("branding", "env"),
		secretsFile: "secrets.local.yaml",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load accepts either an environment name (e.g., "staging") or a path to a
// YAML file, and returns its vars merged with the optional secrets file.
func (l *Loader) Load(nameOrPath string) (map[string]string, error) {
	var envPath string
	if strings.HasSuffix(nameOrPath, ".yaml") || strings.HasSuffix(nameOrPath, ".yml") || strings.ContainsRune(nameOrPath, filepath.Separator) {
		envPath = filepath.Clean(nameOrPath)
	} else {
		envPath = filepath.Join(l.rootDir, l.envDir, nameOrPath+".yaml")
	}

	base, err := readVars(envPath)
	if err != nil {
		return nil, err
	}

	// Secrets are optional; they override base vars.
	secretsPath := filepath.Join(filepath.Dir(envPath), l.secretsFile)
	if secretsPath == envPath {
		return base, nil
	}
	secrets, err := readVarsOptional(secretsPath)
	if err != nil {
		return nil, err
	}

	for k, v := range secrets {
		base[k] = v
	}
	return base, nil
}

type yamlEnv struct {
	Vars map[string]string `yaml:"vars"`
}

func readVars(path string) (map[string]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "yamlenv.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	var y yamlEnv
	if err := yaml.Unmarshal(b, &y); err != nil {
		return nil, &domain.OpError{
			Op:   "yamlenv.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if err := checkKeys(path, y.Vars); err != nil {
		return nil, err
	}

	if y.Vars == nil {
		y.Vars = map[string]string{}
	}
	return y.Vars, nil
}

func readVarsOptional(path string) (map[string]string, error) {
	_, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, &domain.OpError{
			Op:   "yamlenv.secrets",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	v, err := readVars(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}
	return v, nil
}

func checkKeys(path string, vars map[string]string) error {
	var unknown []string
	for name := range vars {
		if _, ok := domain.ParseKey(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}

	sort.Strings(unknown)
	return &domain.OpError{
		Op:   "yamlenv.keys",
		Kind: domain.KindUnsupportedKey,
		Path: path,
		Err:  fmt.Errorf("%w: %s", domain.ErrUnsupportedKey, strings.Join(unknown, ", ")),
	}
}
