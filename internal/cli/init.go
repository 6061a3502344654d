package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/intrale/brandkit/internal/infra/fsworkspace"
)

func initCmd(opts *rootOptions) *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Scaffold brandkit.yaml and the brand environment directory",
		Args:  cobra.NoArgs,
	}

	// The log of init lands in the workspace being created.
	logRoot := func() string {
		if root, err := initRoot(path); err == nil {
			return root
		}
		return opts.logRoot()
	}

	c.RunE = opts.runIn("init", logRoot, func(cmd *cobra.Command, _ []string) error {
		root, err := initRoot(path)
		if err != nil {
			return err
		}

		if err := fsworkspace.NewInitializer().Init(root, force); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "workspace initialized at %s\n", root)
		return nil
	})

	c.Flags().StringVar(&path, "path", "", "Directory to initialize (defaults to the working directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing scaffold files")
	return c
}

func initRoot(path string) (string, error) {
	root := path
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		root = wd
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	return abs, nil
}
