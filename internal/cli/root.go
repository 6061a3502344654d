package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/intrale/brandkit/internal/buildinfo"
	"github.com/intrale/brandkit/internal/domain"
	"github.com/intrale/brandkit/internal/infra/envsource"
	"github.com/intrale/brandkit/internal/infra/logger"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd(nil)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

type rootOptions struct {
	workspace string
	debug     bool

	// environ replaces the process environment when non-nil.
	environ map[string]string
}

func newRootCmd(environ map[string]string) *cobra.Command {
	opts := &rootOptions{environ: environ}

	cmd := &cobra.Command{
		Use:           "brandkit",
		Short:         "Branding toolkit for the iOS app pipeline",
		Version:       buildinfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .brandkit/logs/brandkit.log")

	cmd.AddCommand(
		xcconfigCmd(opts),
		iconsCmd(opts),
		boardCmd(opts),
		initCmd(opts),
	)
	return cmd
}

// lookup returns the variable source used for branding resolution.
func (o *rootOptions) lookup() domain.LookupFunc {
	if o.environ != nil {
		return envsource.Map(o.environ)
	}
	return envsource.Process()
}

// run wraps a command body with the workspace logger.
func (o *rootOptions) run(name string, fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return o.runIn(name, o.logRoot, fn)
}

// runIn is run with the log directory taken from root.
func (o *rootOptions) runIn(name string, root func() string, fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cleanup, _ := logger.Setup(logger.Config{
			Root:  root(),
			Debug: o.debug,
		})
		if cleanup != nil {
			defer func() { _ = cleanup() }()
		}

		log := logger.L()
		log.Info("command.start", "command", name)

		if err := fn(cmd, args); err != nil {
			log.Error("command.failed", "command", name, "kind", string(domain.KindOf(err)), "err", err)
			return err
		}

		log.Info("command.done", "command", name)
		return nil
	}
}

func (o *rootOptions) logRoot() string {
	if root, err := resolveWorkspaceRoot(o.workspace); err == nil {
		return root
	}

	// Outside a workspace the log goes next to the working directory.
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
