package cli

import (
	"github.com/spf13/cobra"

	"github.com/intrale/brandkit/internal/infra/iconfs"
	"github.com/intrale/brandkit/internal/infra/logger"
	"github.com/intrale/brandkit/internal/usecase"
)

func iconsCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "icons",
		Short: "Manage the binary icons of the branding pack",
	}

	c.AddCommand(iconsSyncCmd(opts))
	return c
}

func iconsSyncCmd(opts *rootOptions) *cobra.Command {
	var pack string

	c := &cobra.Command{
		Use:   "sync",
		Short: "Decode *.b64 icons from the icon pack into the workspace",
		Args:  cobra.NoArgs,
	}

	c.RunE = opts.run("icons.sync", func(cmd *cobra.Command, _ []string) error {
		ws, err := loadWorkspaceOrDefaults(opts.workspace)
		if err != nil {
			return err
		}

		uc := usecase.NewSyncIcons(
			iconfs.NewPack(ws.path(firstNonEmpty(pack, ws.cfg.Paths.IconPack))),
			iconfs.NewWriter(ws.root),
			usecase.WithSyncLogger(logger.L()),
		)

		results, err := uc.Execute(cmd.Context())
		if err != nil {
			return err
		}

		printIconResults(cmd.OutOrStdout(), results)
		return nil
	})

	c.Flags().StringVar(&pack, "pack", "", "Icon pack directory (defaults to brandkit.paths.icon_pack)")
	return c
}
