package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/intrale/brandkit/internal/domain"
	"github.com/intrale/brandkit/internal/infra/envsource"
	"github.com/intrale/brandkit/internal/infra/logger"
	"github.com/intrale/brandkit/internal/infra/xcconfigfs"
	"github.com/intrale/brandkit/internal/infra/yamlenv"
	"github.com/intrale/brandkit/internal/usecase"
)

func xcconfigCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "xcconfig",
		Short: "Generate the branding xcconfig of the iOS app",
	}

	c.AddCommand(xcconfigGenerateCmd(opts), xcconfigKeysCmd(opts))
	return c
}

func xcconfigGenerateCmd(opts *rootOptions) *cobra.Command {
	var template string
	var output string
	var sets []string
	var env string

	c := &cobra.Command{
		Use:   "generate",
		Short: "Render Branding.xcconfig from its template, the environment and --set overrides",
		Args:  cobra.NoArgs,
	}

	c.RunE = opts.run("xcconfig.generate", func(cmd *cobra.Command, _ []string) error {
		ws, err := loadWorkspaceOrDefaults(opts.workspace)
		if err != nil {
			return err
		}

		lookup := opts.lookup()
		if env != "" {
			envArg, err := resolveEnvironmentArg(ws, env)
			if err != nil {
				return err
			}
			vars, err := yamlenv.NewLoader(ws.root).Load(envArg)
			if err != nil {
				return err
			}
			// The process environment still wins over the brand environment file.
			lookup = envsource.Layered(lookup, envsource.Map(vars))
		}

		store := xcconfigfs.NewStore()
		uc := usecase.NewGenerateXCConfig(store, store,
			usecase.WithBrandingResolver(domain.NewBrandingResolver(domain.WithLookup(lookup))),
			usecase.WithGenerateLogger(logger.L()),
		)

		values, err := uc.Execute(
			cmd.Context(),
			ws.path(firstNonEmpty(template, ws.cfg.Paths.Template)),
			ws.path(firstNonEmpty(output, ws.cfg.Paths.Output)),
			sets,
		)
		if err != nil {
			return err
		}

		printSummary(cmd.OutOrStdout(), values)
		return nil
	})

	c.Flags().StringVar(&template, "template", "", "Template path (defaults to brandkit.paths.template)")
	c.Flags().StringVar(&output, "output", "", "Output path (defaults to brandkit.paths.output)")
	c.Flags().StringArrayVar(&sets, "set", nil, "Override a branding key as KEY=VALUE (repeatable)")
	c.Flags().StringVarP(&env, "env", "e", "", "Brand environment name or YAML path")
	return c
}

func xcconfigKeysCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "keys",
		Short: "List the branding keys recognized in templates and --set",
		Args:  cobra.NoArgs,
	}

	c.RunE = opts.run("xcconfig.keys", func(cmd *cobra.Command, _ []string) error {
		w := cmd.OutOrStdout()
		for _, k := range domain.Keys() {
			if k.Required() {
				fmt.Fprintf(w, "%s (required)\n", k)
				continue
			}
			fmt.Fprintln(w, k.String())
		}
		return nil
	})
	return c
}
