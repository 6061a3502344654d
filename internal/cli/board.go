package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/intrale/brandkit/internal/domain"
	"github.com/intrale/brandkit/internal/infra/githubgql"
	"github.com/intrale/brandkit/internal/infra/httpclient"
	"github.com/intrale/brandkit/internal/infra/logger"
	"github.com/intrale/brandkit/internal/infra/settings"
	"github.com/intrale/brandkit/internal/ui/tui"
	"github.com/intrale/brandkit/internal/usecase"
)

func boardCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "board",
		Short: "Query the project board",
	}

	c.AddCommand(boardTodoCmd(opts))
	return c
}

func boardTodoCmd(opts *rootOptions) *cobra.Command {
	var flags domain.BoardConfig
	var format string
	var interactive bool

	c := &cobra.Command{
		Use:   "todo",
		Short: "List the issues in the Todo column of the project board",
		Args:  cobra.NoArgs,
	}

	c.RunE = opts.run("board.todo", func(cmd *cobra.Command, _ []string) error {
		if format != "pretty" && format != "json" {
			return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
		}
		if interactive && format == "json" {
			return errors.New("--interactive cannot be combined with --format json")
		}

		ws, err := loadWorkspaceOrDefaults(opts.workspace)
		if err != nil {
			return err
		}

		cfg, err := settings.NewBuilder().
			WithFlags(domain.Config{Board: flags}).
			WithEnv(opts.environ).
			WithFile(ws.cfg).
			Build()
		if err != nil {
			return err
		}

		client, err := githubgql.New(githubgql.Config{
			Endpoint:  cfg.Board.APIURL,
			Token:     cfg.Board.Token,
			ProjectID: cfg.Board.ProjectID,
			PageSize:  cfg.Board.PageSize,
			HTTP:      httpclient.DefaultConfig(),
		}, githubgql.WithLogger(logger.L()))
		if err != nil {
			return err
		}

		uc := usecase.NewListTodo(client, usecase.WithListLogger(logger.L()))
		out := cmd.OutOrStdout()

		if interactive {
			issue, ok, err := tui.Run(tui.Deps{
				Ctx:    cmd.Context(),
				Issues: uc,
				Filter: cfg.Board.Filter(),
				Logger: logger.L(),
				Debug:  opts.debug,
			})
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintln(out, issue.URL)
			}
			return nil
		}

		issues, err := uc.Execute(cmd.Context(), cfg.Board.Filter())
		if err != nil {
			return err
		}

		if format == "json" {
			return printIssuesJSON(out, issues)
		}
		printIssues(out, issues)
		return nil
	})

	c.Flags().StringVar(&flags.ProjectID, "project", "", "ProjectV2 node id (env INTRALE_PROJECT_ID)")
	c.Flags().StringVar(&flags.StatusFieldID, "status-field", "", "Status field id (env INTRALE_STATUS_FIELD_ID)")
	c.Flags().StringVar(&flags.TodoOptionID, "option", "", "Status option id treated as Todo (env INTRALE_STATUS_TODO)")
	c.Flags().IntVar(&flags.PageSize, "page-size", 0, "Items per GraphQL page, 1-100 (env BRANDKIT_PAGE_SIZE)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse the issues in a terminal UI")
	return c
}
