package cmd

import (
	"context"
	"fmt"
	"strings"

	tasksrender "github.com/bnema/todo/internal/adapters/render/tasks"
	"github.com/bnema/todo/internal/config"
	"github.com/bnema/todo/internal/domain"
	"github.com/spf13/cobra"
)

func newTasksCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List and add tasks on a running server",
	}

	cmd.PersistentFlags().String("server", "", "Server base URL (default http://localhost:3000)")
	_ = app.v.BindPFlag(config.ClientBaseURLKey, cmd.PersistentFlags().Lookup("server"))

	cmd.AddCommand(
		newTasksListCmd(app),
		newTasksAddCmd(app),
	)

	return cmd
}

func newTasksListCmd(app *app) *cobra.Command {
	var output string
	var plain bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show every task in submission order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := tasksrender.ParseFormat(output)
			if err != nil {
				return err
			}

			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}
			client := app.taskClient(cfg)

			fetch := func(ctx context.Context) (taskResult, error) {
				tasks, err := client.List(ctx)
				return taskResult{tasks: tasks}, err
			}

			var result taskResult
			if format == tasksrender.FormatText && !plain {
				result, err = runWithProgress(cmd.Context(), cmd.ErrOrStderr(), "Fetching tasks...", fetch)
			} else {
				result, err = fetch(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("fetch tasks: %w", err)
			}
			tasks := result.tasks

			if format != tasksrender.FormatText {
				return tasksrender.Encode(cmd.OutOrStdout(), tasks, format)
			}

			rendered, err := app.taskRenderer(tasks, tasksrender.RenderOptions{Plain: plain})
			if err != nil {
				return fmt.Errorf("render tasks: %w", err)
			}
			if rendered == "" {
				return nil
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(tasksrender.FormatText), "Output format: text, json or toml")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print one task per line without decoration")

	return cmd
}

func newTasksAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <task...>",
		Short: "Append a task to the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := strings.TrimSpace(strings.Join(args, " "))
			if content == "" {
				return domain.ErrTaskContentRequired
			}

			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}

			client := app.taskClient(cfg)
			result, err := runWithProgress(cmd.Context(), cmd.ErrOrStderr(), "Adding task...", func(ctx context.Context) (taskResult, error) {
				message, err := client.Add(ctx, content)
				return taskResult{message: message}, err
			})
			if err != nil {
				return fmt.Errorf("add task: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), result.message)
			return err
		},
	}
}
