package cmd

import (
	"context"

	"github.com/bnema/todo/internal/config"
	"github.com/spf13/cobra"
)

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "todo",
		Short:         "todo: a single-list to-do server and client",
		Long:          "todo serves a browser to-do list backed by an in-memory task store, and talks to a running server from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app := wireApp()

	rootCmd.PersistentFlags().StringVar(&app.configFile, "config", "", "Config file (default $HOME/.config/todo/config.toml or ./config.toml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	_ = app.v.BindPFlag(config.LogLevelKey, rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(app),
		newTasksCmd(app),
	)

	return rootCmd
}
