package cmd

import (
	"github.com/bnema/todo/internal/adapters/repo/memory"
	"github.com/bnema/todo/internal/adapters/transport/httpserver"
	"github.com/bnema/todo/internal/application"
	"github.com/bnema/todo/internal/config"
	"github.com/spf13/cobra"
)

func newServeCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the to-do HTTP server",
		Long:  "Serve GET/POST /tasks from an in-memory list and static files from the static directory. Tasks are lost when the process exits.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}

			logger, err := config.NewLogger(cmd.ErrOrStderr(), cfg.Log)
			if err != nil {
				return err
			}

			service := application.NewService(memory.NewRepository())
			server := httpserver.New(service, httpserver.Options{
				Addr:            cfg.Server.Addr,
				StaticDir:       cfg.Server.StaticDir,
				ShutdownTimeout: cfg.Server.ShutdownTimeout,
				CORSOrigins:     cfg.Server.CORSOrigins,
			}, logger)

			return server.Run(cmd.Context())
		},
	}

	cmd.Flags().String("addr", "", "Listen address (default :3000)")
	cmd.Flags().String("static-dir", "", "Directory served for non-API paths (default: working directory)")
	_ = app.v.BindPFlag(config.ServerAddrKey, cmd.Flags().Lookup("addr"))
	_ = app.v.BindPFlag(config.ServerStaticDirKey, cmd.Flags().Lookup("static-dir"))

	return cmd
}
