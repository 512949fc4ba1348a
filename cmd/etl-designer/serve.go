package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go-etl-designer/internal/api"
	"go-etl-designer/internal/api/handler"
	"go-etl-designer/internal/config"
	"go-etl-designer/internal/session"
	"go-etl-designer/internal/store"
	"go-etl-designer/pkg/router"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		dbPath     string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the designer HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("db") {
				cfg.DBPath = dbPath
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}

			logger := config.NewLogger(cfg)

			// Init DB
			scripts, err := store.Open(cfg.DBPath)
			if err != nil {
				return errors.Wrap(err, "init download history")
			}
			defer scripts.Close()

			r := router.New(logger)
			h := handler.New(session.NewStore(), scripts, cfg, logger)
			api.RegisterRoutes(r, h)

			return r.Start(cfg.Addr)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&dbPath, "db", "", "sqlite DSN for the download history (default: in-memory)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	return cmd
}
