package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/ignatzorin/portfolio-backend/internal/config"
	"github.com/ignatzorin/portfolio-backend/internal/db"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
)

var flagVerbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolioctl",
		Short:         "Служебные команды сервера портфолио",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if flagVerbose {
				level = "debug"
			}
			logger.Setup("development", level)
		},
	}
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "подробный лог")

	root.AddCommand(newMigrateCmd())
	root.AddCommand(newAdminCmd())
	root.AddCommand(newSeedCmd())
	return root
}

// connect читает конфигурацию и открывает базу.
func connect(ctx context.Context) (*config.Config, *sqlx.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	conn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return cfg, conn, nil
}

func closeDB(cmd *cobra.Command, conn *sqlx.DB) {
	if err := conn.Close(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "close db:", err)
	}
}
