package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ignatzorin/portfolio-backend/internal/db"
)

func newMigrateCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Применить SQL миграции",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, conn, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB(cmd, conn)

			if dir == "" {
				dir = cfg.MigrationsPath
			}
			applied, err := db.RunMigrations(cmd.Context(), conn, dir)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "новых миграций нет")
				return nil
			}
			for _, name := range applied {
				fmt.Fprintln(cmd.OutOrStdout(), "applied", name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "каталог миграций (по умолчанию MIGRATIONS_PATH)")
	return cmd
}
