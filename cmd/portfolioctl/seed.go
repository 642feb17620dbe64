package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ignatzorin/portfolio-backend/internal/app"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

func newSeedCmd() *cobra.Command {
	var (
		file   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Наполнить сайт содержимым из YAML файла",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			defer f.Close()

			seed, err := service.ParseSeed(f)
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "файл корректен: категорий %d, навыков %d, проектов %d\n",
					len(seed.Categories), len(seed.Skills), len(seed.Projects))
				return nil
			}

			cfg, conn, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB(cmd, conn)

			services, err := app.NewServices(cmd.Context(), conn, cfg, nil, nil)
			if err != nil {
				return err
			}
			report, err := services.Seed.Apply(cmd.Context(), seed)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.String())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "seed.yaml", "путь к seed файлу")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "только проверить файл, не записывая в базу")
	return cmd
}
