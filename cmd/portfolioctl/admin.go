package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ignatzorin/portfolio-backend/internal/app"
)

func newAdminCmd() *cobra.Command {
	admin := &cobra.Command{
		Use:   "admin",
		Short: "Управление учётной записью администратора",
	}
	admin.AddCommand(newAdminCreateCmd())
	return admin
}

func newAdminCreateCmd() *cobra.Command {
	var (
		email    string
		name     string
		password string
		reset    bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать администратора или сменить ему пароль (--reset)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, conn, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB(cmd, conn)

			services, err := app.NewServices(cmd.Context(), conn, cfg, nil, nil)
			if err != nil {
				return err
			}
			user, err := services.Auth.CreateAdmin(cmd.Context(), email, name, password, reset)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "admin %s (id %d) готов\n", user.Email, user.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email администратора")
	cmd.Flags().StringVar(&name, "name", "", "отображаемое имя")
	cmd.Flags().StringVar(&password, "password", "", "пароль")
	cmd.Flags().BoolVar(&reset, "reset", false, "сменить пароль существующего администратора")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
