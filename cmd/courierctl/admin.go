package main

import (
	"fmt"

	"courier-network/internal/app"
	"courier-network/internal/entities"
	"courier-network/internal/pkg/password"
	"courier-network/internal/pkg/token"
	authService "courier-network/internal/service/auth"
	"courier-network/pkg/logger"

	"github.com/spf13/cobra"
)

func newCreateAdminCmd(e *env) *cobra.Command {
	var registration entities.Registration

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator or promote an existing account",
		Long: `create-admin creates an active account with the admin role.
If an account with the email already exists it is promoted to admin and keeps its password.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			storage, err := app.OpenStorage(cmd.Context(), e.log, e.cfg)
			if err != nil {
				return fmt.Errorf("storage: %w", err)
			}
			defer storage.Close()

			service := authService.New(
				storage.Users,
				password.NewHasher(password.DefaultCost),
				token.NewManager(e.cfg.Auth.JWTSecret, e.cfg.Auth.JWTExpire),
			)

			admin, err := service.CreateAdmin(cmd.Context(), registration)
			if err != nil {
				return fmt.Errorf("create admin: %w", err)
			}

			e.log.Info("admin is ready",
				logger.NewField("id", admin.ID),
				logger.NewField("email", admin.Email),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "admin %s (%s)\n", admin.Email, admin.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&registration.Name, "name", "", "admin display name")
	cmd.Flags().StringVar(&registration.Email, "email", "", "admin email")
	cmd.Flags().StringVar(&registration.Password, "password", "", "admin password, at least 6 characters")
	cmd.Flags().StringVar(&registration.Phone, "phone", "", "admin phone")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
