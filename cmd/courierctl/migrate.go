package main

import (
	"errors"
	"fmt"

	"courier-network/internal/pkg/config"
	"courier-network/internal/pkg/postgres"

	"github.com/spf13/cobra"
)

var errMigrateMongo = errors.New("migrations apply to postgres only, mongo indexes are created on startup")

func newMigrateCmd(e *env) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage embedded Postgres migrations",
	}

	for _, command := range []postgres.MigrateCommand{postgres.MigrateUp, postgres.MigrateDown, postgres.MigrateStatus} {
		migrateCmd.AddCommand(&cobra.Command{
			Use:   string(command),
			Short: fmt.Sprintf("Run goose %s", command),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if e.cfg.StorageDriver != config.DriverPostgres {
					return errMigrateMongo
				}

				pool, err := postgres.NewConnPool(cmd.Context(), e.log, &e.cfg.Database)
				if err != nil {
					return fmt.Errorf("database: %w", err)
				}
				defer pool.Close()

				return postgres.Migrate(cmd.Context(), e.log, pool, command)
			},
		})
	}

	return migrateCmd
}
