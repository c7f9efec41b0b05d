package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"courier-network/internal/pkg/config"
	"courier-network/internal/pkg/dotenv"
	"courier-network/pkg/logger"
	"courier-network/pkg/logger/zap_adapter"

	"github.com/spf13/cobra"
)

// env общее окружение подкоманд, заполняется в PersistentPreRunE.
type env struct {
	log logger.Logger
	cfg *config.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	e := &env{}
	var envFile string

	rootCmd := &cobra.Command{
		Use:           "courierctl",
		Short:         "Administrative tasks for the courier network backend",
		Long:          `courierctl applies database migrations and bootstraps administrator accounts using the same environment as the HTTP service.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}
			if err := dotenv.LoadFile(files...); err != nil {
				return err
			}

			zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
			if err != nil {
				stdlog.Printf("failed to initialize logger: %v", err)
				return err
			}
			e.log = zapLogger

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			e.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file to load (default is .env when present)")

	rootCmd.AddCommand(newMigrateCmd(e))
	rootCmd.AddCommand(newCreateAdminCmd(e))

	return rootCmd
}
