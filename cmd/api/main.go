package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	_ "logidocs/docs"
	"logidocs/internal/config"
	"logidocs/internal/logging"
)

// @title Logistics Document API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "api",
		Short:         "Logistics document management API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newMigrateCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema if it does not exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			logger := logging.New(os.Stdout, logging.LoadLocation(cfg.Timezone), cfg.LogLevel)

			db, err := openDatabase(cmd.Context(), cfg, logger)
			if err != nil {
				logger.Error("failed to connect to database", "error", err)
				return err
			}
			defer db.Close()

			return migrate(cmd.Context(), db, cfg, logger)
		},
	}
}
