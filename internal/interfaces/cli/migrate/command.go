// Package migrate implements the "menuqr migrate" command.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/menuqr-inc/menuqr/internal/infrastructure/config"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/database"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/migration"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
)

var configPath string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply database schema migrations using the configured strategy.`,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newUpCommand())

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	gormDB, err := database.Connect(cfg.Database, false)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	strategy, err := migration.NewStrategy(cfg.Database, gormDB, log)
	if err != nil {
		return fmt.Errorf("failed to select migration strategy: %w", err)
	}

	log.Infow("running migrations", "strategy", strategy.Name())
	if err := strategy.Migrate(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations applied")
	return nil
}
