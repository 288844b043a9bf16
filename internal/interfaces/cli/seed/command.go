// Package seed implements the "menuqr seed" command.
package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/menuqr-inc/menuqr/internal/infrastructure/auth"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/config"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/database"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/repository"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/seed"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
)

var (
	configPath    string
	adminName     string
	adminEmail    string
	adminPassword string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed default data",
		Long:  `Insert the default subscription plans and optionally the first admin account.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVar(&adminName, "admin-name", "", "Name for the initial admin account")
	cmd.Flags().StringVar(&adminEmail, "admin-email", "", "Email for the initial admin account")
	cmd.Flags().StringVar(&adminPassword, "admin-password", "", "Password for the initial admin account")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
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

	planRepo := repository.NewPlanRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	hasher := auth.NewBcryptPasswordHasher(0)

	seeder := seed.NewSeeder(planRepo, userRepo, hasher, log)

	ctx := context.Background()
	if err := seeder.SeedPlans(ctx); err != nil {
		return fmt.Errorf("failed to seed plans: %w", err)
	}

	if adminEmail != "" {
		if adminName == "" || adminPassword == "" {
			return fmt.Errorf("--admin-name and --admin-password are required with --admin-email")
		}
		if err := seeder.SeedAdmin(ctx, adminName, adminEmail, adminPassword); err != nil {
			return fmt.Errorf("failed to seed admin: %w", err)
		}
	}

	log.Infow("seeding complete")
	return nil
}
