// Package migration applies database schema changes. Two strategies exist:
// gorm AutoMigrate for development and versioned SQL scripts for production.
package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/menuqr-inc/menuqr/internal/infrastructure/config"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
)

type Strategy interface {
	Name() string
	Migrate() error
}

// NewStrategy selects the migration strategy from configuration.
func NewStrategy(cfg config.DatabaseConfig, database *gorm.DB, log logger.Interface) (Strategy, error) {
	switch cfg.MigrationStrategy {
	case "auto", "":
		return NewAutoMigrateStrategy(database, log), nil
	case "script":
		return NewScriptStrategy(cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown migration strategy: %s", cfg.MigrationStrategy)
	}
}
