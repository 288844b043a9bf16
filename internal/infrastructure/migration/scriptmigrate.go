package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/menuqr-inc/menuqr/internal/infrastructure/config"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
)

type ScriptStrategy struct {
	cfg    config.DatabaseConfig
	logger logger.Interface
}

func NewScriptStrategy(cfg config.DatabaseConfig, log logger.Interface) *ScriptStrategy {
	return &ScriptStrategy{cfg: cfg, logger: log}
}

func (s *ScriptStrategy) Name() string {
	return "script"
}

func (s *ScriptStrategy) Migrate() error {
	sourceURL := fmt.Sprintf("file://%s", s.cfg.MigrationPath)
	databaseURL := fmt.Sprintf("mysql://%s", s.cfg.DSN())

	s.logger.Infow("running script migration", "path", s.cfg.MigrationPath)

	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			s.logger.Infow("database schema already up to date")
			return nil
		}
		return fmt.Errorf("script migration failed: %w", err)
	}

	s.logger.Infow("script migration completed")
	return nil
}
