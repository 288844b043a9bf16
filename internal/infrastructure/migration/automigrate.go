package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/menuqr-inc/menuqr/internal/infrastructure/persistence/models"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
)

type AutoMigrateStrategy struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAutoMigrateStrategy(db *gorm.DB, log logger.Interface) *AutoMigrateStrategy {
	return &AutoMigrateStrategy{db: db, logger: log}
}

func (s *AutoMigrateStrategy) Name() string {
	return "auto"
}

func (s *AutoMigrateStrategy) Migrate() error {
	s.logger.Infow("running gorm auto migration")

	err := s.db.AutoMigrate(
		&models.UserModel{},
		&models.RestaurantModel{},
		&models.CategoryModel{},
		&models.MenuItemModel{},
		&models.SubscriptionPlanModel{},
		&models.SubscriptionModel{},
	)
	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	s.logger.Infow("auto migration completed")
	return nil
}
