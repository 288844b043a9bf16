package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/menuqr-inc/menuqr/internal/shared/constants"
)

type CategoryModel struct {
	ID           uint   `gorm:"primaryKey"`
	RestaurantID uint   `gorm:"index;not null"`
	Name         string `gorm:"size:100;not null"`
	SortOrder    int    `gorm:"default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (CategoryModel) TableName() string {
	return constants.TableCategories
}

type MenuItemModel struct {
	ID          uint            `gorm:"primaryKey"`
	CategoryID  uint            `gorm:"index;not null"`
	Name        string          `gorm:"size:150;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Images      datatypes.JSON
	Available   bool `gorm:"default:true"`
	IsVeg       bool `gorm:"default:false"`
	SortOrder   int  `gorm:"default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (MenuItemModel) TableName() string {
	return constants.TableMenuItems
}
