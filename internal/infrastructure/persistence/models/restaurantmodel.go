package models

import (
	"time"

	"github.com/menuqr-inc/menuqr/internal/shared/constants"
)

type RestaurantModel struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"index;not null"`
	Name       string `gorm:"size:150;not null"`
	Slug       string `gorm:"size:160;uniqueIndex;not null"`
	Logo       string `gorm:"size:500"`
	Address    string `gorm:"size:500"`
	Phone      string `gorm:"size:30"`
	ThemeColor string `gorm:"size:7;default:#3B82F6"`
	QRCodeURL  string `gorm:"size:500"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (RestaurantModel) TableName() string {
	return constants.TableRestaurants
}
