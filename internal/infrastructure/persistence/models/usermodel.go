// Package models contains gorm persistence models. They never leak outside
// the infrastructure layer; mappers convert them to domain aggregates.
package models

import (
	"time"

	"github.com/menuqr-inc/menuqr/internal/shared/constants"
)

type UserModel struct {
	ID            uint    `gorm:"primaryKey"`
	Name          string  `gorm:"size:100;not null"`
	Email         string  `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash  string  `gorm:"size:255;not null"`
	Role          string  `gorm:"size:20;not null;default:restaurant"`
	ResetToken    *string `gorm:"size:64"`
	ResetTokenExp *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
