package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/menuqr-inc/menuqr/internal/shared/constants"
)

type SubscriptionPlanModel struct {
	ID           uint            `gorm:"primaryKey"`
	Name         string          `gorm:"size:100;uniqueIndex;not null"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DurationDays int             `gorm:"not null"`
	Features     datatypes.JSON
	IsActive     bool   `gorm:"default:true;index"`
	BadgeText    string `gorm:"size:50"`
	BadgeColor   string `gorm:"size:20;default:green"`
	BadgeEnabled bool   `gorm:"default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (SubscriptionPlanModel) TableName() string {
	return constants.TableSubscriptionPlans
}

// SubscriptionModel is one ledger row. PlanName and Price are snapshots
// taken at creation time.
type SubscriptionModel struct {
	ID            uint            `gorm:"primaryKey"`
	RestaurantID  uint            `gorm:"index;not null"`
	PlanName      string          `gorm:"size:100;not null"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StartDate     time.Time       `gorm:"not null"`
	EndDate       time.Time       `gorm:"not null;index"`
	Status        string          `gorm:"size:20;not null;index"`
	PaymentMethod string          `gorm:"size:30"`
	TransactionID string          `gorm:"size:100"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
