package subscription

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BadgeColor is the palette allowed for promotional plan badges.
type BadgeColor string

const (
	BadgeColorRed    BadgeColor = "red"
	BadgeColorGreen  BadgeColor = "green"
	BadgeColorBlue   BadgeColor = "blue"
	BadgeColorPurple BadgeColor = "purple"
	BadgeColorOrange BadgeColor = "orange"
	BadgeColorPink   BadgeColor = "pink"
)

var validBadgeColors = map[BadgeColor]bool{
	BadgeColorRed:    true,
	BadgeColorGreen:  true,
	BadgeColorBlue:   true,
	BadgeColorPurple: true,
	BadgeColorOrange: true,
	BadgeColorPink:   true,
}

func (c BadgeColor) IsValid() bool {
	return validBadgeColors[c]
}

// Badge is the optional promotional label shown next to a plan.
type Badge struct {
	Text    string
	Color   BadgeColor
	Enabled bool
}

// Plan represents a subscription plan. Plans are never hard-deleted;
// retiring one toggles the active flag so existing ledger snapshots
// keep referring to a real plan name.
type Plan struct {
	id           uint
	name         string
	price        decimal.Decimal
	durationDays int
	features     []string
	isActive     bool
	badge        Badge
	createdAt    time.Time
	updatedAt    time.Time
}

func NewPlan(name string, price decimal.Decimal, durationDays int, features []string) (*Plan, error) {
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("plan name too long (max 100 characters)")
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("plan price cannot be negative")
	}
	if durationDays <= 0 {
		return nil, fmt.Errorf("plan duration must be positive")
	}

	if features == nil {
		features = []string{}
	}

	now := time.Now().UTC()
	return &Plan{
		name:         name,
		price:        price,
		durationDays: durationDays,
		features:     features,
		isActive:     true,
		badge:        Badge{Color: BadgeColorGreen},
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructPlan(id uint, name string, price decimal.Decimal, durationDays int,
	features []string, isActive bool, badge Badge, createdAt, updatedAt time.Time) (*Plan, error) {

	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if durationDays <= 0 {
		return nil, fmt.Errorf("plan duration must be positive")
	}
	if badge.Color != "" && !badge.Color.IsValid() {
		return nil, fmt.Errorf("invalid badge color: %s", badge.Color)
	}

	if features == nil {
		features = []string{}
	}

	return &Plan{
		id:           id,
		name:         name,
		price:        price,
		durationDays: durationDays,
		features:     features,
		isActive:     isActive,
		badge:        badge,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (p *Plan) ID() uint {
	return p.id
}

func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	p.id = id
	return nil
}

func (p *Plan) Name() string {
	return p.name
}

func (p *Plan) Price() decimal.Decimal {
	return p.price
}

func (p *Plan) DurationDays() int {
	return p.durationDays
}

func (p *Plan) Features() []string {
	return p.features
}

func (p *Plan) IsActive() bool {
	return p.isActive
}

func (p *Plan) Badge() Badge {
	return p.badge
}

func (p *Plan) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Plan) UpdatedAt() time.Time {
	return p.updatedAt
}

// UpdateDetails replaces the mutable plan attributes.
func (p *Plan) UpdateDetails(name string, price decimal.Decimal, durationDays int, features []string) error {
	if name == "" {
		return fmt.Errorf("plan name is required")
	}
	if price.IsNegative() {
		return fmt.Errorf("plan price cannot be negative")
	}
	if durationDays <= 0 {
		return fmt.Errorf("plan duration must be positive")
	}

	if features == nil {
		features = []string{}
	}

	p.name = name
	p.price = price
	p.durationDays = durationDays
	p.features = features
	p.updatedAt = time.Now().UTC()
	return nil
}

// UpdateBadge replaces the promotional badge.
func (p *Plan) UpdateBadge(badge Badge) error {
	if badge.Enabled && badge.Text == "" {
		return fmt.Errorf("badge text is required when badge is enabled")
	}
	if badge.Color != "" && !badge.Color.IsValid() {
		return fmt.Errorf("invalid badge color: %s", badge.Color)
	}

	p.badge = badge
	p.updatedAt = time.Now().UTC()
	return nil
}

func (p *Plan) Activate() {
	p.isActive = true
	p.updatedAt = time.Now().UTC()
}

func (p *Plan) Deactivate() {
	p.isActive = false
	p.updatedAt = time.Now().UTC()
}
