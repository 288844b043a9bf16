package subscription

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	vo "github.com/menuqr-inc/menuqr/internal/domain/subscription/valueobjects"
)

// Subscription is one row of the per-restaurant subscription ledger.
// Plan name and price are snapshotted at creation so later plan edits never
// rewrite billing history.
type Subscription struct {
	id            uint
	restaurantID  uint
	planName      string
	price         decimal.Decimal
	startDate     time.Time
	endDate       time.Time
	status        vo.SubscriptionStatus
	paymentMethod string
	transactionID string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewSubscription creates a new active ledger row covering durationDays
// starting at startDate.
func NewSubscription(restaurantID uint, planName string, price decimal.Decimal,
	startDate time.Time, durationDays int, paymentMethod, transactionID string) (*Subscription, error) {

	if restaurantID == 0 {
		return nil, fmt.Errorf("restaurant ID is required")
	}
	if planName == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if durationDays <= 0 {
		return nil, fmt.Errorf("duration must be positive")
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative")
	}

	now := time.Now().UTC()
	return &Subscription{
		restaurantID:  restaurantID,
		planName:      planName,
		price:         price,
		startDate:     startDate,
		endDate:       startDate.AddDate(0, 0, durationDays),
		status:        vo.StatusActive,
		paymentMethod: paymentMethod,
		transactionID: transactionID,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructSubscription reconstructs a subscription from persistence.
func ReconstructSubscription(id, restaurantID uint, planName string, price decimal.Decimal,
	startDate, endDate time.Time, status vo.SubscriptionStatus,
	paymentMethod, transactionID string, createdAt, updatedAt time.Time) (*Subscription, error) {

	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if restaurantID == 0 {
		return nil, fmt.Errorf("restaurant ID is required")
	}
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}
	if !endDate.After(startDate) {
		return nil, fmt.Errorf("end date must be after start date")
	}

	return &Subscription{
		id:            id,
		restaurantID:  restaurantID,
		planName:      planName,
		price:         price,
		startDate:     startDate,
		endDate:       endDate,
		status:        status,
		paymentMethod: paymentMethod,
		transactionID: transactionID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (s *Subscription) ID() uint {
	return s.id
}

func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	s.id = id
	return nil
}

func (s *Subscription) RestaurantID() uint {
	return s.restaurantID
}

func (s *Subscription) PlanName() string {
	return s.planName
}

func (s *Subscription) Price() decimal.Decimal {
	return s.price
}

func (s *Subscription) StartDate() time.Time {
	return s.startDate
}

func (s *Subscription) EndDate() time.Time {
	return s.endDate
}

func (s *Subscription) Status() vo.SubscriptionStatus {
	return s.status
}

func (s *Subscription) PaymentMethod() string {
	return s.paymentMethod
}

func (s *Subscription) TransactionID() string {
	return s.transactionID
}

func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

// IsUsableAt reports whether this row grants access at instant t.
// A stored "active" status alone is not enough: the end date must still be
// ahead, which keeps access correct between expiry sweeps.
func (s *Subscription) IsUsableAt(t time.Time) bool {
	return s.status == vo.StatusActive && s.endDate.After(t)
}

// Expire transitions the row to expired.
func (s *Subscription) Expire() error {
	if !s.status.CanTransitionTo(vo.StatusExpired) {
		return fmt.Errorf("cannot expire subscription in status %s", s.status)
	}
	s.status = vo.StatusExpired
	s.updatedAt = time.Now().UTC()
	return nil
}

// Activate transitions the row to active. Used when a pending payment
// completes and by the admin extend revival.
func (s *Subscription) Activate() error {
	if s.status == vo.StatusActive {
		return nil
	}
	if !s.status.CanTransitionTo(vo.StatusActive) {
		return fmt.Errorf("cannot activate subscription in status %s", s.status)
	}
	s.status = vo.StatusActive
	s.updatedAt = time.Now().UTC()
	return nil
}

// Extend pushes the end date forward by days from the CURRENT end date,
// never from now, and forces the row back to active. Extending an already
// running subscription must not shorten the remaining period.
func (s *Subscription) Extend(days int) error {
	if days <= 0 {
		return fmt.Errorf("extension days must be positive")
	}

	s.endDate = s.endDate.AddDate(0, 0, days)
	if err := s.Activate(); err != nil {
		return err
	}
	s.updatedAt = time.Now().UTC()
	return nil
}
