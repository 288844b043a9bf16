package subscription

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/menuqr-inc/menuqr/internal/domain/subscription/valueobjects"
)

func TestNewSubscription(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	sub, err := NewSubscription(1, "monthly", decimal.NewFromInt(499), start, 30, "razorpay", "pay_123")
	require.NoError(t, err)

	assert.Equal(t, uint(1), sub.RestaurantID())
	assert.Equal(t, "monthly", sub.PlanName())
	assert.Equal(t, vo.StatusActive, sub.Status())
	assert.Equal(t, start, sub.StartDate())
	assert.Equal(t, start.AddDate(0, 0, 30), sub.EndDate())
	assert.Equal(t, "razorpay", sub.PaymentMethod())
	assert.Equal(t, "pay_123", sub.TransactionID())
}

func TestNewSubscription_Validation(t *testing.T) {
	start := time.Now().UTC()

	tests := []struct {
		name         string
		restaurantID uint
		planName     string
		price        decimal.Decimal
		durationDays int
	}{
		{"missing restaurant", 0, "monthly", decimal.NewFromInt(499), 30},
		{"missing plan name", 1, "", decimal.NewFromInt(499), 30},
		{"zero duration", 1, "monthly", decimal.NewFromInt(499), 0},
		{"negative price", 1, "monthly", decimal.NewFromInt(-1), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSubscription(tt.restaurantID, tt.planName, tt.price, start, tt.durationDays, "manual", "")
			assert.Error(t, err)
		})
	}
}

func TestSubscription_IsUsableAt(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30)

	sub, err := ReconstructSubscription(1, 1, "monthly", decimal.NewFromInt(499),
		start, end, vo.StatusActive, "razorpay", "pay_1", start, start)
	require.NoError(t, err)

	assert.True(t, sub.IsUsableAt(end.Add(-time.Hour)))
	// Stored status still says active but the end date has passed.
	assert.False(t, sub.IsUsableAt(end))
	assert.False(t, sub.IsUsableAt(end.Add(time.Hour)))

	expired, err := ReconstructSubscription(2, 1, "monthly", decimal.NewFromInt(499),
		start, end, vo.StatusExpired, "razorpay", "pay_2", start, start)
	require.NoError(t, err)
	assert.False(t, expired.IsUsableAt(start.Add(time.Hour)))
}

func TestSubscription_Extend(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30)

	sub, err := ReconstructSubscription(1, 1, "monthly", decimal.NewFromInt(499),
		start, end, vo.StatusExpired, "razorpay", "pay_1", start, start)
	require.NoError(t, err)

	require.NoError(t, sub.Extend(15))

	// Extension anchors on the previous end date, not on now.
	assert.Equal(t, end.AddDate(0, 0, 15), sub.EndDate())
	assert.Equal(t, vo.StatusActive, sub.Status())
}

func TestSubscription_ExtendActiveKeepsRemainingPeriod(t *testing.T) {
	start := time.Now().UTC()
	end := start.AddDate(0, 0, 20)

	sub, err := ReconstructSubscription(1, 1, "monthly", decimal.NewFromInt(499),
		start, end, vo.StatusActive, "razorpay", "pay_1", start, start)
	require.NoError(t, err)

	require.NoError(t, sub.Extend(10))
	assert.Equal(t, end.AddDate(0, 0, 10), sub.EndDate())
}

func TestSubscription_ExtendRejectsNonPositiveDays(t *testing.T) {
	sub, err := NewSubscription(1, "monthly", decimal.NewFromInt(499), time.Now().UTC(), 30, "manual", "")
	require.NoError(t, err)

	assert.Error(t, sub.Extend(0))
	assert.Error(t, sub.Extend(-5))
}

func TestSubscription_Expire(t *testing.T) {
	sub, err := NewSubscription(1, "monthly", decimal.NewFromInt(499), time.Now().UTC(), 30, "manual", "")
	require.NoError(t, err)

	require.NoError(t, sub.Expire())
	assert.Equal(t, vo.StatusExpired, sub.Status())

	// Expired rows cannot be expired again.
	assert.Error(t, sub.Expire())
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, vo.StatusPending.CanTransitionTo(vo.StatusActive))
	assert.True(t, vo.StatusPending.CanTransitionTo(vo.StatusExpired))
	assert.True(t, vo.StatusActive.CanTransitionTo(vo.StatusExpired))
	assert.True(t, vo.StatusExpired.CanTransitionTo(vo.StatusActive))

	assert.False(t, vo.StatusActive.CanTransitionTo(vo.StatusPending))
	assert.False(t, vo.StatusExpired.CanTransitionTo(vo.StatusPending))
}
