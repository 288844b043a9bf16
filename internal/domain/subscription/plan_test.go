package subscription

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlan(t *testing.T) {
	plan, err := NewPlan("monthly", decimal.RequireFromString("499.00"), 30, []string{"Unlimited menu items"})
	require.NoError(t, err)

	assert.Equal(t, "monthly", plan.Name())
	assert.Equal(t, 30, plan.DurationDays())
	assert.True(t, plan.IsActive())
	assert.Equal(t, []string{"Unlimited menu items"}, plan.Features())
}

func TestNewPlan_Validation(t *testing.T) {
	tests := []struct {
		name         string
		planName     string
		price        decimal.Decimal
		durationDays int
	}{
		{"empty name", "", decimal.NewFromInt(499), 30},
		{"negative price", "monthly", decimal.NewFromInt(-1), 30},
		{"zero duration", "monthly", decimal.NewFromInt(499), 0},
		{"negative duration", "monthly", decimal.NewFromInt(499), -7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlan(tt.planName, tt.price, tt.durationDays, nil)
			assert.Error(t, err)
		})
	}
}

func TestPlan_ZeroPriceAllowed(t *testing.T) {
	plan, err := NewPlan("Free", decimal.Zero, 30, nil)
	require.NoError(t, err)
	assert.True(t, plan.Price().IsZero())
}

func TestPlan_UpdateBadge(t *testing.T) {
	plan, err := NewPlan("yearly", decimal.NewFromInt(4999), 365, nil)
	require.NoError(t, err)

	err = plan.UpdateBadge(Badge{Text: "Best value", Color: BadgeColorPurple, Enabled: true})
	require.NoError(t, err)
	assert.Equal(t, "Best value", plan.Badge().Text)

	assert.Error(t, plan.UpdateBadge(Badge{Text: "x", Color: "magenta", Enabled: true}))
	assert.Error(t, plan.UpdateBadge(Badge{Text: "", Color: BadgeColorRed, Enabled: true}))
}

func TestPlan_Deactivate(t *testing.T) {
	plan, err := NewPlan("monthly", decimal.NewFromInt(499), 30, nil)
	require.NoError(t, err)

	plan.Deactivate()
	assert.False(t, plan.IsActive())
	plan.Activate()
	assert.True(t, plan.IsActive())
}
