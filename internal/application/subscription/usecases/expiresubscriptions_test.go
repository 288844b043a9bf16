package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/menuqr-inc/menuqr/internal/domain/subscription/valueobjects"
	"github.com/menuqr-inc/menuqr/internal/shared/biztime"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
)

func TestExpireSubscriptions_MarksOverdueRows(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	subRepo := newFakeSubscriptionRepo()

	overdue := mustSubscription(1, 1, "monthly", now.AddDate(0, 0, -45), 30)
	current := mustSubscription(2, 2, "monthly", now.AddDate(0, 0, -5), 30)
	require.NoError(t, subRepo.Create(context.Background(), overdue))
	require.NoError(t, subRepo.Create(context.Background(), current))

	uc := NewExpireSubscriptionsUseCase(subRepo, biztime.FixedClock{T: now}, logger.NewLogger())

	updated, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	assert.Equal(t, vo.StatusExpired, overdue.Status())
	assert.Equal(t, vo.StatusActive, current.Status())
}

func TestExpireSubscriptions_Idempotent(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	subRepo := newFakeSubscriptionRepo()
	require.NoError(t, subRepo.Create(context.Background(),
		mustSubscription(1, 1, "monthly", now.AddDate(0, 0, -45), 30)))

	uc := NewExpireSubscriptionsUseCase(subRepo, biztime.FixedClock{T: now}, logger.NewLogger())

	first, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), second)
}

func TestExpireSubscriptions_BoundaryIsExclusive(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	subRepo := newFakeSubscriptionRepo()

	// End date exactly now: not yet past, the sweep leaves it alone.
	exact := mustSubscription(1, 1, "monthly", now.AddDate(0, 0, -30), 30)
	require.NoError(t, subRepo.Create(context.Background(), exact))

	uc := NewExpireSubscriptionsUseCase(subRepo, biztime.FixedClock{T: now}, logger.NewLogger())

	updated, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)
	assert.Equal(t, vo.StatusActive, exact.Status())

	// The access gate still rejects it: end > now fails at the boundary.
	assert.False(t, exact.IsUsableAt(now))
}
