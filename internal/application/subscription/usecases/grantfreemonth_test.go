package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/menuqr-inc/menuqr/internal/domain/subscription/valueobjects"
	"github.com/menuqr-inc/menuqr/internal/shared/biztime"
	"github.com/menuqr-inc/menuqr/internal/shared/constants"
	"github.com/menuqr-inc/menuqr/internal/shared/errors"
	"github.com/menuqr-inc/menuqr/internal/shared/lock"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
)

func newGrantFixture(subRepo *fakeSubscriptionRepo, planRepo *fakePlanRepo,
	restRepo *fakeRestaurantRepo, now time.Time) *GrantFreeMonthUseCase {

	return NewGrantFreeMonthUseCase(subRepo, planRepo, restRepo, &fakeTxManager{},
		lock.NewKeyedMutex(), biztime.FixedClock{T: now}, logger.NewLogger())
}

func TestGrantFreeMonth_EmptyLedger(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	subRepo := newFakeSubscriptionRepo()
	planRepo := newFakePlanRepo(mustPlan(3, constants.FreePlanName, "0.00", 30))
	restRepo := newFakeRestaurantRepo(mustRestaurant(7, 1, "Spice Garden", "spice-garden"))

	uc := newGrantFixture(subRepo, planRepo, restRepo, now)

	result, err := uc.Execute(context.Background(), GrantFreeMonthCommand{RestaurantID: 7})
	require.NoError(t, err)

	require.Len(t, subRepo.subs, 1)
	assert.Equal(t, constants.FreePlanName, result.PlanName)
	assert.Equal(t, "0.00", result.Price)
	assert.Equal(t, constants.PaymentMethodManual, result.PaymentMethod)
	assert.Empty(t, result.TransactionID)
	assert.Equal(t, now, result.StartDate)
	assert.Equal(t, now.AddDate(0, 0, 30), result.EndDate)
	assert.Equal(t, vo.StatusActive.String(), result.Status)
}

func TestGrantFreeMonth_ExpiresExistingActiveRow(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	subRepo := newFakeSubscriptionRepo()
	existing := mustSubscription(1, 7, "monthly", now.AddDate(0, 0, -5), 30)
	require.NoError(t, subRepo.Create(context.Background(), existing))
	subRepo.ops = nil

	planRepo := newFakePlanRepo(mustPlan(3, constants.FreePlanName, "0.00", 30))
	restRepo := newFakeRestaurantRepo(mustRestaurant(7, 1, "Spice Garden", "spice-garden"))

	uc := newGrantFixture(subRepo, planRepo, restRepo, now)

	_, err := uc.Execute(context.Background(), GrantFreeMonthCommand{RestaurantID: 7})
	require.NoError(t, err)

	assert.Equal(t, []string{"expire_active", "create"}, subRepo.ops)
	assert.Equal(t, vo.StatusExpired, existing.Status())

	count, err := subRepo.CountActiveAt(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGrantFreeMonth_MissingFreePlan(t *testing.T) {
	now := time.Now().UTC()
	restRepo := newFakeRestaurantRepo(mustRestaurant(7, 1, "Spice Garden", "spice-garden"))

	uc := newGrantFixture(newFakeSubscriptionRepo(), newFakePlanRepo(), restRepo, now)

	_, err := uc.Execute(context.Background(), GrantFreeMonthCommand{RestaurantID: 7})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGrantFreeMonth_UnknownRestaurant(t *testing.T) {
	now := time.Now().UTC()
	planRepo := newFakePlanRepo(mustPlan(3, constants.FreePlanName, "0.00", 30))

	uc := newGrantFixture(newFakeSubscriptionRepo(), planRepo, newFakeRestaurantRepo(), now)

	_, err := uc.Execute(context.Background(), GrantFreeMonthCommand{RestaurantID: 99})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
