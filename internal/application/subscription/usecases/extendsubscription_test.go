package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/menuqr-inc/menuqr/internal/domain/subscription/valueobjects"
	"github.com/menuqr-inc/menuqr/internal/shared/biztime"
	"github.com/menuqr-inc/menuqr/internal/shared/errors"
	"github.com/menuqr-inc/menuqr/internal/shared/lock"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
)

func TestExtendSubscription_AddsDaysToCurrentEnd(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	subRepo := newFakeSubscriptionRepo()
	sub := mustSubscription(1, 7, "monthly", start, 30)
	require.NoError(t, subRepo.Create(context.Background(), sub))

	restRepo := newFakeRestaurantRepo(mustRestaurant(7, 1, "Spice Garden", "spice-garden"))
	uc := NewExtendSubscriptionUseCase(subRepo, restRepo, lock.NewKeyedMutex(), logger.NewLogger())

	oldEnd := sub.EndDate()
	result, err := uc.Execute(context.Background(), ExtendSubscriptionCommand{RestaurantID: 7, Days: 15})
	require.NoError(t, err)

	assert.Equal(t, oldEnd.AddDate(0, 0, 15), result.EndDate)
	assert.Equal(t, vo.StatusActive.String(), result.Status)
}

func TestExtendSubscription_RevivesExpiredRow(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	subRepo := newFakeSubscriptionRepo()
	sub := mustSubscription(1, 7, "monthly", start, 30)
	require.NoError(t, sub.Expire())
	require.NoError(t, subRepo.Create(context.Background(), sub))

	restRepo := newFakeRestaurantRepo(mustRestaurant(7, 1, "Spice Garden", "spice-garden"))
	uc := NewExtendSubscriptionUseCase(subRepo, restRepo, lock.NewKeyedMutex(), logger.NewLogger())

	result, err := uc.Execute(context.Background(), ExtendSubscriptionCommand{RestaurantID: 7, Days: 30})
	require.NoError(t, err)

	assert.Equal(t, vo.StatusActive.String(), result.Status)
	assert.Equal(t, start.AddDate(0, 0, 60), result.EndDate)
}

func TestExtendSubscription_PicksLatestRow(t *testing.T) {
	subRepo := newFakeSubscriptionRepo()
	older := mustSubscription(1, 7, "monthly", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 30)
	newer := mustSubscription(2, 7, "monthly", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), 30)
	require.NoError(t, subRepo.Create(context.Background(), older))
	require.NoError(t, subRepo.Create(context.Background(), newer))

	restRepo := newFakeRestaurantRepo(mustRestaurant(7, 1, "Spice Garden", "spice-garden"))
	uc := NewExtendSubscriptionUseCase(subRepo, restRepo, lock.NewKeyedMutex(), logger.NewLogger())

	result, err := uc.Execute(context.Background(), ExtendSubscriptionCommand{RestaurantID: 7, Days: 10})
	require.NoError(t, err)
	assert.Equal(t, newer.ID(), result.ID)
}

func TestExtendSubscription_NoLedgerRows(t *testing.T) {
	restRepo := newFakeRestaurantRepo(mustRestaurant(7, 1, "Spice Garden", "spice-garden"))
	uc := NewExtendSubscriptionUseCase(newFakeSubscriptionRepo(), restRepo, lock.NewKeyedMutex(), logger.NewLogger())

	_, err := uc.Execute(context.Background(), ExtendSubscriptionCommand{RestaurantID: 7, Days: 10})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestExtendSubscription_UnknownRestaurant(t *testing.T) {
	uc := NewExtendSubscriptionUseCase(newFakeSubscriptionRepo(), newFakeRestaurantRepo(), lock.NewKeyedMutex(), logger.NewLogger())

	_, err := uc.Execute(context.Background(), ExtendSubscriptionCommand{RestaurantID: 99, Days: 10})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestExtendSubscription_ConcurrentWithPurchaseKeepsOneActive(t *testing.T) {
	now := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	start := now.AddDate(0, 0, -5)

	subRepo := newFakeSubscriptionRepo()
	lapsed := mustSubscription(1, 7, "monthly", start, 30)
	require.NoError(t, lapsed.Expire())
	require.NoError(t, subRepo.Create(context.Background(), lapsed))

	restRepo := newFakeRestaurantRepo(mustRestaurant(7, 1, "Spice Garden", "spice-garden"))
	planRepo := newFakePlanRepo(mustPlan(1, "monthly", "499.00", 30))
	gateway := &fakeGateway{enabled: true, validSig: "good-sig"}

	tenantMu := lock.NewKeyedMutex()
	extendUC := NewExtendSubscriptionUseCase(subRepo, restRepo, tenantMu, logger.NewLogger())
	purchaseUC := NewVerifyPaymentUseCase(subRepo, planRepo, gateway, &fakeTxManager{},
		tenantMu, biztime.FixedClock{T: now}, logger.NewLogger())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := extendUC.Execute(context.Background(), ExtendSubscriptionCommand{RestaurantID: 7, Days: 30})
		assert.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		_, err := purchaseUC.Execute(context.Background(), VerifyPaymentCommand{
			RestaurantID: 7, PlanID: 1, OrderID: "order_1", PaymentID: "pay_1", Signature: "good-sig",
		})
		assert.NoError(t, err)
	}()
	wg.Wait()

	// Whichever order the two writers run in, the tenant ends up with
	// exactly one currently usable row.
	count, err := subRepo.CountActiveAt(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestExtendSubscription_InvalidDays(t *testing.T) {
	restRepo := newFakeRestaurantRepo(mustRestaurant(7, 1, "Spice Garden", "spice-garden"))
	uc := NewExtendSubscriptionUseCase(newFakeSubscriptionRepo(), restRepo, lock.NewKeyedMutex(), logger.NewLogger())

	_, err := uc.Execute(context.Background(), ExtendSubscriptionCommand{RestaurantID: 7, Days: 0})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
