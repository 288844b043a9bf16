package usecases

import (
	"context"
	"fmt"
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

func newVerifyPaymentFixture(subRepo *fakeSubscriptionRepo, planRepo *fakePlanRepo,
	gateway *fakeGateway, now time.Time) (*VerifyPaymentUseCase, *fakeTxManager) {

	tx := &fakeTxManager{}
	uc := NewVerifyPaymentUseCase(subRepo, planRepo, gateway, tx,
		lock.NewKeyedMutex(), biztime.FixedClock{T: now}, logger.NewLogger())
	return uc, tx
}

func TestVerifyPayment_ActivatesSubscription(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	subRepo := newFakeSubscriptionRepo()
	planRepo := newFakePlanRepo(mustPlan(1, "monthly", "499.00", 30))
	gateway := &fakeGateway{enabled: true, validSig: "good-sig"}

	uc, tx := newVerifyPaymentFixture(subRepo, planRepo, gateway, now)

	result, err := uc.Execute(context.Background(), VerifyPaymentCommand{
		RestaurantID: 7,
		PlanID:       1,
		OrderID:      "order_1",
		PaymentID:    "pay_1",
		Signature:    "good-sig",
	})
	require.NoError(t, err)

	assert.Equal(t, "monthly", result.PlanName)
	assert.Equal(t, "499.00", result.Price)
	assert.Equal(t, now, result.StartDate)
	assert.Equal(t, now.AddDate(0, 0, 30), result.EndDate)
	assert.Equal(t, vo.StatusActive.String(), result.Status)
	assert.Equal(t, "pay_1", result.TransactionID)
	assert.Equal(t, 1, tx.calls)
}

func TestVerifyPayment_RenewalExpiresOldRowFirst(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	now := start.AddDate(0, 0, 5)

	subRepo := newFakeSubscriptionRepo()
	old := mustSubscription(100, 7, "monthly", start, 30)
	require.NoError(t, subRepo.Create(context.Background(), old))
	subRepo.ops = nil

	planRepo := newFakePlanRepo(mustPlan(1, "monthly", "499.00", 30))
	gateway := &fakeGateway{enabled: true, validSig: "good-sig"}

	uc, _ := newVerifyPaymentFixture(subRepo, planRepo, gateway, now)

	result, err := uc.Execute(context.Background(), VerifyPaymentCommand{
		RestaurantID: 7,
		PlanID:       1,
		OrderID:      "order_2",
		PaymentID:    "pay_2",
		Signature:    "good-sig",
	})
	require.NoError(t, err)

	// Old active row is expired before the new one is inserted.
	assert.Equal(t, []string{"expire_active", "create"}, subRepo.ops)
	assert.Equal(t, vo.StatusExpired, old.Status())

	// The fresh period runs from now, not from the old end date.
	assert.Equal(t, now, result.StartDate)
	assert.Equal(t, now.AddDate(0, 0, 30), result.EndDate)

	active, err := subRepo.GetCurrentActive(context.Background(), 7, now)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, result.ID, active.ID())

	count, err := subRepo.CountActiveAt(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestVerifyPayment_ConcurrentPurchasesLeaveOneActive(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	subRepo := newFakeSubscriptionRepo()
	planRepo := newFakePlanRepo(mustPlan(1, "monthly", "499.00", 30))
	gateway := &fakeGateway{enabled: true, validSig: "good-sig"}

	uc, _ := newVerifyPaymentFixture(subRepo, planRepo, gateway, now)

	const buyers = 25
	var wg sync.WaitGroup
	wg.Add(buyers)
	for i := 0; i < buyers; i++ {
		go func(n int) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), VerifyPaymentCommand{
				RestaurantID: 7,
				PlanID:       1,
				OrderID:      fmt.Sprintf("order_%d", n),
				PaymentID:    fmt.Sprintf("pay_%d", n),
				Signature:    "good-sig",
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// Every purchase lands on the ledger, but only the last writer's row
	// is still usable.
	rows, err := subRepo.ListByRestaurantID(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, rows, buyers)

	count, err := subRepo.CountActiveAt(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestVerifyPayment_RejectsBadSignature(t *testing.T) {
	now := time.Now().UTC()
	subRepo := newFakeSubscriptionRepo()
	planRepo := newFakePlanRepo(mustPlan(1, "monthly", "499.00", 30))
	gateway := &fakeGateway{enabled: true, validSig: "good-sig"}

	uc, tx := newVerifyPaymentFixture(subRepo, planRepo, gateway, now)

	_, err := uc.Execute(context.Background(), VerifyPaymentCommand{
		RestaurantID: 7,
		PlanID:       1,
		OrderID:      "order_1",
		PaymentID:    "pay_1",
		Signature:    "tampered",
	})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypePaymentVerification, appErr.Type)

	// The ledger stays untouched on rejection.
	assert.Empty(t, subRepo.ops)
	assert.Equal(t, 0, tx.calls)
}

func TestVerifyPayment_GatewayDisabled(t *testing.T) {
	now := time.Now().UTC()
	uc, _ := newVerifyPaymentFixture(newFakeSubscriptionRepo(),
		newFakePlanRepo(mustPlan(1, "monthly", "499.00", 30)),
		&fakeGateway{enabled: false}, now)

	_, err := uc.Execute(context.Background(), VerifyPaymentCommand{
		RestaurantID: 7, PlanID: 1, OrderID: "o", PaymentID: "p", Signature: "s",
	})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeServiceUnavailable, appErr.Type)
}

func TestVerifyPayment_UnknownPlan(t *testing.T) {
	now := time.Now().UTC()
	subRepo := newFakeSubscriptionRepo()
	uc, _ := newVerifyPaymentFixture(subRepo, newFakePlanRepo(),
		&fakeGateway{enabled: true, validSig: "good-sig"}, now)

	_, err := uc.Execute(context.Background(), VerifyPaymentCommand{
		RestaurantID: 7, PlanID: 99, OrderID: "o", PaymentID: "p", Signature: "good-sig",
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Empty(t, subRepo.ops)
}

func TestVerifyPayment_InactivePlanRejected(t *testing.T) {
	now := time.Now().UTC()
	plan := mustPlan(1, "monthly", "499.00", 30)
	plan.Deactivate()

	uc, _ := newVerifyPaymentFixture(newFakeSubscriptionRepo(), newFakePlanRepo(plan),
		&fakeGateway{enabled: true, validSig: "good-sig"}, now)

	_, err := uc.Execute(context.Background(), VerifyPaymentCommand{
		RestaurantID: 7, PlanID: 1, OrderID: "o", PaymentID: "p", Signature: "good-sig",
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
