package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/menuqr-inc/menuqr/internal/domain/subscription"
	vo "github.com/menuqr-inc/menuqr/internal/domain/subscription/valueobjects"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/persistence/models"
	"github.com/menuqr-inc/menuqr/internal/shared/db"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrate(&models.SubscriptionModel{}))
	return database
}

func insertRow(t *testing.T, repo subscription.SubscriptionRepository, restaurantID uint,
	start time.Time, days int, status vo.SubscriptionStatus) *subscription.Subscription {
	t.Helper()

	sub, err := subscription.NewSubscription(restaurantID, "monthly", decimal.NewFromInt(499),
		start, days, "razorpay", "pay_test")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), sub))

	if status != vo.StatusActive {
		if status == vo.StatusExpired {
			require.NoError(t, sub.Expire())
		}
		require.NoError(t, repo.Update(context.Background(), sub))
	}
	return sub
}

func insertPendingRow(t *testing.T, database *gorm.DB, restaurantID uint, start time.Time, days int) uint {
	t.Helper()

	model := models.SubscriptionModel{
		RestaurantID:  restaurantID,
		PlanName:      "monthly",
		Price:         decimal.NewFromInt(499),
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, days),
		Status:        vo.StatusPending.String(),
		PaymentMethod: "razorpay",
	}
	require.NoError(t, database.Create(&model).Error)
	return model.ID
}

func TestExpireAllPast_MarksOnlyOverdueActiveRows(t *testing.T) {
	database := setupTestDB(t)
	repo := NewSubscriptionRepository(database)
	ctx := context.Background()

	now := time.Now().UTC()

	overdue := insertRow(t, repo, 1, now.AddDate(0, 0, -60), 30, vo.StatusActive)
	current := insertRow(t, repo, 2, now.AddDate(0, 0, -5), 30, vo.StatusActive)
	pendingID := insertPendingRow(t, database, 3, now.AddDate(0, 0, -60), 30)

	updated, err := repo.ExpireAllPast(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	got, err := repo.GetByID(ctx, overdue.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusExpired, got.Status())

	got, err = repo.GetByID(ctx, current.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusActive, got.Status())

	// Pending rows stay pending even when their end date has passed.
	var pendingModel models.SubscriptionModel
	require.NoError(t, database.First(&pendingModel, pendingID).Error)
	assert.Equal(t, vo.StatusPending.String(), pendingModel.Status)
}

func TestExpireAllPast_Idempotent(t *testing.T) {
	database := setupTestDB(t)
	repo := NewSubscriptionRepository(database)
	ctx := context.Background()

	now := time.Now().UTC()
	insertRow(t, repo, 1, now.AddDate(0, 0, -60), 30, vo.StatusActive)

	first, err := repo.ExpireAllPast(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := repo.ExpireAllPast(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(0), second)
}

func TestGetCurrentActive_IgnoresStaleActiveRows(t *testing.T) {
	database := setupTestDB(t)
	repo := NewSubscriptionRepository(database)
	ctx := context.Background()

	now := time.Now().UTC()

	// Active status but end date already passed: the sweep has not run yet.
	insertRow(t, repo, 1, now.AddDate(0, 0, -60), 30, vo.StatusActive)

	got, err := repo.GetCurrentActive(ctx, 1, now)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetCurrentActive_PicksMostRecentStart(t *testing.T) {
	database := setupTestDB(t)
	repo := NewSubscriptionRepository(database)
	ctx := context.Background()

	now := time.Now().UTC()

	insertRow(t, repo, 1, now.AddDate(0, 0, -20), 60, vo.StatusActive)
	newer := insertRow(t, repo, 1, now.AddDate(0, 0, -1), 30, vo.StatusActive)

	got, err := repo.GetCurrentActive(ctx, 1, now)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, newer.ID(), got.ID())
}

func TestExpireActiveByRestaurantID_ScopedToTenant(t *testing.T) {
	database := setupTestDB(t)
	repo := NewSubscriptionRepository(database)
	ctx := context.Background()

	now := time.Now().UTC()

	mine := insertRow(t, repo, 1, now.AddDate(0, 0, -1), 30, vo.StatusActive)
	other := insertRow(t, repo, 2, now.AddDate(0, 0, -1), 30, vo.StatusActive)

	require.NoError(t, repo.ExpireActiveByRestaurantID(ctx, 1))

	got, err := repo.GetByID(ctx, mine.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusExpired, got.Status())

	got, err = repo.GetByID(ctx, other.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusActive, got.Status())
}

func TestRunInTransaction_CommitsExpireThenInsert(t *testing.T) {
	database := setupTestDB(t)
	repo := NewSubscriptionRepository(database)
	tm := db.NewTransactionManager(database)
	ctx := context.Background()

	now := time.Now().UTC()
	old := insertRow(t, repo, 1, now.AddDate(0, 0, -1), 30, vo.StatusActive)

	fresh, err := subscription.NewSubscription(1, "monthly", decimal.NewFromInt(499),
		now, 30, "razorpay", "pay_new")
	require.NoError(t, err)

	err = tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := repo.ExpireActiveByRestaurantID(txCtx, 1); err != nil {
			return err
		}
		return repo.Create(txCtx, fresh)
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, old.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusExpired, got.Status())

	active, err := repo.GetCurrentActive(ctx, 1, now)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, fresh.ID(), active.ID())
}

func TestRunInTransaction_RollsBackOnError(t *testing.T) {
	database := setupTestDB(t)
	repo := NewSubscriptionRepository(database)
	tm := db.NewTransactionManager(database)
	ctx := context.Background()

	now := time.Now().UTC()
	old := insertRow(t, repo, 1, now.AddDate(0, 0, -1), 30, vo.StatusActive)

	sentinel := fmt.Errorf("insert rejected")
	err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := repo.ExpireActiveByRestaurantID(txCtx, 1); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	// The expire inside the failed transaction never became visible.
	got, err := repo.GetByID(ctx, old.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusActive, got.Status())
}
