package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menuqr-inc/menuqr/internal/domain/menu"
	"github.com/menuqr-inc/menuqr/internal/domain/restaurant"
	"github.com/menuqr-inc/menuqr/internal/domain/subscription"
	"github.com/menuqr-inc/menuqr/internal/shared/biztime"
	"github.com/menuqr-inc/menuqr/internal/shared/constants"
	"github.com/menuqr-inc/menuqr/internal/shared/errors"
)

type fakeRestaurantRepo struct {
	bySlug map[string]*restaurant.Restaurant
}

func (f *fakeRestaurantRepo) Create(ctx context.Context, r *restaurant.Restaurant) error { return nil }
func (f *fakeRestaurantRepo) GetByID(ctx context.Context, id uint) (*restaurant.Restaurant, error) {
	return nil, nil
}
func (f *fakeRestaurantRepo) GetByUserID(ctx context.Context, userID uint) (*restaurant.Restaurant, error) {
	return nil, nil
}
func (f *fakeRestaurantRepo) GetBySlug(ctx context.Context, slug string) (*restaurant.Restaurant, error) {
	return f.bySlug[slug], nil
}
func (f *fakeRestaurantRepo) Update(ctx context.Context, r *restaurant.Restaurant) error { return nil }
func (f *fakeRestaurantRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	return f.bySlug[slug] != nil, nil
}
func (f *fakeRestaurantRepo) List(ctx context.Context, page, pageSize int) ([]*restaurant.Restaurant, int64, error) {
	return nil, 0, nil
}
func (f *fakeRestaurantRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

type fakeSubscriptionRepo struct {
	current map[uint]*subscription.Subscription
}

func (f *fakeSubscriptionRepo) Create(ctx context.Context, s *subscription.Subscription) error {
	return nil
}
func (f *fakeSubscriptionRepo) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	return nil, nil
}
func (f *fakeSubscriptionRepo) Update(ctx context.Context, s *subscription.Subscription) error {
	return nil
}
func (f *fakeSubscriptionRepo) GetCurrentActive(ctx context.Context, restaurantID uint, now time.Time) (*subscription.Subscription, error) {
	s := f.current[restaurantID]
	if s == nil || !s.IsUsableAt(now) {
		return nil, nil
	}
	return s, nil
}
func (f *fakeSubscriptionRepo) GetLatestByRestaurantID(ctx context.Context, restaurantID uint) (*subscription.Subscription, error) {
	return f.current[restaurantID], nil
}
func (f *fakeSubscriptionRepo) ListByRestaurantID(ctx context.Context, restaurantID uint) ([]*subscription.Subscription, error) {
	return nil, nil
}
func (f *fakeSubscriptionRepo) List(ctx context.Context, filter subscription.SubscriptionFilter) ([]*subscription.Subscription, int64, error) {
	return nil, 0, nil
}
func (f *fakeSubscriptionRepo) ExpireActiveByRestaurantID(ctx context.Context, restaurantID uint) error {
	return nil
}
func (f *fakeSubscriptionRepo) ExpireAllPast(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}
func (f *fakeSubscriptionRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return 0, nil
}
func (f *fakeSubscriptionRepo) CountActiveAt(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

type fakeCategoryRepo struct {
	byRestaurant map[uint][]*menu.Category
}

func (f *fakeCategoryRepo) Create(ctx context.Context, c *menu.Category) error { return nil }
func (f *fakeCategoryRepo) GetByID(ctx context.Context, id uint) (*menu.Category, error) {
	for _, list := range f.byRestaurant {
		for _, c := range list {
			if c.ID() == id {
				return c, nil
			}
		}
	}
	return nil, nil
}
func (f *fakeCategoryRepo) ListByRestaurantID(ctx context.Context, restaurantID uint) ([]*menu.Category, error) {
	return f.byRestaurant[restaurantID], nil
}
func (f *fakeCategoryRepo) Update(ctx context.Context, c *menu.Category) error { return nil }
func (f *fakeCategoryRepo) Delete(ctx context.Context, id uint) error          { return nil }

type fakeItemRepo struct {
	byCategory map[uint][]*menu.Item
}

func (f *fakeItemRepo) Create(ctx context.Context, i *menu.Item) error { return nil }
func (f *fakeItemRepo) GetByID(ctx context.Context, id uint) (*menu.Item, error) {
	for _, list := range f.byCategory {
		for _, i := range list {
			if i.ID() == id {
				return i, nil
			}
		}
	}
	return nil, nil
}
func (f *fakeItemRepo) ListByCategoryID(ctx context.Context, categoryID uint) ([]*menu.Item, error) {
	return f.byCategory[categoryID], nil
}
func (f *fakeItemRepo) ListByRestaurantID(ctx context.Context, restaurantID uint) ([]*menu.Item, error) {
	return nil, nil
}
func (f *fakeItemRepo) Update(ctx context.Context, i *menu.Item) error { return nil }
func (f *fakeItemRepo) Delete(ctx context.Context, id uint) error      { return nil }
func (f *fakeItemRepo) DeleteByCategoryID(ctx context.Context, categoryID uint) error {
	return nil
}

func mustRestaurant(t *testing.T, id uint, slug string) *restaurant.Restaurant {
	t.Helper()
	rest, err := restaurant.ReconstructRestaurant(id, id, "Spice Villa", slug,
		"", "12 MG Road", "+919800000000", "#3B82F6", "", time.Now(), time.Now())
	require.NoError(t, err)
	return rest
}

func mustCategory(t *testing.T, id, restaurantID uint, name string) *menu.Category {
	t.Helper()
	c, err := menu.ReconstructCategory(id, restaurantID, name, 0, time.Now(), time.Now())
	require.NoError(t, err)
	return c
}

func mustItem(t *testing.T, id, categoryID uint, name string, available bool) *menu.Item {
	t.Helper()
	i, err := menu.ReconstructItem(id, categoryID, name, "", decimal.NewFromInt(180),
		nil, available, true, 0, time.Now(), time.Now())
	require.NoError(t, err)
	return i
}

func activeSubscription(t *testing.T, restaurantID uint, endsIn time.Duration, now time.Time) *subscription.Subscription {
	t.Helper()
	s, err := subscription.NewSubscription(restaurantID, "monthly", decimal.NewFromInt(499),
		now.Add(endsIn-30*24*time.Hour), 30, constants.PaymentMethodRazorpay, "pay_123")
	require.NoError(t, err)
	return s
}

func TestGetPublicMenu_ActiveSubscriptionServesMenu(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rest := mustRestaurant(t, 1, "spice-villa")

	uc := NewGetPublicMenuUseCase(
		&fakeRestaurantRepo{bySlug: map[string]*restaurant.Restaurant{"spice-villa": rest}},
		&fakeSubscriptionRepo{current: map[uint]*subscription.Subscription{
			1: activeSubscription(t, 1, 10*24*time.Hour, now),
		}},
		&fakeCategoryRepo{byRestaurant: map[uint][]*menu.Category{
			1: {mustCategory(t, 10, 1, "Starters")},
		}},
		&fakeItemRepo{byCategory: map[uint][]*menu.Item{
			10: {
				mustItem(t, 100, 10, "Paneer Tikka", true),
				mustItem(t, 101, 10, "Seasonal Special", false),
			},
		}},
		biztime.FixedClock{T: now},
	)

	result, err := uc.Execute(context.Background(), "spice-villa")
	require.NoError(t, err)

	assert.False(t, result.SubscriptionExpired)
	assert.Equal(t, "Spice Villa", result.Restaurant.Name)
	require.Len(t, result.Categories, 1)
	require.Len(t, result.Categories[0].Items, 1)
	assert.Equal(t, "Paneer Tikka", result.Categories[0].Items[0].Name)
}

func TestGetPublicMenu_LapsedSubscriptionHidesMenu(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rest := mustRestaurant(t, 1, "spice-villa")

	// Stale row: still marked active but the end date has passed.
	stale := activeSubscription(t, 1, -24*time.Hour, now)

	uc := NewGetPublicMenuUseCase(
		&fakeRestaurantRepo{bySlug: map[string]*restaurant.Restaurant{"spice-villa": rest}},
		&fakeSubscriptionRepo{current: map[uint]*subscription.Subscription{1: stale}},
		&fakeCategoryRepo{byRestaurant: map[uint][]*menu.Category{
			1: {mustCategory(t, 10, 1, "Starters")},
		}},
		&fakeItemRepo{byCategory: map[uint][]*menu.Item{}},
		biztime.FixedClock{T: now},
	)

	result, err := uc.Execute(context.Background(), "spice-villa")
	require.NoError(t, err)

	assert.True(t, result.SubscriptionExpired)
	assert.Equal(t, "Spice Villa", result.Restaurant.Name)
	assert.Empty(t, result.Categories)
}

func TestGetPublicMenu_NoLedgerRowsHidesMenu(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rest := mustRestaurant(t, 1, "spice-villa")

	uc := NewGetPublicMenuUseCase(
		&fakeRestaurantRepo{bySlug: map[string]*restaurant.Restaurant{"spice-villa": rest}},
		&fakeSubscriptionRepo{current: map[uint]*subscription.Subscription{}},
		&fakeCategoryRepo{byRestaurant: map[uint][]*menu.Category{}},
		&fakeItemRepo{byCategory: map[uint][]*menu.Item{}},
		biztime.FixedClock{T: now},
	)

	result, err := uc.Execute(context.Background(), "spice-villa")
	require.NoError(t, err)
	assert.True(t, result.SubscriptionExpired)
}

func TestGetPublicMenu_UnknownSlugReturnsNotFound(t *testing.T) {
	uc := NewGetPublicMenuUseCase(
		&fakeRestaurantRepo{bySlug: map[string]*restaurant.Restaurant{}},
		&fakeSubscriptionRepo{},
		&fakeCategoryRepo{},
		&fakeItemRepo{},
		biztime.FixedClock{T: time.Now()},
	)

	_, err := uc.Execute(context.Background(), "ghost-kitchen")
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
}
