package usecases

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/menuqr-inc/menuqr/internal/domain/restaurant"
	"github.com/menuqr-inc/menuqr/internal/domain/subscription"
	vo "github.com/menuqr-inc/menuqr/internal/domain/subscription/valueobjects"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/payment"
)

// fakeSubscriptionRepo is an in-memory ledger that records the order of
// write operations so tests can assert expire-before-insert. All state
// is guarded by mu so the concurrency tests can call it from many
// goroutines.
type fakeSubscriptionRepo struct {
	mu     sync.Mutex
	subs   []*subscription.Subscription
	nextID uint
	ops    []string
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{nextID: 1}
}

func (r *fakeSubscriptionRepo) Create(_ context.Context, sub *subscription.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ops = append(r.ops, "create")
	if sub.ID() == 0 {
		if err := sub.SetID(r.nextID); err != nil {
			return err
		}
		r.nextID++
	}
	r.subs = append(r.subs, sub)
	return nil
}

func (r *fakeSubscriptionRepo) GetByID(_ context.Context, id uint) (*subscription.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.subs {
		if s.ID() == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSubscriptionRepo) Update(_ context.Context, sub *subscription.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ops = append(r.ops, "update")
	for i, s := range r.subs {
		if s.ID() == sub.ID() {
			r.subs[i] = sub
			return nil
		}
	}
	return fmt.Errorf("subscription %d not found", sub.ID())
}

func (r *fakeSubscriptionRepo) GetCurrentActive(_ context.Context, restaurantID uint, now time.Time) (*subscription.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var best *subscription.Subscription
	for _, s := range r.subs {
		if s.RestaurantID() != restaurantID || !s.IsUsableAt(now) {
			continue
		}
		if best == nil || s.StartDate().After(best.StartDate()) {
			best = s
		}
	}
	return best, nil
}

func (r *fakeSubscriptionRepo) GetLatestByRestaurantID(_ context.Context, restaurantID uint) (*subscription.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var best *subscription.Subscription
	for _, s := range r.subs {
		if s.RestaurantID() != restaurantID {
			continue
		}
		if best == nil || s.StartDate().After(best.StartDate()) {
			best = s
		}
	}
	return best, nil
}

func (r *fakeSubscriptionRepo) ListByRestaurantID(_ context.Context, restaurantID uint) ([]*subscription.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*subscription.Subscription
	for _, s := range r.subs {
		if s.RestaurantID() == restaurantID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) List(_ context.Context, _ subscription.SubscriptionFilter) ([]*subscription.Subscription, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.subs, int64(len(r.subs)), nil
}

func (r *fakeSubscriptionRepo) ExpireActiveByRestaurantID(_ context.Context, restaurantID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ops = append(r.ops, "expire_active")
	for _, s := range r.subs {
		if s.RestaurantID() == restaurantID && s.Status() == vo.StatusActive {
			if err := s.Expire(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *fakeSubscriptionRepo) ExpireAllPast(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, s := range r.subs {
		if s.Status() == vo.StatusActive && s.EndDate().Before(now) {
			if err := s.Expire(); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

func (r *fakeSubscriptionRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, s := range r.subs {
		if s.Status().String() == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeSubscriptionRepo) CountActiveAt(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, s := range r.subs {
		if s.IsUsableAt(now) {
			count++
		}
	}
	return count, nil
}

type fakePlanRepo struct {
	plans map[uint]*subscription.Plan
}

func newFakePlanRepo(plans ...*subscription.Plan) *fakePlanRepo {
	r := &fakePlanRepo{plans: make(map[uint]*subscription.Plan)}
	for _, p := range plans {
		r.plans[p.ID()] = p
	}
	return r
}

func (r *fakePlanRepo) Create(_ context.Context, plan *subscription.Plan) error {
	r.plans[plan.ID()] = plan
	return nil
}

func (r *fakePlanRepo) GetByID(_ context.Context, id uint) (*subscription.Plan, error) {
	return r.plans[id], nil
}

func (r *fakePlanRepo) GetByName(_ context.Context, name string) (*subscription.Plan, error) {
	for _, p := range r.plans {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePlanRepo) Update(_ context.Context, plan *subscription.Plan) error {
	r.plans[plan.ID()] = plan
	return nil
}

func (r *fakePlanRepo) GetAllActive(_ context.Context) ([]*subscription.Plan, error) {
	var out []*subscription.Plan
	for _, p := range r.plans {
		if p.IsActive() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePlanRepo) List(_ context.Context) ([]*subscription.Plan, error) {
	var out []*subscription.Plan
	for _, p := range r.plans {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePlanRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.plans)), nil
}

type fakeRestaurantRepo struct {
	restaurants map[uint]*restaurant.Restaurant
}

func newFakeRestaurantRepo(restaurants ...*restaurant.Restaurant) *fakeRestaurantRepo {
	r := &fakeRestaurantRepo{restaurants: make(map[uint]*restaurant.Restaurant)}
	for _, rest := range restaurants {
		r.restaurants[rest.ID()] = rest
	}
	return r
}

func (r *fakeRestaurantRepo) Create(_ context.Context, rest *restaurant.Restaurant) error {
	r.restaurants[rest.ID()] = rest
	return nil
}

func (r *fakeRestaurantRepo) GetByID(_ context.Context, id uint) (*restaurant.Restaurant, error) {
	return r.restaurants[id], nil
}

func (r *fakeRestaurantRepo) GetByUserID(_ context.Context, userID uint) (*restaurant.Restaurant, error) {
	for _, rest := range r.restaurants {
		if rest.UserID() == userID {
			return rest, nil
		}
	}
	return nil, nil
}

func (r *fakeRestaurantRepo) GetBySlug(_ context.Context, slug string) (*restaurant.Restaurant, error) {
	for _, rest := range r.restaurants {
		if rest.Slug() == slug {
			return rest, nil
		}
	}
	return nil, nil
}

func (r *fakeRestaurantRepo) Update(_ context.Context, rest *restaurant.Restaurant) error {
	r.restaurants[rest.ID()] = rest
	return nil
}

func (r *fakeRestaurantRepo) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	rest, _ := r.GetBySlug(context.Background(), slug)
	return rest != nil, nil
}

func (r *fakeRestaurantRepo) List(_ context.Context, _, _ int) ([]*restaurant.Restaurant, int64, error) {
	var out []*restaurant.Restaurant
	for _, rest := range r.restaurants {
		out = append(out, rest)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRestaurantRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.restaurants)), nil
}

// fakeGateway accepts exactly one signature value.
type fakeGateway struct {
	enabled  bool
	validSig string
}

func (g *fakeGateway) Enabled() bool {
	return g.enabled
}

func (g *fakeGateway) CreateOrder(amount decimal.Decimal, receipt string) (*payment.Order, error) {
	if !g.enabled {
		return nil, fmt.Errorf("gateway disabled")
	}
	return &payment.Order{
		ID:       "order_fake",
		Amount:   amount.Mul(decimal.NewFromInt(100)).IntPart(),
		Currency: "INR",
		KeyID:    "rzp_test_fake",
	}, nil
}

func (g *fakeGateway) VerifySignature(_, _, signature string) bool {
	return g.enabled && signature == g.validSig
}

// fakeTxManager runs the unit of work directly.
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func mustPlan(id uint, name string, price string, days int) *subscription.Plan {
	plan, err := subscription.NewPlan(name, decimal.RequireFromString(price), days, nil)
	if err != nil {
		panic(err)
	}
	if err := plan.SetID(id); err != nil {
		panic(err)
	}
	return plan
}

func mustRestaurant(id, userID uint, name, slug string) *restaurant.Restaurant {
	rest, err := restaurant.NewRestaurant(userID, name, slug)
	if err != nil {
		panic(err)
	}
	if err := rest.SetID(id); err != nil {
		panic(err)
	}
	return rest
}

func mustSubscription(id, restaurantID uint, planName string, start time.Time, days int) *subscription.Subscription {
	sub, err := subscription.NewSubscription(restaurantID, planName, decimal.NewFromInt(499),
		start, days, "razorpay", "pay_old")
	if err != nil {
		panic(err)
	}
	if err := sub.SetID(id); err != nil {
		panic(err)
	}
	return sub
}
