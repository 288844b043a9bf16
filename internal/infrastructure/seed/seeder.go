// Package seed populates the default subscription plans and the initial
// admin account.
package seed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/menuqr-inc/menuqr/internal/domain/subscription"
	"github.com/menuqr-inc/menuqr/internal/domain/user"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/auth"
	"github.com/menuqr-inc/menuqr/internal/shared/constants"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
)

type Seeder struct {
	planRepo subscription.PlanRepository
	userRepo user.UserRepository
	hasher   *auth.BcryptPasswordHasher
	logger   logger.Interface
}

func NewSeeder(planRepo subscription.PlanRepository, userRepo user.UserRepository,
	hasher *auth.BcryptPasswordHasher, log logger.Interface) *Seeder {
	return &Seeder{
		planRepo: planRepo,
		userRepo: userRepo,
		hasher:   hasher,
		logger:   log,
	}
}

// SeedPlans inserts the default plans when the table is empty.
func (s *Seeder) SeedPlans(ctx context.Context) error {
	count, err := s.planRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Infow("subscription plans already seeded", "count", count)
		return nil
	}

	defaults := []struct {
		name     string
		price    string
		days     int
		features []string
	}{
		{
			name:  "monthly",
			price: "499.00",
			days:  30,
			features: []string{
				"Unlimited menu items",
				"QR code generation",
				"Mobile responsive menu",
				"Basic analytics",
			},
		},
		{
			name:  "yearly",
			price: "4999.00",
			days:  365,
			features: []string{
				"Everything in Monthly",
				"Priority support",
				"Advanced analytics",
				"Custom branding",
			},
		},
		{
			name:  constants.FreePlanName,
			price: "0.00",
			days:  constants.FreePlanDurationDays,
			features: []string{
				"Unlimited menu items",
				"QR code generation",
				"Mobile responsive menu",
			},
		},
	}

	for _, d := range defaults {
		plan, err := subscription.NewPlan(d.name, decimal.RequireFromString(d.price), d.days, d.features)
		if err != nil {
			return fmt.Errorf("failed to build default plan %s: %w", d.name, err)
		}
		if err := s.planRepo.Create(ctx, plan); err != nil {
			return fmt.Errorf("failed to seed plan %s: %w", d.name, err)
		}
		s.logger.Infow("seeded subscription plan", "name", d.name, "price", d.price)
	}

	return nil
}

// SeedAdmin creates the initial admin account when no admin exists.
func (s *Seeder) SeedAdmin(ctx context.Context, name, email, password string) error {
	count, err := s.userRepo.CountByRole(ctx, constants.RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Infow("admin account already exists")
		return nil
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	admin, err := user.NewUser(name, email, hash, constants.RoleAdmin)
	if err != nil {
		return err
	}

	if err := s.userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	s.logger.Infow("seeded admin account", "email", email)
	return nil
}
