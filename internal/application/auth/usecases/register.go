package usecases

import (
	"context"
	"fmt"

	"github.com/menuqr-inc/menuqr/internal/application/auth/dto"
	"github.com/menuqr-inc/menuqr/internal/domain/restaurant"
	"github.com/menuqr-inc/menuqr/internal/domain/user"
	"github.com/menuqr-inc/menuqr/internal/shared/constants"
	"github.com/menuqr-inc/menuqr/internal/shared/errors"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
	"github.com/menuqr-inc/menuqr/internal/shared/utils"
)

type RegisterCommand struct {
	Name           string
	Email          string
	Password       string
	RestaurantName string
}

// RegisterUseCase creates an owner account together with its restaurant.
// The slug is derived from the restaurant name; collisions get a random
// suffix. Both writes happen in one transaction.
type RegisterUseCase struct {
	userRepo       user.UserRepository
	restaurantRepo restaurant.RestaurantRepository
	hasher         PasswordHasher
	tokens         TokenIssuer
	txManager      TransactionManager
	baseURL        string
	logger         logger.Interface
}

func NewRegisterUseCase(
	userRepo user.UserRepository,
	restaurantRepo restaurant.RestaurantRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	txManager TransactionManager,
	baseURL string,
	log logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
		hasher:         hasher,
		tokens:         tokens,
		txManager:      txManager,
		baseURL:        baseURL,
		logger:         log,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.AuthResultDTO, error) {
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}
	if cmd.RestaurantName == "" {
		return nil, errors.NewValidationError("restaurant name is required")
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, errors.NewInternalError("failed to check email", err.Error())
	}
	if exists {
		return nil, errors.NewConflictError("email already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password")
	}

	newUser, err := user.NewUser(cmd.Name, cmd.Email, hash, constants.RoleRestaurant)
	if err != nil {
		return nil, errors.NewValidationError("invalid user", err.Error())
	}

	slug, err := uc.pickSlug(ctx, cmd.RestaurantName)
	if err != nil {
		return nil, err
	}

	var rest *restaurant.Restaurant
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Create(txCtx, newUser); err != nil {
			return err
		}

		rest, err = restaurant.NewRestaurant(newUser.ID(), cmd.RestaurantName, slug)
		if err != nil {
			return err
		}
		rest.SetQRCodeURL(fmt.Sprintf("%s/menu/%s", uc.baseURL, slug))

		return uc.restaurantRepo.Create(txCtx, rest)
	})
	if err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email already registered")
		}
		return nil, errors.NewInternalError("failed to register", err.Error())
	}

	token, err := uc.tokens.GenerateToken(newUser.ID(), newUser.Role())
	if err != nil {
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("restaurant registered",
		"user_id", newUser.ID(), "restaurant_id", rest.ID(), "slug", slug)

	restDTO := dto.FromRestaurant(rest)
	return &dto.AuthResultDTO{
		Token:      token,
		User:       dto.FromUser(newUser),
		Restaurant: &restDTO,
	}, nil
}

func (uc *RegisterUseCase) pickSlug(ctx context.Context, name string) (string, error) {
	slug := utils.Slugify(name)

	taken, err := uc.restaurantRepo.ExistsBySlug(ctx, slug)
	if err != nil {
		return "", errors.NewInternalError("failed to check slug", err.Error())
	}
	if !taken {
		return slug, nil
	}

	for i := 0; i < 5; i++ {
		candidate := utils.UniqueSlug(name)
		taken, err := uc.restaurantRepo.ExistsBySlug(ctx, candidate)
		if err != nil {
			return "", errors.NewInternalError("failed to check slug", err.Error())
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", errors.NewConflictError("could not allocate a unique menu address")
}
