package usecases

import (
	"context"
	"fmt"

	"github.com/menuqr-inc/menuqr/internal/application/auth/dto"
	"github.com/menuqr-inc/menuqr/internal/domain/restaurant"
	"github.com/menuqr-inc/menuqr/internal/domain/user"
	"github.com/menuqr-inc/menuqr/internal/shared/errors"
)

// GetProfileUseCase returns the account with its restaurant, if any.
type GetProfileUseCase struct {
	userRepo       user.UserRepository
	restaurantRepo restaurant.RestaurantRepository
}

func NewGetProfileUseCase(userRepo user.UserRepository, restaurantRepo restaurant.RestaurantRepository) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo, restaurantRepo: restaurantRepo}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uint) (*dto.ProfileDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load user", err.Error())
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	result := &dto.ProfileDTO{User: dto.FromUser(u)}

	rest, err := uc.restaurantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load restaurant", err.Error())
	}
	if rest != nil {
		restDTO := dto.FromRestaurant(rest)
		result.Restaurant = &restDTO
	}

	return result, nil
}

type UpdateProfileCommand struct {
	UserID         uint
	Name           string
	RestaurantName string
	Logo           string
	Address        string
	Phone          string
	ThemeColor     string
}

// UpdateProfileUseCase updates the account name and restaurant details.
// The slug never changes; printed QR codes must keep working.
type UpdateProfileUseCase struct {
	userRepo       user.UserRepository
	restaurantRepo restaurant.RestaurantRepository
	baseURL        string
}

func NewUpdateProfileUseCase(userRepo user.UserRepository,
	restaurantRepo restaurant.RestaurantRepository, baseURL string) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
		baseURL:        baseURL,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.ProfileDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load user", err.Error())
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if cmd.Name != "" {
		if err := u.UpdateProfile(cmd.Name); err != nil {
			return nil, errors.NewValidationError("invalid name", err.Error())
		}
		if err := uc.userRepo.Update(ctx, u); err != nil {
			return nil, errors.NewInternalError("failed to save user", err.Error())
		}
	}

	result := &dto.ProfileDTO{User: dto.FromUser(u)}

	rest, err := uc.restaurantRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load restaurant", err.Error())
	}
	if rest != nil {
		name := cmd.RestaurantName
		if name == "" {
			name = rest.Name()
		}
		if err := rest.UpdateDetails(name, cmd.Logo, cmd.Address, cmd.Phone, cmd.ThemeColor); err != nil {
			return nil, errors.NewValidationError("invalid restaurant details", err.Error())
		}
		if rest.QRCodeURL() == "" {
			rest.SetQRCodeURL(fmt.Sprintf("%s/menu/%s", uc.baseURL, rest.Slug()))
		}
		if err := uc.restaurantRepo.Update(ctx, rest); err != nil {
			return nil, errors.NewInternalError("failed to save restaurant", err.Error())
		}

		restDTO := dto.FromRestaurant(rest)
		result.Restaurant = &restDTO
	}

	return result, nil
}
