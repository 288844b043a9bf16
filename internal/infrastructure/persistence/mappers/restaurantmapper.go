package mappers

import (
	"github.com/menuqr-inc/menuqr/internal/domain/restaurant"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/persistence/models"
)

type RestaurantMapper struct{}

func NewRestaurantMapper() *RestaurantMapper {
	return &RestaurantMapper{}
}

func (m *RestaurantMapper) ToDomain(model *models.RestaurantModel) (*restaurant.Restaurant, error) {
	return restaurant.ReconstructRestaurant(
		model.ID,
		model.UserID,
		model.Name,
		model.Slug,
		model.Logo,
		model.Address,
		model.Phone,
		model.ThemeColor,
		model.QRCodeURL,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *RestaurantMapper) ToModel(r *restaurant.Restaurant) *models.RestaurantModel {
	return &models.RestaurantModel{
		ID:         r.ID(),
		UserID:     r.UserID(),
		Name:       r.Name(),
		Slug:       r.Slug(),
		Logo:       r.Logo(),
		Address:    r.Address(),
		Phone:      r.Phone(),
		ThemeColor: r.ThemeColor(),
		QRCodeURL:  r.QRCodeURL(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}
