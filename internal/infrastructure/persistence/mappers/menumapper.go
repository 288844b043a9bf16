package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/menuqr-inc/menuqr/internal/domain/menu"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/persistence/models"
)

type MenuMapper struct{}

func NewMenuMapper() *MenuMapper {
	return &MenuMapper{}
}

func (m *MenuMapper) CategoryToDomain(model *models.CategoryModel) (*menu.Category, error) {
	return menu.ReconstructCategory(
		model.ID,
		model.RestaurantID,
		model.Name,
		model.SortOrder,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *MenuMapper) CategoryToModel(c *menu.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:           c.ID(),
		RestaurantID: c.RestaurantID(),
		Name:         c.Name(),
		SortOrder:    c.SortOrder(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func (m *MenuMapper) ItemToDomain(model *models.MenuItemModel) (*menu.Item, error) {
	var images []string
	if len(model.Images) > 0 {
		if err := json.Unmarshal(model.Images, &images); err != nil {
			return nil, fmt.Errorf("failed to unmarshal item images: %w", err)
		}
	}

	return menu.ReconstructItem(
		model.ID,
		model.CategoryID,
		model.Name,
		model.Description,
		model.Price,
		images,
		model.Available,
		model.IsVeg,
		model.SortOrder,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *MenuMapper) ItemToModel(i *menu.Item) (*models.MenuItemModel, error) {
	images, err := json.Marshal(i.Images())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item images: %w", err)
	}

	return &models.MenuItemModel{
		ID:          i.ID(),
		CategoryID:  i.CategoryID(),
		Name:        i.Name(),
		Description: i.Description(),
		Price:       i.Price(),
		Images:      datatypes.JSON(images),
		Available:   i.Available(),
		IsVeg:       i.IsVeg(),
		SortOrder:   i.SortOrder(),
		CreatedAt:   i.CreatedAt(),
		UpdatedAt:   i.UpdatedAt(),
	}, nil
}
