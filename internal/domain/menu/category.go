// Package menu holds the menu aggregate: categories and their items.
package menu

import (
	"fmt"
	"time"
)

type Category struct {
	id           uint
	restaurantID uint
	name         string
	sortOrder    int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewCategory(restaurantID uint, name string, sortOrder int) (*Category, error) {
	if restaurantID == 0 {
		return nil, fmt.Errorf("restaurant ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	now := time.Now().UTC()
	return &Category{
		restaurantID: restaurantID,
		name:         name,
		sortOrder:    sortOrder,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructCategory(id, restaurantID uint, name string, sortOrder int,
	createdAt, updatedAt time.Time) (*Category, error) {

	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if restaurantID == 0 {
		return nil, fmt.Errorf("restaurant ID is required")
	}

	return &Category{
		id:           id,
		restaurantID: restaurantID,
		name:         name,
		sortOrder:    sortOrder,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (c *Category) ID() uint             { return c.id }
func (c *Category) RestaurantID() uint   { return c.restaurantID }
func (c *Category) Name() string         { return c.name }
func (c *Category) SortOrder() int       { return c.sortOrder }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	c.id = id
	return nil
}

func (c *Category) Update(name string, sortOrder int) error {
	if name == "" {
		return fmt.Errorf("category name is required")
	}
	c.name = name
	c.sortOrder = sortOrder
	c.updatedAt = time.Now().UTC()
	return nil
}
