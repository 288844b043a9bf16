// Package dto defines the transport representations of menu data.
package dto

import (
	"github.com/menuqr-inc/menuqr/internal/domain/menu"
	"github.com/menuqr-inc/menuqr/internal/domain/restaurant"
)

type CategoryDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
	Items     []ItemDTO `json:"items"`
}

type ItemDTO struct {
	ID          uint     `json:"id"`
	CategoryID  uint     `json:"category_id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       string   `json:"price"`
	Images      []string `json:"images"`
	Available   bool     `json:"available"`
	IsVeg       bool     `json:"is_veg"`
	SortOrder   int      `json:"sort_order"`
}

type MenuDTO struct {
	Categories []CategoryDTO `json:"categories"`
}

type RestaurantHeaderDTO struct {
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Logo       string `json:"logo,omitempty"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
	ThemeColor string `json:"theme_color"`
}

// PublicMenuDTO is the public menu page payload. When the restaurant has no
// usable subscription only the header is returned with the expired flag set.
type PublicMenuDTO struct {
	Restaurant          RestaurantHeaderDTO `json:"restaurant"`
	Categories          []CategoryDTO       `json:"categories,omitempty"`
	SubscriptionExpired bool                `json:"subscription_expired"`
}

func FromCategory(c *menu.Category, items []ItemDTO) CategoryDTO {
	if items == nil {
		items = []ItemDTO{}
	}
	return CategoryDTO{
		ID:        c.ID(),
		Name:      c.Name(),
		SortOrder: c.SortOrder(),
		Items:     items,
	}
}

func FromItem(i *menu.Item) ItemDTO {
	return ItemDTO{
		ID:          i.ID(),
		CategoryID:  i.CategoryID(),
		Name:        i.Name(),
		Description: i.Description(),
		Price:       i.Price().StringFixed(2),
		Images:      i.Images(),
		Available:   i.Available(),
		IsVeg:       i.IsVeg(),
		SortOrder:   i.SortOrder(),
	}
}

func FromRestaurantHeader(r *restaurant.Restaurant) RestaurantHeaderDTO {
	return RestaurantHeaderDTO{
		Name:       r.Name(),
		Slug:       r.Slug(),
		Logo:       r.Logo(),
		Address:    r.Address(),
		Phone:      r.Phone(),
		ThemeColor: r.ThemeColor(),
	}
}
