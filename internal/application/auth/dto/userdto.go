// Package dto defines the transport representations of auth data.
package dto

import (
	"github.com/menuqr-inc/menuqr/internal/domain/restaurant"
	"github.com/menuqr-inc/menuqr/internal/domain/user"
)

type UserDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type RestaurantDTO struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Logo       string `json:"logo,omitempty"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
	ThemeColor string `json:"theme_color"`
	QRCodeURL  string `json:"qr_code_url,omitempty"`
}

type AuthResultDTO struct {
	Token      string         `json:"token"`
	User       UserDTO        `json:"user"`
	Restaurant *RestaurantDTO `json:"restaurant,omitempty"`
}

type ProfileDTO struct {
	User       UserDTO        `json:"user"`
	Restaurant *RestaurantDTO `json:"restaurant,omitempty"`
}

func FromUser(u *user.User) UserDTO {
	return UserDTO{
		ID:    u.ID(),
		Name:  u.Name(),
		Email: u.Email(),
		Role:  u.Role(),
	}
}

func FromRestaurant(r *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:         r.ID(),
		Name:       r.Name(),
		Slug:       r.Slug(),
		Logo:       r.Logo(),
		Address:    r.Address(),
		Phone:      r.Phone(),
		ThemeColor: r.ThemeColor(),
		QRCodeURL:  r.QRCodeURL(),
	}
}
