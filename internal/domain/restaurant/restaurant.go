package restaurant

import (
	"fmt"
	"time"

	"github.com/menuqr-inc/menuqr/internal/shared/constants"
	"github.com/menuqr-inc/menuqr/internal/shared/utils"
)

// Restaurant is the tenant aggregate. The slug addresses the public menu
// page and is the value encoded in the printed QR code.
type Restaurant struct {
	id         uint
	userID     uint
	name       string
	slug       string
	logo       string
	address    string
	phone      string
	themeColor string
	qrCodeURL  string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewRestaurant(userID uint, name, slug string) (*Restaurant, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("restaurant name is required")
	}
	if !utils.IsValidSlug(slug) {
		return nil, fmt.Errorf("invalid slug: %s", slug)
	}

	now := time.Now().UTC()
	return &Restaurant{
		userID:     userID,
		name:       name,
		slug:       slug,
		themeColor: constants.DefaultThemeColor,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructRestaurant(id, userID uint, name, slug, logo, address, phone,
	themeColor, qrCodeURL string, createdAt, updatedAt time.Time) (*Restaurant, error) {

	if id == 0 {
		return nil, fmt.Errorf("restaurant ID cannot be zero")
	}
	if !utils.IsValidSlug(slug) {
		return nil, fmt.Errorf("invalid slug: %s", slug)
	}
	if themeColor == "" {
		themeColor = constants.DefaultThemeColor
	}

	return &Restaurant{
		id:         id,
		userID:     userID,
		name:       name,
		slug:       slug,
		logo:       logo,
		address:    address,
		phone:      phone,
		themeColor: themeColor,
		qrCodeURL:  qrCodeURL,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (r *Restaurant) ID() uint             { return r.id }
func (r *Restaurant) UserID() uint         { return r.userID }
func (r *Restaurant) Name() string         { return r.name }
func (r *Restaurant) Slug() string         { return r.slug }
func (r *Restaurant) Logo() string         { return r.logo }
func (r *Restaurant) Address() string      { return r.address }
func (r *Restaurant) Phone() string        { return r.phone }
func (r *Restaurant) ThemeColor() string   { return r.themeColor }
func (r *Restaurant) QRCodeURL() string    { return r.qrCodeURL }
func (r *Restaurant) CreatedAt() time.Time { return r.createdAt }
func (r *Restaurant) UpdatedAt() time.Time { return r.updatedAt }

func (r *Restaurant) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("restaurant ID is already set")
	}
	r.id = id
	return nil
}

// UpdateDetails replaces the mutable profile attributes.
func (r *Restaurant) UpdateDetails(name, logo, address, phone, themeColor string) error {
	if name == "" {
		return fmt.Errorf("restaurant name is required")
	}
	if themeColor != "" && !utils.IsValidHexColor(themeColor) {
		return fmt.Errorf("invalid theme color: %s", themeColor)
	}

	r.name = name
	r.logo = logo
	r.address = address
	r.phone = phone
	if themeColor != "" {
		r.themeColor = themeColor
	}
	r.updatedAt = time.Now().UTC()
	return nil
}

// SetQRCodeURL stores the public menu URL the QR code points at.
func (r *Restaurant) SetQRCodeURL(url string) {
	r.qrCodeURL = url
	r.updatedAt = time.Now().UTC()
}
