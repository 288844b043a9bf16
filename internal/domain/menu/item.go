package menu

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Item struct {
	id          uint
	categoryID  uint
	name        string
	description string
	price       decimal.Decimal
	images      []string
	available   bool
	isVeg       bool
	sortOrder   int
	createdAt   time.Time
	updatedAt   time.Time
}

func NewItem(categoryID uint, name, description string, price decimal.Decimal,
	images []string, isVeg bool, sortOrder int) (*Item, error) {

	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("item name is required")
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("item price cannot be negative")
	}

	if images == nil {
		images = []string{}
	}

	now := time.Now().UTC()
	return &Item{
		categoryID:  categoryID,
		name:        name,
		description: description,
		price:       price,
		images:      images,
		available:   true,
		isVeg:       isVeg,
		sortOrder:   sortOrder,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructItem(id, categoryID uint, name, description string, price decimal.Decimal,
	images []string, available, isVeg bool, sortOrder int, createdAt, updatedAt time.Time) (*Item, error) {

	if id == 0 {
		return nil, fmt.Errorf("item ID cannot be zero")
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}

	if images == nil {
		images = []string{}
	}

	return &Item{
		id:          id,
		categoryID:  categoryID,
		name:        name,
		description: description,
		price:       price,
		images:      images,
		available:   available,
		isVeg:       isVeg,
		sortOrder:   sortOrder,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (i *Item) ID() uint               { return i.id }
func (i *Item) CategoryID() uint       { return i.categoryID }
func (i *Item) Name() string           { return i.name }
func (i *Item) Description() string    { return i.description }
func (i *Item) Price() decimal.Decimal { return i.price }
func (i *Item) Images() []string       { return i.images }
func (i *Item) Available() bool        { return i.available }
func (i *Item) IsVeg() bool            { return i.isVeg }
func (i *Item) SortOrder() int         { return i.sortOrder }
func (i *Item) CreatedAt() time.Time   { return i.createdAt }
func (i *Item) UpdatedAt() time.Time   { return i.updatedAt }

func (i *Item) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("item ID is already set")
	}
	i.id = id
	return nil
}

func (i *Item) Update(name, description string, price decimal.Decimal,
	images []string, available, isVeg bool, sortOrder int) error {

	if name == "" {
		return fmt.Errorf("item name is required")
	}
	if price.IsNegative() {
		return fmt.Errorf("item price cannot be negative")
	}

	if images == nil {
		images = []string{}
	}

	i.name = name
	i.description = description
	i.price = price
	i.images = images
	i.available = available
	i.isVeg = isVeg
	i.sortOrder = sortOrder
	i.updatedAt = time.Now().UTC()
	return nil
}
