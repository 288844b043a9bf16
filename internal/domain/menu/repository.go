package menu

import "context"

type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	ListByRestaurantID(ctx context.Context, restaurantID uint) ([]*Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uint) error
}

type ItemRepository interface {
	Create(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, id uint) (*Item, error)
	ListByCategoryID(ctx context.Context, categoryID uint) ([]*Item, error)
	ListByRestaurantID(ctx context.Context, restaurantID uint) ([]*Item, error)
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id uint) error
	DeleteByCategoryID(ctx context.Context, categoryID uint) error
}
