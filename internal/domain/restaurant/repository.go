package restaurant

import "context"

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *Restaurant) error
	GetByID(ctx context.Context, id uint) (*Restaurant, error)
	GetByUserID(ctx context.Context, userID uint) (*Restaurant, error)
	GetBySlug(ctx context.Context, slug string) (*Restaurant, error)
	Update(ctx context.Context, restaurant *Restaurant) error
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, page, pageSize int) ([]*Restaurant, int64, error)
	Count(ctx context.Context) (int64, error)
}
