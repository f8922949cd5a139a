package repository

import (
	"context"

	"item-catalog/internal/domain"
)

// ItemUpdate carries a partial update; nil fields are left untouched.
type ItemUpdate struct {
	Title       *string
	Description *string
}

// ItemFilter narrows listing results.
type ItemFilter struct {
	OwnerID *int64
}

// ItemRepository defines persistence operations for Item entities.
type ItemRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, item *domain.Item) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	List(ctx context.Context, offset, limit int, filter ItemFilter) ([]domain.Item, error)
	Update(ctx context.Context, id int64, update ItemUpdate) (*domain.Item, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
