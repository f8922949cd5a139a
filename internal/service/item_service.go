package service

import (
	"context"
	"fmt"
	"strings"

	"item-catalog/internal/domain"
	"item-catalog/internal/repository"
)

// ItemUpdateInput is a partial update; nil fields are left untouched.
type ItemUpdateInput struct {
	Title       *string
	Description *string
}

// ItemService describes catalog item operations.
type ItemService interface {
	Create(ctx context.Context, ownerID int64, title, description string) (*domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	List(ctx context.Context, offset, limit int, ownerID *int64) ([]domain.Item, error)
	Update(ctx context.Context, id int64, input ItemUpdateInput) (*domain.Item, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type itemService struct {
	items repository.ItemRepository
}

func NewItemService(items repository.ItemRepository) ItemService {
	return &itemService{items: items}
}

func (s *itemService) Create(ctx context.Context, ownerID int64, title, description string) (*domain.Item, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if ownerID <= 0 {
		return nil, fmt.Errorf("%w: owner is required", domain.ErrValidation)
	}

	item := &domain.Item{
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
	}
	if _, err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	return s.items.GetByID(ctx, id)
}

func (s *itemService) List(ctx context.Context, offset, limit int, ownerID *int64) ([]domain.Item, error) {
	return s.items.List(ctx, offset, limit, repository.ItemFilter{OwnerID: ownerID})
}

func (s *itemService) Update(ctx context.Context, id int64, input ItemUpdateInput) (*domain.Item, error) {
	update := repository.ItemUpdate{Description: input.Description}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
		}
		update.Title = &title
	}
	return s.items.Update(ctx, id, update)
}

func (s *itemService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.items.Delete(ctx, id)
}
