package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Levezze/e-commerce-rest-api/internal/core/domain"
	"github.com/Levezze/e-commerce-rest-api/internal/core/ports"
)

// ItemService implements catalog browsing and management.
type ItemService struct {
	items  ports.ItemRepository
	logger zerolog.Logger
}

func NewItemService(items ports.ItemRepository, logger zerolog.Logger) *ItemService {
	return &ItemService{items: items, logger: logger}
}

// GetPublic returns an item for the storefront. Hidden items are reported as
// not found so their existence never leaks.
func (s *ItemService) GetPublic(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.IsHidden {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

func (s *ItemService) ListPublic(ctx context.Context) ([]domain.Item, error) {
	items, err := s.items.List(ctx, false)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Item{}
	}
	return items, nil
}

func (s *ItemService) ListAll(ctx context.Context) ([]domain.Item, error) {
	items, err := s.items.List(ctx, true)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Item{}
	}
	return items, nil
}

func (s *ItemService) Create(ctx context.Context, input ports.ItemInput) (*domain.Item, error) {
	created, err := s.items.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("item_id", created.ID).Str("name", created.Name).Msg("item created")
	return created, nil
}

func (s *ItemService) Update(ctx context.Context, id int64, input ports.ItemInput) (*domain.Item, error) {
	updated, err := s.items.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("item_id", id).Msg("item updated")
	return updated, nil
}

func (s *ItemService) Delete(ctx context.Context, id int64) error {
	if err := s.items.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrItemNotFound) {
			s.logger.Error().Err(err).Int64("item_id", id).Msg("failed to delete item")
		}
		return err
	}
	s.logger.Info().Int64("item_id", id).Msg("item deleted")
	return nil
}
