package ports

import (
	"context"

	"github.com/Levezze/e-commerce-rest-api/internal/core/domain"
)

type ItemService interface {
	// GetPublic and ListPublic exclude hidden items.
	GetPublic(ctx context.Context, id int64) (*domain.Item, error)
	ListPublic(ctx context.Context) ([]domain.Item, error)

	// Management operations, reachable only behind the admin/manager gate.
	ListAll(ctx context.Context) ([]domain.Item, error)
	Create(ctx context.Context, input ItemInput) (*domain.Item, error)
	Update(ctx context.Context, id int64, input ItemInput) (*domain.Item, error)
	Delete(ctx context.Context, id int64) error
}
