package ports

import (
	"context"

	"github.com/Levezze/e-commerce-rest-api/internal/core/domain"
)

// ItemInput carries the writable fields of a catalog item.
type ItemInput struct {
	Name        string
	Description string
	PriceCents  int64
	Category    domain.ItemCategory
	InStock     bool
	IsFeatured  bool
	IsHidden    bool
}

// ItemRepository defines catalog persistence. List with includeHidden=false
// filters hidden items for the public surface.
type ItemRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Item, error)
	List(ctx context.Context, includeHidden bool) ([]domain.Item, error)
	Create(ctx context.Context, input ItemInput) (*domain.Item, error)
	Update(ctx context.Context, id int64, input ItemInput) (*domain.Item, error)
	Delete(ctx context.Context, id int64) error
}
