package ports

import (
	"context"

	"github.com/Levezze/e-commerce-rest-api/internal/core/domain"
)

// UserService covers profile reads and the admin user-management operations.
type UserService interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateProfile(ctx context.Context, id int64, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
