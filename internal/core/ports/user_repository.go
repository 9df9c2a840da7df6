package ports

import (
	"context"
	"time"

	"github.com/Levezze/e-commerce-rest-api/internal/core/domain"
)

// UserUpdate is a partial profile update. Nil fields are left untouched.
type UserUpdate struct {
	Username *string
	Email    *string
}

// UserRepository defines user persistence. FindByEmail is the only method
// that returns the password hash; it exists for credential verification and
// its result must not leak past the auth service.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
}
