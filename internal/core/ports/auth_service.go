package ports

import (
	"context"

	"github.com/Levezze/e-commerce-rest-api/internal/core/domain"
)

// AuthService implements registration and credential verification.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
