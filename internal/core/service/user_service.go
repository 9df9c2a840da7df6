package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Levezze/e-commerce-rest-api/internal/core/domain"
	"github.com/Levezze/e-commerce-rest-api/internal/core/ports"
)

// UserService implements profile reads and admin user management.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// List returns every account. An empty table is a valid empty list, not an
// error.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id int64, update ports.UserUpdate) (*domain.User, error) {
	updated, err := s.users.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("user_id", id).Msg("profile updated")
	return updated, nil
}

// Delete removes an account. The primary admin is protected and can never be
// deleted through the API.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if id == domain.PrimaryAdminID {
		return domain.ErrProtectedUser
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		s.logger.Error().Err(err).Int64("user_id", id).Msg("failed to delete user")
		return err
	}

	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
