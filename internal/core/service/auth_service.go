package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Levezze/e-commerce-rest-api/internal/core/domain"
	"github.com/Levezze/e-commerce-rest-api/internal/core/ports"
)

// hashCost is the bcrypt work factor. Fixed so stored hashes stay uniform.
const hashCost = 10

// AuthService implements registration and login.
type AuthService struct {
	users   ports.UserRepository
	tokens  ports.TokenIssuer
	limiter ports.LoginLimiter
	logger  zerolog.Logger
	now     func() time.Time
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenIssuer, limiter ports.LoginLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:   users,
		tokens:  tokens,
		limiter: limiter,
		logger:  logger,
		now:     time.Now,
	}
}

// Register creates a customer account. The existence check is an early exit
// so no hash is computed for a known-duplicate email; the unique constraint
// at the store remains the authoritative guard under concurrent registration.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		s.logger.Info().Str("email", email).Msg("registration rejected: email already in use")
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		// Role is forced regardless of anything the caller supplied, so a
		// registration payload can never grant privileges.
		Role:      domain.RoleCustomer,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("email", created.Email).Msg("user registered")

	created.PasswordHash = ""
	return created, nil
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password are logged differently but surface as the same error so the
// response never reveals whether an account exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, email)
		if err != nil {
			// A broken throttle must not lock everyone out.
			s.logger.Warn().Err(err).Msg("login limiter unavailable")
		} else if !allowed {
			s.logger.Info().Str("email", email).Msg("login throttled")
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Info().Str("email", email).Msg("login failed: user not found")
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Info().Int64("user_id", user.ID).Msg("login failed: password mismatch")
		return "", nil, domain.ErrInvalidCredentials
	}

	tokenString, err := s.tokens.Issue(user.ID, user.Role, user.Email)
	if err != nil {
		return "", nil, err
	}

	loginAt := s.now().UTC()
	if err := s.users.TouchLastLogin(ctx, user.ID, loginAt); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", user.ID).Msg("failed to stamp last login")
	} else {
		user.LastLogin = &loginAt
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("failed to reset login limiter")
		}
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user logged in")

	user.PasswordHash = ""
	return tokenString, user, nil
}
