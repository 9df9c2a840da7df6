package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Levezze/e-commerce-rest-api/internal/core/domain"
)

// Constraint names from the users migration.
const (
	constraintUsersEmail    = "users_email_key"
	constraintUsersUsername = "users_username_key"
)

const uniqueViolationCode = "23505"

// mapUserConflict translates a unique-violation on the users table into the
// matching domain conflict sentinel. Returns nil for any other error.
func mapUserConflict(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return nil
	}

	switch pgErr.ConstraintName {
	case constraintUsersEmail:
		return domain.ErrEmailTaken
	case constraintUsersUsername:
		return domain.ErrUsernameTaken
	default:
		return nil
	}
}
