package ports

import "github.com/Levezze/e-commerce-rest-api/internal/core/domain"

// Identity is the verified content of a bearer token, attached to the
// request context by the auth middleware and consumed by the role gate and
// handlers. It lives only for the request.
type Identity struct {
	UserID int64
	Role   domain.Role
	Email  string
}

// TokenIssuer mints signed session tokens after a successful login.
type TokenIssuer interface {
	Issue(userID int64, role domain.Role, email string) (string, error)
}

// TokenVerifier checks a compact token's signature and expiry. Expired
// tokens yield domain.ErrTokenExpired, anything else invalid yields
// domain.ErrTokenInvalid.
type TokenVerifier interface {
	Verify(token string) (*Identity, error)
}
