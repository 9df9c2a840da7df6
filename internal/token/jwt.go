// Package token mints and verifies the HS256 session tokens issued at login.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Levezze/e-commerce-rest-api/internal/core/domain"
	"github.com/Levezze/e-commerce-rest-api/internal/core/ports"
)

// Issuer is the fixed iss claim stamped on every token.
const Issuer = "ErinWongJewelry"

// TTL is the session lifetime. There is no refresh mechanism; clients must
// re-authenticate after expiry.
const TTL = 24 * time.Hour

// Claims is the full claim set carried by a session token.
type Claims struct {
	jwt.RegisteredClaims
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
}

// JWT issues and verifies session tokens with a symmetric secret supplied at
// construction. now is injectable so expiry boundaries can be tested.
type JWT struct {
	secret []byte
	now    func() time.Time
}

var _ ports.TokenIssuer = (*JWT)(nil)
var _ ports.TokenVerifier = (*JWT)(nil)

func NewJWT(secret string) *JWT {
	return &JWT{secret: []byte(secret), now: time.Now}
}

// NewJWTWithClock is NewJWT with an explicit clock, for tests.
func NewJWTWithClock(secret string, now func() time.Time) *JWT {
	return &JWT{secret: []byte(secret), now: now}
}

// Issue signs a token for the given user valid for TTL from now.
func (j *JWT) Issue(userID int64, role domain.Role, email string) (string, error) {
	now := j.now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
		Role:  string(role),
		Email: email,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(j.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
func (j *JWT) Verify(tokenString string) (*ports.Identity, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return j.secret, nil
	}, jwt.WithTimeFunc(j.now), jwt.WithIssuer(Issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !t.Valid {
		return nil, domain.ErrTokenInvalid
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	return &ports.Identity{UserID: userID, Role: role, Email: claims.Email}, nil
}
