package handler

import (
	"time"

	"github.com/Levezze/e-commerce-rest-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on 4xx responses.
type errorResponse struct {
	Message string `json:"message"`
}

// --- Request / Response types ---

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// registerResponse exposes only the public fields of the new account.
type registerResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// updateMeRequest is a partial update; nil fields are left unchanged.
type updateMeRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3"`
	Email    *string `json:"email"    validate:"omitempty,email"`
}

type itemRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" validate:"gte=0"`
	Category    string `json:"category"    validate:"required,oneof=generic module accessory"`
	InStock     bool   `json:"in_stock"`
	IsFeatured  bool   `json:"is_featured"`
	IsHidden    bool   `json:"is_hidden"`
}
