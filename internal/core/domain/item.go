package domain

import (
	"fmt"
	"time"
)

// ItemCategory is the closed set of catalog categories.
type ItemCategory string

const (
	CategoryGeneric   ItemCategory = "generic"
	CategoryModule    ItemCategory = "module"
	CategoryAccessory ItemCategory = "accessory"
)

// ParseItemCategory validates a stored or transmitted category string.
func ParseItemCategory(s string) (ItemCategory, error) {
	switch ItemCategory(s) {
	case CategoryGeneric, CategoryModule, CategoryAccessory:
		return ItemCategory(s), nil
	default:
		return "", fmt.Errorf("unknown item category: %q", s)
	}
}

// Item is a catalog entry. Hidden items are visible only through the
// management endpoints.
type Item struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	PriceCents  int64        `json:"price_cents"`
	Category    ItemCategory `json:"category"`
	InStock     bool         `json:"in_stock"`
	IsFeatured  bool         `json:"is_featured"`
	IsHidden    bool         `json:"is_hidden"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
