package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Levezze/e-commerce-rest-api/internal/core/domain"
	"github.com/Levezze/e-commerce-rest-api/internal/core/ports"
)

const itemColumns = "id, name, description, price_cents, category, in_stock, is_featured, is_hidden, created_at, updated_at"

type ItemRepository struct {
	pool *pgxpool.Pool
}

var _ ports.ItemRepository = (*ItemRepository)(nil)

func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*domain.Item, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+itemColumns+`
		FROM items
		WHERE id = $1`, id)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return item, nil
}

func (r *ItemRepository) List(ctx context.Context, includeHidden bool) ([]domain.Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+itemColumns+`
		FROM items
		WHERE $1 OR NOT is_hidden
		ORDER BY id`, includeHidden)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (r *ItemRepository) Create(ctx context.Context, input ports.ItemInput) (*domain.Item, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO items (name, description, price_cents, category, in_stock, is_featured, is_hidden)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+itemColumns,
		input.Name, input.Description, input.PriceCents, string(input.Category),
		input.InStock, input.IsFeatured, input.IsHidden)

	item, err := scanItem(row)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return item, nil
}

func (r *ItemRepository) Update(ctx context.Context, id int64, input ports.ItemInput) (*domain.Item, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE items
		SET name        = $2,
		    description = $3,
		    price_cents = $4,
		    category    = $5,
		    in_stock    = $6,
		    is_featured = $7,
		    is_hidden   = $8,
		    updated_at  = now()
		WHERE id = $1
		RETURNING `+itemColumns,
		id, input.Name, input.Description, input.PriceCents, string(input.Category),
		input.InStock, input.IsFeatured, input.IsHidden)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var (
		item     domain.Item
		category string
	)
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.PriceCents, &category,
		&item.InStock, &item.IsFeatured, &item.IsHidden, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if item.Category, err = domain.ParseItemCategory(category); err != nil {
		return nil, err
	}
	return &item, nil
}
