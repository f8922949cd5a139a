package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"item-catalog/internal/domain"
	"item-catalog/internal/repository"
)

const createItemsTable = `
CREATE TABLE IF NOT EXISTS items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	owner_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type ItemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createItemsTable); err != nil {
		return fmt.Errorf("create items table: %w", err)
	}
	return nil
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) (int64, error) {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO items (title, description, owner_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`,
		item.Title,
		item.Description,
		item.OwnerID,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("item last insert id: %w", err)
	}
	item.ID = id
	return id, nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, title, description, owner_id, created_at, updated_at
FROM items
WHERE id = ?`,
		id,
	)
	return scanItem(row)
}

func (r *ItemRepository) List(ctx context.Context, offset, limit int, filter repository.ItemFilter) ([]domain.Item, error) {
	query := `
SELECT id, title, description, owner_id, created_at, updated_at
FROM items`
	var args []any
	if filter.OwnerID != nil {
		query += `
WHERE owner_id = ?`
		args = append(args, *filter.OwnerID)
	}
	query += `
ORDER BY id ASC
LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

func (r *ItemRepository) Update(ctx context.Context, id int64, update repository.ItemUpdate) (*domain.Item, error) {
	var (
		sets []string
		args []any
	)
	if update.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *update.Title)
	}
	if update.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *update.Description)
	}

	if len(sets) > 0 {
		sets = append(sets, "updated_at = ?")
		args = append(args, time.Now().UTC())
		args = append(args, id)

		res, err := r.db.ExecContext(ctx,
			fmt.Sprintf(`UPDATE items SET %s WHERE id = ?`, strings.Join(sets, ", ")),
			args...,
		)
		if err != nil {
			return nil, fmt.Errorf("update item: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("update item rows affected: %w", err)
		}
		if affected == 0 {
			return nil, fmt.Errorf("update item: %w", domain.ErrNotFound)
		}
	}

	return r.GetByID(ctx, id)
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete item rows affected: %w", err)
	}
	return affected > 0, nil
}

func scanItem(row interface {
	Scan(dest ...any) error
}) (*domain.Item, error) {
	var item domain.Item
	if err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&item.OwnerID,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("item: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}
	return &item, nil
}
