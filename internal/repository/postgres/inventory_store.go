package postgres

import (
	"context"
	"fmt"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/domain"
)

type inventoryStore struct {
	db *DB
}

func NewInventoryStore(db *DB) *inventoryStore {
	return &inventoryStore{db: db}
}

func (s *inventoryStore) ListAll(ctx context.Context) ([]domain.InventoryItem, error) {
	query := `
		SELECT id, name, category,
			COALESCE(quantity, 0) AS quantity,
			COALESCE(threshold, 0) AS threshold,
			COALESCE(cost_per_unit, 0) AS cost_per_unit,
			unit, updated_at
		FROM inventory_items
		ORDER BY name ASC
	`

	var items []domain.InventoryItem
	if err := s.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}

	return items, nil
}
