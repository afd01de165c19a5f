package postgres

import (
	"context"
	"fmt"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/domain"
)

type catalogStore struct {
	db *DB
}

func NewCatalogStore(db *DB) *catalogStore {
	return &catalogStore{db: db}
}

func (s *catalogStore) ProductNames(ctx context.Context) (map[string]string, error) {
	query := `
		SELECT id, name
		FROM products
	`

	var products []domain.CatalogProduct
	if err := s.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("failed to list catalog products: %w", err)
	}

	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	return names, nil
}
