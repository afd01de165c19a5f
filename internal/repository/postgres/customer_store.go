package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/domain"
)

type customerStore struct {
	db *DB
}

func NewCustomerStore(db *DB) *customerStore {
	return &customerStore{db: db}
}

func (s *customerStore) CountCreatedBetween(ctx context.Context, start, end time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM customers
		WHERE created_at >= $1 AND created_at < $2
	`

	var count int
	if err := s.db.GetContext(ctx, &count, query, start, end); err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}

	return count, nil
}

func (s *customerStore) ListAll(ctx context.Context) ([]domain.Customer, error) {
	query := `
		SELECT id, name, email, created_at
		FROM customers
		ORDER BY created_at DESC
	`

	var customers []domain.Customer
	if err := s.db.SelectContext(ctx, &customers, query); err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}
