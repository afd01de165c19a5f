package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/domain"
)

type reviewStore struct {
	db *DB
}

func NewReviewStore(db *DB) *reviewStore {
	return &reviewStore{db: db}
}

func (s *reviewStore) ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.Review, error) {
	query := `
		SELECT id, order_id, rating, created_at
		FROM reviews
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at ASC
	`

	var reviews []domain.Review
	if err := s.db.SelectContext(ctx, &reviews, query, start, end); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}
