package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/domain"
	"github.com/rs/zerolog/log"
)

// orderStore reads order snapshots. Orders land in postgres as a JSONB
// payload written by the storefront; the indexed columns exist only for
// range scans, the payload is the source of truth for amounts and items.
type orderStore struct {
	db *DB
}

func NewOrderStore(db *DB) *orderStore {
	return &orderStore{db: db}
}

type orderRow struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	Status    string    `db:"status"`
	Payload   []byte    `db:"payload"`
}

func (s *orderStore) ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.OrderRecord, error) {
	query := `
		SELECT id, created_at, status, payload
		FROM orders
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at ASC
	`

	var rows []orderRow
	if err := s.db.SelectContext(ctx, &rows, query, start, end); err != nil {
		return nil, fmt.Errorf("failed to list orders by date range: %w", err)
	}

	return s.decodeRows(rows), nil
}

func (s *orderStore) ListRecent(ctx context.Context, limit int) ([]domain.OrderRecord, error) {
	if limit <= 0 {
		limit = 5
	}

	query := `
		SELECT id, created_at, status, payload
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1
	`

	var rows []orderRow
	if err := s.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list recent orders: %w", err)
	}

	return s.decodeRows(rows), nil
}

// decodeRows unmarshals each payload and pins the indexed columns over
// whatever the document claims. A malformed payload is logged and kept as
// a bare record so counts stay honest.
func (s *orderStore) decodeRows(rows []orderRow) []domain.OrderRecord {
	orders := make([]domain.OrderRecord, 0, len(rows))
	for _, row := range rows {
		var record domain.OrderRecord
		if len(row.Payload) > 0 {
			if err := json.Unmarshal(row.Payload, &record); err != nil {
				log.Warn().Err(err).Str("order_id", row.ID).Msg("could not decode order payload")
				record = domain.OrderRecord{}
			}
		}
		record.ID = row.ID
		record.CreatedAt = row.CreatedAt
		record.Status = row.Status
		orders = append(orders, record)
	}
	return orders
}
