package repository

import (
	"context"
	"time"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/domain"
)

// OrderStore reads order snapshots scoped to a date range. The engine treats
// the records as read-only; they are created elsewhere by order placement.
type OrderStore interface {
	ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.OrderRecord, error)
	ListRecent(ctx context.Context, limit int) ([]domain.OrderRecord, error)
}

// CustomerStore reads registered customer accounts.
type CustomerStore interface {
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int, error)
	ListAll(ctx context.Context) ([]domain.Customer, error)
}

// InventoryStore reads the full stock listing.
type InventoryStore interface {
	ListAll(ctx context.Context) ([]domain.InventoryItem, error)
}

// ReviewStore reads customer ratings scoped to a date range.
type ReviewStore interface {
	ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.Review, error)
}

// CatalogStore resolves product identifiers to display names.
type CatalogStore interface {
	ProductNames(ctx context.Context) (map[string]string, error)
}
