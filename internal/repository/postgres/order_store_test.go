package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/semaphore"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return &DB{
		DB:  sqlx.NewDb(mockDB, "sqlmock"),
		sem: semaphore.NewWeighted(10),
	}, mock
}

func TestOrderStore_ListByDateRange_DecodesPayload(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewOrderStore(db)

	start := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	createdAt := start.Add(36 * time.Hour)

	payload := []byte(`{
		"customerName": "Walk-in",
		"total": "42.50",
		"items": [{"productId": "red-velvet", "quantity": 2, "price": 21.25}]
	}`)

	rows := sqlmock.NewRows([]string{"id", "created_at", "status", "payload"}).
		AddRow("ord-1", createdAt, "completed", payload)

	mock.ExpectQuery("SELECT id, created_at, status, payload").
		WithArgs(start, end).
		WillReturnRows(rows)

	orders, err := store.ListByDateRange(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	order := orders[0]
	assert.Equal(t, "ord-1", order.ID)
	assert.Equal(t, createdAt, order.CreatedAt)
	assert.Equal(t, "completed", order.Status)
	assert.Equal(t, "Walk-in", order.CustomerName)
	assert.Equal(t, "42.50", order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "red-velvet", order.Items[0].ProductID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderStore_ListByDateRange_KeepsMalformedPayloadAsBareRecord(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewOrderStore(db)

	start := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	createdAt := start.Add(time.Hour)

	rows := sqlmock.NewRows([]string{"id", "created_at", "status", "payload"}).
		AddRow("ord-bad", createdAt, "pending", []byte(`{not json`))

	mock.ExpectQuery("SELECT id, created_at, status, payload").
		WithArgs(start, end).
		WillReturnRows(rows)

	orders, err := store.ListByDateRange(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	assert.Equal(t, "ord-bad", orders[0].ID)
	assert.Equal(t, "pending", orders[0].Status)
	assert.Empty(t, orders[0].Items)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_ReadsHeldToConcurrencyLimit(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewOrderStore(db)

	// Saturate the semaphore so the next read has to wait for a permit.
	require.NoError(t, db.sem.Acquire(context.Background(), 10))
	defer db.sem.Release(10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.ListRecent(ctx, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not acquire semaphore")

	// The query never reached the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderStore_ListRecent_DefaultsLimit(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewOrderStore(db)

	rows := sqlmock.NewRows([]string{"id", "created_at", "status", "payload"})
	mock.ExpectQuery("SELECT id, created_at, status, payload").
		WithArgs(5).
		WillReturnRows(rows)

	orders, err := store.ListRecent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, orders)

	assert.NoError(t, mock.ExpectationsWereMet())
}
