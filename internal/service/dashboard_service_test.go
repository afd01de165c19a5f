package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderStore struct {
	orders []domain.OrderRecord
	err    error
}

func (s *stubOrderStore) ListByDateRange(_ context.Context, start, end time.Time) ([]domain.OrderRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []domain.OrderRecord
	for _, o := range s.orders {
		if !o.CreatedAt.Before(start) && o.CreatedAt.Before(end) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *stubOrderStore) ListRecent(_ context.Context, limit int) ([]domain.OrderRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit > len(s.orders) {
		limit = len(s.orders)
	}
	return s.orders[:limit], nil
}

type stubCustomerStore struct {
	customers []domain.Customer
}

func (s *stubCustomerStore) CountCreatedBetween(_ context.Context, start, end time.Time) (int, error) {
	count := 0
	for _, c := range s.customers {
		if !c.CreatedAt.Before(start) && c.CreatedAt.Before(end) {
			count++
		}
	}
	return count, nil
}

func (s *stubCustomerStore) ListAll(_ context.Context) ([]domain.Customer, error) {
	return s.customers, nil
}

type stubReviewStore struct {
	reviews []domain.Review
}

func (s *stubReviewStore) ListByDateRange(_ context.Context, start, end time.Time) ([]domain.Review, error) {
	var out []domain.Review
	for _, r := range s.reviews {
		if !r.CreatedAt.Before(start) && r.CreatedAt.Before(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

type stubCatalogStore struct {
	names map[string]string
	err   error
}

func (s *stubCatalogStore) ProductNames(_ context.Context) (map[string]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.names, nil
}

func TestDashboardService_GetStats(t *testing.T) {
	recent := time.Now().Add(-2 * time.Hour)

	orders := &stubOrderStore{orders: []domain.OrderRecord{
		{
			ID:           "ord-1",
			CreatedAt:    recent,
			Status:       "completed",
			CustomerName: "Mara",
			Total:        30.0,
			Items:        []domain.OrderLineItem{{ProductID: "red-velvet", Quantity: 2, Price: 15.0}},
		},
		{
			ID:        "ord-2",
			CreatedAt: recent.Add(time.Minute),
			Status:    "pending",
			Total:     "12.50",
			Items:     []domain.OrderLineItem{{ProductID: "eclair", Quantity: 1, Price: 12.5}},
		},
	}}
	customers := &stubCustomerStore{customers: []domain.Customer{
		{ID: "c1", CreatedAt: recent},
	}}
	reviews := &stubReviewStore{reviews: []domain.Review{
		{ID: "r1", Rating: 4, CreatedAt: recent},
		{ID: "r2", Rating: 5, CreatedAt: recent},
	}}
	catalog := &stubCatalogStore{names: map[string]string{"red-velvet": "Red Velvet Cake"}}

	svc := NewDashboardService(orders, customers, reviews, catalog, nil, nil)

	stats, err := svc.GetStats(context.Background(), "all")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalOrders)
	assert.InDelta(t, 42.5, stats.TotalRevenue, 1e-9)
	assert.Equal(t, 1, stats.NewCustomers)
	assert.InDelta(t, 4.5, stats.AvgRating, 1e-9)

	// Nothing predates the unbounded window, so every delta pins to the
	// zero-previous sentinel.
	assert.Equal(t, 100, stats.OrdersChange)
	assert.Equal(t, 100, stats.RevenueChange)
	assert.Equal(t, 100, stats.CustomersChange)
	assert.Equal(t, 100, stats.RatingChange)

	require.NotEmpty(t, stats.PopularProducts)
	assert.Equal(t, "Red Velvet Cake", stats.PopularProducts[0].Name)

	assert.Len(t, stats.RecentOrders, 2)
	assert.Equal(t, "all", stats.Period)
	assert.NotEmpty(t, stats.DateRange)
}

func TestDashboardService_GetStats_StoreFailure(t *testing.T) {
	orders := &stubOrderStore{err: errors.New("connection refused")}
	svc := NewDashboardService(orders, &stubCustomerStore{}, &stubReviewStore{}, &stubCatalogStore{}, nil, nil)

	_, err := svc.GetStats(context.Background(), "month")
	require.Error(t, err)
}
