package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStores struct {
	orders    []domain.OrderRecord
	customers []domain.Customer
	inventory []domain.InventoryItem
	catalog   map[string]string

	ordersErr    error
	customersErr error
	inventoryErr error
}

func (s *stubStores) ListByDateRange(_ context.Context, start, end time.Time) ([]domain.OrderRecord, error) {
	if s.ordersErr != nil {
		return nil, s.ordersErr
	}
	var out []domain.OrderRecord
	for _, o := range s.orders {
		if !o.CreatedAt.Before(start) && o.CreatedAt.Before(end) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *stubStores) ListRecent(_ context.Context, limit int) ([]domain.OrderRecord, error) {
	if s.ordersErr != nil {
		return nil, s.ordersErr
	}
	if limit > len(s.orders) {
		limit = len(s.orders)
	}
	return s.orders[:limit], nil
}

func (s *stubStores) CountCreatedBetween(context.Context, time.Time, time.Time) (int, error) {
	return len(s.customers), s.customersErr
}

func (s *stubStores) ListAllCustomers(context.Context) ([]domain.Customer, error) {
	return s.customers, s.customersErr
}

func (s *stubStores) ListAll(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.inventory, s.inventoryErr
}

func (s *stubStores) ProductNames(context.Context) (map[string]string, error) {
	return s.catalog, nil
}

// customerStoreAdapter satisfies repository.CustomerStore over stubStores.
type customerStoreAdapter struct{ s *stubStores }

func (a customerStoreAdapter) CountCreatedBetween(ctx context.Context, start, end time.Time) (int, error) {
	return a.s.CountCreatedBetween(ctx, start, end)
}

func (a customerStoreAdapter) ListAll(ctx context.Context) ([]domain.Customer, error) {
	return a.s.ListAllCustomers(ctx)
}

func newTestOrchestrator(s *stubStores) *Orchestrator {
	return NewOrchestrator(s, customerStoreAdapter{s}, s, s)
}

func weekOrders() []domain.OrderRecord {
	return []domain.OrderRecord{
		{
			ID: "o1", Status: "completed", CustomerRef: "c1", CustomerName: "Alice",
			CreatedAt: time.Date(2026, 8, 17, 9, 0, 0, 0, time.UTC), // Monday
			Total:     10.0,
			Items:     []domain.OrderLineItem{{ProductID: "croissant", Price: 5.0, Quantity: 2}},
		},
		{
			ID: "o2", Status: "completed", CustomerName: "Walk-in",
			CreatedAt: time.Date(2026, 8, 18, 9, 0, 0, 0, time.UTC), // Tuesday
			Total:     20.0,
			Items: []domain.OrderLineItem{
				{ProductID: "sourdough", Price: 8.0, Quantity: 1},
				{ProductID: "eclair", Price: 6.0, Quantity: 2},
			},
		},
	}
}

func TestOrchestrator_SalesBundle(t *testing.T) {
	stores := &stubStores{orders: weekOrders(), catalog: map[string]string{"croissant": "Butter Croissant"}}
	o := newTestOrchestrator(stores)

	period := ResolvePeriod(PeriodWeek, refNow)
	bundle, err := o.Build(context.Background(), domain.ReportSales, period)
	require.NoError(t, err)
	require.False(t, bundle.Failed)

	assert.Equal(t, 30.0, bundle.Summary["totalRevenue"])
	assert.Equal(t, 2.0, bundle.Summary["totalOrders"])
	assert.Equal(t, 15.0, bundle.Summary["avgOrderValue"])
	assert.Equal(t, 2.0, bundle.Summary["totalCustomers"])

	// One row per (order, line item): 1 + 2.
	require.Len(t, bundle.DetailedRows, 3)
	assert.GreaterOrEqual(t, len(bundle.DetailedRows), len(stores.orders))
	assert.Equal(t, "Butter Croissant", bundle.DetailedRows[0]["product"])
	assert.Equal(t, "registered", bundle.DetailedRows[0]["customer_type"])
	assert.Equal(t, "guest", bundle.DetailedRows[1]["customer_type"])

	require.NotNil(t, bundle.Series)
	assert.Len(t, bundle.Series.Labels, 7)
	assert.Equal(t, 10.0, bundle.Series.Revenue[1]) // Monday
	assert.Equal(t, 20.0, bundle.Series.Revenue[2]) // Tuesday
}

func TestOrchestrator_SalesItemlessOrderStillGetsARow(t *testing.T) {
	stores := &stubStores{orders: []domain.OrderRecord{{
		ID: "empty", Status: "pending", CustomerName: "Bob",
		CreatedAt: time.Date(2026, 8, 17, 9, 0, 0, 0, time.UTC),
	}}}
	o := newTestOrchestrator(stores)

	bundle, err := o.Build(context.Background(), domain.ReportSales, ResolvePeriod(PeriodWeek, refNow))
	require.NoError(t, err)

	require.Len(t, bundle.DetailedRows, 1)
	assert.Equal(t, "0", bundle.DetailedRows[0]["quantity"])
}

func TestOrchestrator_InventoryStockStatuses(t *testing.T) {
	stores := &stubStores{inventory: []domain.InventoryItem{
		{ID: "i1", Name: "Flour", Quantity: 0, Threshold: 5, CostPerUnit: 2},
		{ID: "i2", Name: "Sugar", Quantity: 3, Threshold: 5, CostPerUnit: 1.5},
		{ID: "i3", Name: "Butter", Quantity: 10, Threshold: 5, CostPerUnit: 4},
	}}
	o := newTestOrchestrator(stores)

	bundle, err := o.Build(context.Background(), domain.ReportInventory, ResolvePeriod(PeriodMonth, refNow))
	require.NoError(t, err)

	assert.Equal(t, 3.0, bundle.Summary["totalItems"])
	assert.Equal(t, 1.0, bundle.Summary["outOfStockItems"])
	assert.Equal(t, 1.0, bundle.Summary["lowStockItems"])
	assert.Equal(t, 0*2.0+3*1.5+10*4.0, bundle.Summary["totalValue"])

	require.Len(t, bundle.DetailedRows, 3)
	assert.Equal(t, StockOut, bundle.DetailedRows[0]["stock_status"])
	assert.Equal(t, StockLow, bundle.DetailedRows[1]["stock_status"])
	assert.Equal(t, StockIn, bundle.DetailedRows[2]["stock_status"])
}

func TestOrchestrator_CustomersGuestClassification(t *testing.T) {
	stores := &stubStores{
		orders: weekOrders(),
		customers: []domain.Customer{
			{ID: "c1", Name: "Alice"},
			{ID: "c9", Name: "Dormant Dan"},
		},
	}
	o := newTestOrchestrator(stores)

	nowFn = func() time.Time { return refNow }
	t.Cleanup(func() { nowFn = time.Now })

	bundle, err := o.Build(context.Background(), domain.ReportCustomers, ResolvePeriod(PeriodAll, refNow))
	require.NoError(t, err)

	// Two registered accounts plus one guest derived from an order with no
	// account reference.
	assert.Equal(t, 3.0, bundle.Summary["totalCustomers"])
	assert.Equal(t, 2.0, bundle.Summary["activeCustomers"])
	assert.Equal(t, 30.0, bundle.Summary["totalRevenue"])
	assert.Equal(t, 10.0, bundle.Summary["avgSpentPerCustomer"])

	byName := map[string]domain.Row{}
	for _, row := range bundle.DetailedRows {
		byName[row["customer"]] = row
	}
	assert.Equal(t, "registered", byName["Alice"]["customer_type"])
	assert.Equal(t, "guest", byName["Walk-in"]["customer_type"])
	assert.Equal(t, "0", byName["Dormant Dan"]["order_count"])
}

func TestOrchestrator_StoreFailureYieldsFailedBundle(t *testing.T) {
	stores := &stubStores{ordersErr: errors.New("connection refused")}
	o := newTestOrchestrator(stores)

	bundle, err := o.Build(context.Background(), domain.ReportSales, ResolvePeriod(PeriodWeek, refNow))
	require.NoError(t, err)

	assert.True(t, bundle.Failed)
	assert.Contains(t, bundle.Error, "connection refused")
	assert.Empty(t, bundle.DetailedRows)
	assert.NotNil(t, bundle.Summary)
}

func TestOrchestrator_UnknownReportType(t *testing.T) {
	o := newTestOrchestrator(&stubStores{})

	_, err := o.Build(context.Background(), "finance", ResolvePeriod(PeriodWeek, refNow))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownReport)
}
