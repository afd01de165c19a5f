package report

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/domain"
	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/repository"
	"github.com/rs/zerolog/log"
)

// ErrUnknownReport is returned for report types outside
// sales/inventory/customers.
var ErrUnknownReport = fmt.Errorf("unknown report type")

// Stock statuses derived for inventory rows.
const (
	StockOut = "out-of-stock"
	StockLow = "low-stock"
	StockIn  = "in-stock"
)

// Orchestrator loads scoped data from the external stores and assembles
// normalized report bundles. Each invocation builds its own result; nothing
// is shared or cached here.
type Orchestrator struct {
	orders    repository.OrderStore
	customers repository.CustomerStore
	inventory repository.InventoryStore
	catalog   repository.CatalogStore
}

// NewOrchestrator wires the orchestrator to its stores.
func NewOrchestrator(
	orders repository.OrderStore,
	customers repository.CustomerStore,
	inventory repository.InventoryStore,
	catalog repository.CatalogStore,
) *Orchestrator {
	return &Orchestrator{
		orders:    orders,
		customers: customers,
		inventory: inventory,
		catalog:   catalog,
	}
}

// Build assembles the bundle for one report type over one period. A store
// failure yields a bundle marked failed instead of an error, so other
// report types requested in the same view keep rendering.
func (o *Orchestrator) Build(ctx context.Context, reportType string, period domain.Period) (*domain.ReportBundle, error) {
	switch reportType {
	case domain.ReportSales:
		return o.buildSales(ctx, period), nil
	case domain.ReportInventory:
		return o.buildInventory(ctx), nil
	case domain.ReportCustomers:
		return o.buildCustomers(ctx), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownReport, reportType)
	}
}

func failedBundle(reportType string, cols []domain.Column, err error) *domain.ReportBundle {
	log.Error().Err(err).Str("report_type", reportType).Msg("report: store load failed")
	return &domain.ReportBundle{
		Type:         reportType,
		Summary:      map[string]float64{},
		Columns:      cols,
		DetailedRows: []domain.Row{},
		Failed:       true,
		Error:        err.Error(),
	}
}

// SalesColumns describes the sales detail grid.
func SalesColumns() []domain.Column {
	return []domain.Column{
		{Key: "order_id", Label: "Order", Type: domain.ColumnText, Searchable: true},
		{Key: "date", Label: "Date", Type: domain.ColumnDate},
		{Key: "customer", Label: "Customer", Type: domain.ColumnText, Searchable: true},
		{Key: "customer_type", Label: "Type", Type: domain.ColumnText},
		{Key: "payment_method", Label: "Payment", Type: domain.ColumnText},
		{Key: "status", Label: "Status", Type: domain.ColumnText},
		{Key: "product", Label: "Product", Type: domain.ColumnText, Searchable: true},
		{Key: "quantity", Label: "Qty", Type: domain.ColumnQuantity},
		{Key: "unit_price", Label: "Unit Price", Type: domain.ColumnCurrency},
		{Key: "subtotal", Label: "Subtotal", Type: domain.ColumnCurrency},
	}
}

func (o *Orchestrator) buildSales(ctx context.Context, period domain.Period) *domain.ReportBundle {
	cols := SalesColumns()

	orders, err := o.orders.ListByDateRange(ctx, period.Start, period.End)
	if err != nil {
		return failedBundle(domain.ReportSales, cols, fmt.Errorf("load orders: %w", err))
	}

	catalog, err := o.catalog.ProductNames(ctx)
	if err != nil {
		// Name joins are a nicety; the fallback chain still resolves names.
		log.Warn().Err(err).Msg("report: catalog lookup failed, using item fields")
		catalog = map[string]string{}
	}

	var (
		totalRevenue  float64
		totalTax      float64
		totalDelivery float64
		customerSet   = make(map[string]struct{})
		rows          []domain.Row
	)

	for i := range orders {
		ord := &orders[i]
		if !domain.IsCancelled(ord.Status) {
			totalRevenue += ReconcileRevenue(ord)
			totalTax += LooseAmount(ord.Tax)
			totalDelivery += LooseAmount(ord.DeliveryFee)
		}
		customerSet[customerKey(ord)] = struct{}{}
		rows = append(rows, salesRows(ord, catalog)...)
	}

	totalOrders := len(orders)
	avgOrder := 0.0
	if totalOrders > 0 {
		avgOrder = totalRevenue / float64(totalOrders)
	}

	// Explicitly ranged periods bucket over their own [start, end); token
	// periods derive the window from a reference instant, the window start
	// for calendar tokens and the window end for the unbounded one.
	var series *domain.Series
	if period.Token == PeriodCustom {
		series = BucketRangeSeries(orders, period.Start, period.End)
	} else {
		seriesRef := period.Start
		if period.Token == PeriodAll {
			seriesRef = period.End
		}
		series = BucketSeries(orders, period.Token, seriesRef)
	}

	log.Debug().
		Int("orders", totalOrders).
		Int("rows", len(rows)).
		Str("period", period.Token).
		Msg("report: sales bundle assembled")

	return &domain.ReportBundle{
		Type: domain.ReportSales,
		Summary: map[string]float64{
			"totalRevenue":     totalRevenue,
			"totalOrders":      float64(totalOrders),
			"totalCustomers":   float64(len(customerSet)),
			"avgOrderValue":    avgOrder,
			"totalTax":         totalTax,
			"totalDeliveryFee": totalDelivery,
		},
		Series:       series,
		Columns:      cols,
		DetailedRows: rows,
	}
}

// salesRows flattens one order into at least one grid row: one per line
// item, or a single itemless row so the order still appears in the grid.
func salesRows(ord *domain.OrderRecord, catalog map[string]string) []domain.Row {
	base := domain.Row{
		"order_id":       ord.ID,
		"date":           ord.CreatedAt.Format("2006-01-02 15:04:05"),
		"customer":       ord.CustomerName,
		"customer_type":  customerType(ord),
		"payment_method": ord.PaymentMethod,
		"status":         domain.OrderStatusLabel(ord.Status),
	}

	if len(ord.Items) == 0 {
		row := cloneRow(base)
		row["product"] = ""
		row["quantity"] = "0"
		row["unit_price"] = formatAmount(0)
		row["subtotal"] = formatAmount(0)
		return []domain.Row{row}
	}

	rows := make([]domain.Row, 0, len(ord.Items))
	for i := range ord.Items {
		item := &ord.Items[i]
		row := cloneRow(base)
		row["product"] = ResolveProductName(item, catalog)
		row["quantity"] = strconv.Itoa(quantityValue(item.Quantity))
		row["unit_price"] = formatAmount(UnitPrice(item))
		row["subtotal"] = formatAmount(LineRevenue(item))
		rows = append(rows, row)
	}
	return rows
}

// InventoryColumns describes the inventory detail grid.
func InventoryColumns() []domain.Column {
	return []domain.Column{
		{Key: "name", Label: "Item", Type: domain.ColumnText, Searchable: true},
		{Key: "category", Label: "Category", Type: domain.ColumnText, Searchable: true},
		{Key: "quantity", Label: "Quantity", Type: domain.ColumnQuantity},
		{Key: "threshold", Label: "Threshold", Type: domain.ColumnQuantity},
		{Key: "cost_per_unit", Label: "Unit Cost", Type: domain.ColumnCurrency},
		{Key: "total_value", Label: "Value", Type: domain.ColumnCurrency},
		{Key: "stock_status", Label: "Status", Type: domain.ColumnText},
		{Key: "updated_at", Label: "Updated", Type: domain.ColumnDate},
	}
}

func (o *Orchestrator) buildInventory(ctx context.Context) *domain.ReportBundle {
	cols := InventoryColumns()

	items, err := o.inventory.ListAll(ctx)
	if err != nil {
		return failedBundle(domain.ReportInventory, cols, fmt.Errorf("load inventory: %w", err))
	}

	var (
		lowStock   int
		outOfStock int
		totalValue float64
		rows       = make([]domain.Row, 0, len(items))
	)

	for _, item := range items {
		status := StockStatus(item.Quantity, item.Threshold)
		switch status {
		case StockOut:
			outOfStock++
		case StockLow:
			lowStock++
		}
		value := item.Quantity * item.CostPerUnit
		totalValue += value

		rows = append(rows, domain.Row{
			"name":          item.Name,
			"category":      item.Category,
			"quantity":      strconv.FormatFloat(item.Quantity, 'f', -1, 64),
			"threshold":     strconv.FormatFloat(item.Threshold, 'f', -1, 64),
			"cost_per_unit": formatAmount(item.CostPerUnit),
			"total_value":   formatAmount(value),
			"stock_status":  status,
			"updated_at":    item.UpdatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	log.Debug().Int("items", len(items)).Msg("report: inventory bundle assembled")

	return &domain.ReportBundle{
		Type: domain.ReportInventory,
		Summary: map[string]float64{
			"totalItems":      float64(len(items)),
			"lowStockItems":   float64(lowStock),
			"outOfStockItems": float64(outOfStock),
			"totalValue":      totalValue,
		},
		Columns:      cols,
		DetailedRows: rows,
	}
}

// StockStatus derives the display status for an inventory quantity against
// its low-stock threshold.
func StockStatus(quantity, threshold float64) string {
	switch {
	case quantity <= 0:
		return StockOut
	case quantity <= threshold:
		return StockLow
	default:
		return StockIn
	}
}

// CustomerColumns describes the customers detail grid.
func CustomerColumns() []domain.Column {
	return []domain.Column{
		{Key: "customer", Label: "Customer", Type: domain.ColumnText, Searchable: true},
		{Key: "customer_type", Label: "Type", Type: domain.ColumnText},
		{Key: "order_count", Label: "Orders", Type: domain.ColumnQuantity},
		{Key: "total_spent", Label: "Total Spent", Type: domain.ColumnCurrency},
		{Key: "last_order", Label: "Last Order", Type: domain.ColumnDate},
	}
}

type customerActivity struct {
	name       string
	kind       string
	orderCount int
	totalSpent float64
	lastOrder  string
}

func (o *Orchestrator) buildCustomers(ctx context.Context) *domain.ReportBundle {
	cols := CustomerColumns()

	customers, err := o.customers.ListAll(ctx)
	if err != nil {
		return failedBundle(domain.ReportCustomers, cols, fmt.Errorf("load customers: %w", err))
	}

	// All-time linkage: the customer report classifies and totals across the
	// full order history, not just the selected window.
	allPeriod := ResolvePeriod(PeriodAll, nowFn())
	orders, err := o.orders.ListByDateRange(ctx, allPeriod.Start, allPeriod.End)
	if err != nil {
		return failedBundle(domain.ReportCustomers, cols, fmt.Errorf("load orders: %w", err))
	}

	activity := make(map[string]*customerActivity)
	var keys []string

	ensure := func(key, name, kind string) *customerActivity {
		a, ok := activity[key]
		if !ok {
			a = &customerActivity{name: name, kind: kind}
			activity[key] = a
			keys = append(keys, key)
		}
		return a
	}

	for _, c := range customers {
		ensure("ref:"+c.ID, c.Name, "registered")
	}

	for i := range orders {
		ord := &orders[i]
		var a *customerActivity
		if ord.CustomerRef != "" {
			a = ensure("ref:"+ord.CustomerRef, ord.CustomerName, "registered")
			if a.name == "" {
				a.name = ord.CustomerName
			}
		} else {
			// No persisted account behind these orders: a guest checkout,
			// grouped by the free-text name the storefront captured.
			a = ensure("guest:"+ord.CustomerName, ord.CustomerName, "guest")
		}

		a.orderCount++
		if !domain.IsCancelled(ord.Status) {
			a.totalSpent += ReconcileRevenue(ord)
		}
		ts := ord.CreatedAt.Format("2006-01-02 15:04:05")
		if ts > a.lastOrder {
			a.lastOrder = ts
		}
	}

	var (
		active       int
		totalRevenue float64
		rows         = make([]domain.Row, 0, len(keys))
	)
	for _, key := range keys {
		a := activity[key]
		if a.orderCount > 0 {
			active++
		}
		totalRevenue += a.totalSpent
		rows = append(rows, domain.Row{
			"customer":      a.name,
			"customer_type": a.kind,
			"order_count":   strconv.Itoa(a.orderCount),
			"total_spent":   formatAmount(a.totalSpent),
			"last_order":    a.lastOrder,
		})
	}

	avgSpent := 0.0
	if len(keys) > 0 {
		avgSpent = totalRevenue / float64(len(keys))
	}

	log.Debug().Int("customers", len(keys)).Msg("report: customers bundle assembled")

	return &domain.ReportBundle{
		Type: domain.ReportCustomers,
		Summary: map[string]float64{
			"totalCustomers":      float64(len(keys)),
			"activeCustomers":     float64(active),
			"totalRevenue":        totalRevenue,
			"avgSpentPerCustomer": avgSpent,
		},
		Columns:      cols,
		DetailedRows: rows,
	}
}

func customerKey(ord *domain.OrderRecord) string {
	if ord.CustomerRef != "" {
		return "ref:" + ord.CustomerRef
	}
	return "guest:" + ord.CustomerName
}

func customerType(ord *domain.OrderRecord) string {
	if ord.CustomerRef != "" {
		return "registered"
	}
	return "guest"
}

func cloneRow(r domain.Row) domain.Row {
	out := make(domain.Row, len(r)+4)
	for k, v := range r {
		out[k] = v
	}
	return out
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// nowFn is swapped in tests.
var nowFn = time.Now
