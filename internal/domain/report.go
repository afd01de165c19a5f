package domain

import "time"

// Report types served by the orchestrator.
const (
	ReportSales     = "sales"
	ReportInventory = "inventory"
	ReportCustomers = "customers"
)

// Period is a resolved reporting window plus the window it is compared
// against. For every token except "all" the comparison window ends exactly
// where the current one starts.
type Period struct {
	Token         string    `json:"token"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	PreviousStart time.Time `json:"previous_start"`
	PreviousEnd   time.Time `json:"previous_end"`
}

// DateRange renders the current window for display.
func (p Period) DateRange() string {
	return p.Start.Format("2006-01-02") + " — " + p.End.Format("2006-01-02")
}

// Metric is a single dashboard figure with its period-over-period delta.
// PercentDelta is the fixed sentinel 100 when the previous value is zero.
type Metric struct {
	Label         string  `json:"label"`
	CurrentValue  float64 `json:"current_value"`
	PreviousValue float64 `json:"previous_value"`
	PercentDelta  int     `json:"percent_delta"`
}

// RankedEntity is one product in a revenue ranking.
type RankedEntity struct {
	Name          string  `json:"name"`
	TotalQuantity int     `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
	OrderCount    int     `json:"order_count"`
	AvgPrice      float64 `json:"avg_price"`
}

// Series is chart-ready bucketed data. Revenue and Counts always have
// exactly one entry per label; empty buckets carry zeros.
type Series struct {
	Labels  []string  `json:"labels"`
	Revenue []float64 `json:"revenue"`
	Counts  []int     `json:"counts"`
}

// ColumnType drives the typed comparators in the detail grid.
type ColumnType string

const (
	ColumnCurrency ColumnType = "currency"
	ColumnDate     ColumnType = "date"
	ColumnQuantity ColumnType = "quantity"
	ColumnText     ColumnType = "text"
)

// Column describes one detail-grid column. Searchable columns participate in
// the free-text filter.
type Column struct {
	Key        string     `json:"key"`
	Label      string     `json:"label"`
	Type       ColumnType `json:"type"`
	Searchable bool       `json:"searchable"`
}

// Row is one flattened detail-grid entry keyed by column key. Values are
// rendered strings; the grid re-parses them per column type.
type Row map[string]string

// ReportBundle is the normalized output of the orchestrator for one report
// type. Failed bundles carry the error message but never abort the other
// report types requested in the same view.
type ReportBundle struct {
	Type         string             `json:"type"`
	Summary      map[string]float64 `json:"summary"`
	Series       *Series            `json:"series,omitempty"`
	Columns      []Column           `json:"columns"`
	DetailedRows []Row              `json:"detailed_rows"`
	Failed       bool               `json:"failed,omitempty"`
	Error        string             `json:"error,omitempty"`
}

// DashboardStats is the payload behind the dashboard-stats endpoint.
type DashboardStats struct {
	TotalOrders     int            `json:"total_orders"`
	OrdersChange    int            `json:"orders_change"`
	TotalRevenue    float64        `json:"total_revenue"`
	RevenueChange   int            `json:"revenue_change"`
	NewCustomers    int            `json:"new_customers"`
	CustomersChange int            `json:"customers_change"`
	AvgRating       float64        `json:"avg_rating"`
	RatingChange    int            `json:"rating_change"`
	PopularProducts []RankedEntity `json:"popular_products"`
	Orders          []OrderRecord  `json:"orders"`
	RecentOrders    []OrderRecord  `json:"recent_orders"`
	Period          string         `json:"period"`
	DateRange       string         `json:"date_range"`
}

// SalesReport is the payload behind the sales-report endpoint.
type SalesReport struct {
	Summary        map[string]float64 `json:"summary"`
	ChartData      SalesChartData     `json:"chart_data"`
	DetailedOrders []Row              `json:"detailed_orders"`
}

// SalesChartData groups the two sales charts.
type SalesChartData struct {
	SalesTrend  *Series        `json:"sales_trend"`
	TopProducts []RankedEntity `json:"top_products"`
}
