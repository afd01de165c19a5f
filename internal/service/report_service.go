package service

import (
	"context"
	"sync"
	"time"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/domain"
	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/report"
	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	topProductsLimit  = 5
	salesChartSurface = "reports:sales-trend"
)

// RowsQuery carries the detail-grid criteria from the request. A zero value
// means no filter, no sort, no limit.
type RowsQuery struct {
	Search        string
	SortField     string
	SortDirection string
	Limit         int
}

type ReportService struct {
	orchestrator *report.Orchestrator
	orders       repository.OrderStore
	catalog      repository.CatalogStore
	guard        *report.InflightGuard
	charts       *report.ChartBindings
}

func NewReportService(
	orchestrator *report.Orchestrator,
	orders repository.OrderStore,
	catalog repository.CatalogStore,
	charts *report.ChartBindings,
) *ReportService {
	if charts == nil {
		charts = report.NewChartBindings()
	}
	return &ReportService{
		orchestrator: orchestrator,
		orders:       orders,
		catalog:      catalog,
		guard:        report.NewInflightGuard(),
		charts:       charts,
	}
}

// Build loads one report bundle. A second request for the same type while
// one is loading is dropped with ErrLoadInFlight.
func (s *ReportService) Build(ctx context.Context, reportType string, period domain.Period) (*domain.ReportBundle, error) {
	release, err := s.guard.Begin(reportType)
	if err != nil {
		return nil, err
	}
	defer release()

	return s.orchestrator.Build(ctx, reportType, period)
}

// BuildAll loads every report type over the same period. Failed types come
// back as failed bundles; only an unknown type aborts the set.
func (s *ReportService) BuildAll(ctx context.Context, period domain.Period) (map[string]*domain.ReportBundle, error) {
	types := []string{domain.ReportSales, domain.ReportInventory, domain.ReportCustomers}

	var mu sync.Mutex
	bundles := make(map[string]*domain.ReportBundle, len(types))

	g, ctx := errgroup.WithContext(ctx)
	for _, reportType := range types {
		reportType := reportType
		g.Go(func() error {
			bundle, err := s.orchestrator.Build(ctx, reportType, period)
			if err != nil {
				return err
			}
			mu.Lock()
			bundles[reportType] = bundle
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return bundles, nil
}

// SalesReport assembles the sales page payload over an explicit date range.
func (s *ReportService) SalesReport(ctx context.Context, start, end time.Time) (*domain.SalesReport, error) {
	period := rangePeriod(start, end)

	bundle, err := s.Build(ctx, domain.ReportSales, period)
	if err != nil {
		return nil, err
	}

	top, err := s.topProducts(ctx, period)
	if err != nil {
		return nil, err
	}

	// The trend chart surface follows the latest load.
	releaseChart := s.charts.Rebind(salesChartSurface)
	defer releaseChart()

	return &domain.SalesReport{
		Summary: bundle.Summary,
		ChartData: domain.SalesChartData{
			SalesTrend:  bundle.Series,
			TopProducts: top,
		},
		DetailedOrders: bundle.DetailedRows,
	}, nil
}

// Rows applies the detail-grid criteria to a freshly built bundle. Every
// call recomputes from the master rows, so criteria never compound across
// requests.
func (s *ReportService) Rows(ctx context.Context, reportType string, period domain.Period, q RowsQuery) ([]domain.Column, []domain.Row, error) {
	bundle, err := s.Build(ctx, reportType, period)
	if err != nil {
		return nil, nil, err
	}

	view := report.NewTableView(bundle.Columns, bundle.DetailedRows)
	if q.Search != "" {
		view.Filter(q.Search)
	}
	if q.SortField != "" {
		view.Sort(q.SortField, q.SortDirection)
	}
	if q.Limit > 0 {
		view.Limit(q.Limit)
	}

	return bundle.Columns, view.Rows(), nil
}

func (s *ReportService) topProducts(ctx context.Context, period domain.Period) ([]domain.RankedEntity, error) {
	orders, err := s.orders.ListByDateRange(ctx, period.Start, period.End)
	if err != nil {
		return nil, err
	}

	names, err := s.catalog.ProductNames(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("report: catalog names unavailable, falling back to order payloads")
		names = nil
	}

	return report.TopN(report.RankProducts(orders, names), topProductsLimit), nil
}

// rangePeriod wraps an explicit range as a period. The comparison window is
// the same length, ending where the range starts.
func rangePeriod(start, end time.Time) domain.Period {
	if end.Before(start) {
		start, end = end, start
	}
	span := end.Sub(start)
	return domain.Period{
		Token:         report.PeriodCustom,
		Start:         start,
		End:           end,
		PreviousStart: start.Add(-span),
		PreviousEnd:   start,
	}
}
