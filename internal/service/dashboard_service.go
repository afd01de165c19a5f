package service

import (
	"context"
	"time"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/cache"
	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/domain"
	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/report"
	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	popularProductsLimit  = 10
	popularProductsWindow = 30 * 24 * time.Hour
	ratingWindow          = 30 * 24 * time.Hour
	recentOrdersLimit     = 5
	dashboardChartSurface = "dashboard:revenue"
)

type DashboardService struct {
	orders    repository.OrderStore
	customers repository.CustomerStore
	reviews   repository.ReviewStore
	catalog   repository.CatalogStore
	cache     cache.DashboardStatsCache
	guard     *report.InflightGuard
	charts    *report.ChartBindings
}

func NewDashboardService(
	orders repository.OrderStore,
	customers repository.CustomerStore,
	reviews repository.ReviewStore,
	catalog repository.CatalogStore,
	cacheImpl cache.DashboardStatsCache,
	charts *report.ChartBindings,
) *DashboardService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopDashboardStatsCache()
	}
	if charts == nil {
		charts = report.NewChartBindings()
	}
	return &DashboardService{
		orders:    orders,
		customers: customers,
		reviews:   reviews,
		catalog:   catalog,
		cache:     cacheImpl,
		guard:     report.NewInflightGuard(),
		charts:    charts,
	}
}

// GetStats assembles the dashboard payload for one period token. Concurrent
// requests for the same token are dropped, not queued; the caller retries.
func (s *DashboardService) GetStats(ctx context.Context, periodToken string) (*domain.DashboardStats, error) {
	release, err := s.guard.Begin("dashboard:" + periodToken)
	if err != nil {
		return nil, err
	}
	defer release()

	if stats, ok, err := s.cache.GetStats(ctx, periodToken); err == nil && ok {
		return stats, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("dashboard: cache get stats failed")
	}

	period := report.ResolvePeriod(periodToken, time.Now())

	current, err := s.orders.ListByDateRange(ctx, period.Start, period.End)
	if err != nil {
		return nil, err
	}
	previous, err := s.orders.ListByDateRange(ctx, period.PreviousStart, period.PreviousEnd)
	if err != nil {
		return nil, err
	}

	newCustomers, err := s.customers.CountCreatedBetween(ctx, period.Start, period.End)
	if err != nil {
		return nil, err
	}
	prevCustomers, err := s.customers.CountCreatedBetween(ctx, period.PreviousStart, period.PreviousEnd)
	if err != nil {
		return nil, err
	}

	// The rating metric always compares trailing 30-day windows, whatever
	// period the rest of the dashboard is scoped to.
	now := time.Now()
	currentReviews, err := s.reviews.ListByDateRange(ctx, now.Add(-ratingWindow), now)
	if err != nil {
		return nil, err
	}
	previousReviews, err := s.reviews.ListByDateRange(ctx, now.Add(-2*ratingWindow), now.Add(-ratingWindow))
	if err != nil {
		return nil, err
	}

	popular, err := s.popularProducts(ctx, period.End)
	if err != nil {
		return nil, err
	}

	recent, err := s.orders.ListRecent(ctx, recentOrdersLimit)
	if err != nil {
		return nil, err
	}

	revenue := report.RevenueMetric("Total Revenue", current, previous)
	orders := report.CountMetric("Total Orders", len(current), len(previous))
	customers := report.CountMetric("New Customers", newCustomers, prevCustomers)
	rating := report.RatingMetric("Average Rating", currentReviews, previousReviews)

	// The revenue chart follows whatever period is loaded last; rebinding
	// releases the previous surface owner.
	releaseChart := s.charts.Rebind(dashboardChartSurface)
	defer releaseChart()

	stats := &domain.DashboardStats{
		TotalOrders:     len(current),
		OrdersChange:    orders.PercentDelta,
		TotalRevenue:    revenue.CurrentValue,
		RevenueChange:   revenue.PercentDelta,
		NewCustomers:    newCustomers,
		CustomersChange: customers.PercentDelta,
		AvgRating:       rating.CurrentValue,
		RatingChange:    rating.PercentDelta,
		PopularProducts: popular,
		Orders:          current,
		RecentOrders:    recent,
		Period:          period.Token,
		DateRange:       period.DateRange(),
	}

	if err := s.cache.SetStats(ctx, periodToken, stats); err != nil {
		log.Warn().Err(err).Msg("dashboard: cache set stats failed")
	}

	return stats, nil
}

// popularProducts ranks sales over a trailing window ending at the period
// boundary, independent of the selected token.
func (s *DashboardService) popularProducts(ctx context.Context, end time.Time) ([]domain.RankedEntity, error) {
	orders, err := s.orders.ListByDateRange(ctx, end.Add(-popularProductsWindow), end)
	if err != nil {
		return nil, err
	}

	names, err := s.catalog.ProductNames(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("dashboard: catalog names unavailable, falling back to order payloads")
		names = nil
	}

	return report.TopN(report.RankProducts(orders, names), popularProductsLimit), nil
}
