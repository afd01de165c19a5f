package report

import (
	"math"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/domain"
)

// PercentDelta computes the period-over-period change as a rounded
// percentage. A zero previous value yields the fixed sentinel 100 so the
// dashboard always has a finite, bounded number to render; this matches the
// storefront's established behavior and must not be replaced with
// Infinity/null.
func PercentDelta(current, previous float64) int {
	if previous == 0 {
		return 100
	}
	return int(math.Round((current - previous) / previous * 100))
}

// NewMetric builds one dashboard metric from a current and previous value.
func NewMetric(label string, current, previous float64) domain.Metric {
	return domain.Metric{
		Label:         label,
		CurrentValue:  current,
		PreviousValue: previous,
		PercentDelta:  PercentDelta(current, previous),
	}
}

// RevenueMetric sums reconciled revenue over both windows, skipping
// cancelled orders.
func RevenueMetric(label string, current, previous []domain.OrderRecord) domain.Metric {
	return NewMetric(label, SumRevenue(current), SumRevenue(previous))
}

// CountMetric compares plain record counts.
func CountMetric(label string, current, previous int) domain.Metric {
	return NewMetric(label, float64(current), float64(previous))
}

// RatingMetric compares average review ratings across two windows. An empty
// window averages to zero rather than erroring.
func RatingMetric(label string, current, previous []domain.Review) domain.Metric {
	return NewMetric(label, AverageRating(current), AverageRating(previous))
}

// SumRevenue totals reconciled revenue for a record set, excluding
// cancelled orders.
func SumRevenue(orders []domain.OrderRecord) float64 {
	var sum float64
	for i := range orders {
		if domain.IsCancelled(orders[i].Status) {
			continue
		}
		sum += ReconcileRevenue(&orders[i])
	}
	return sum
}

// AverageRating is the mean rating over a review set, zero when empty.
func AverageRating(reviews []domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum / float64(len(reviews))
}
