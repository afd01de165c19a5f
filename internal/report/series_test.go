package report

import (
	"testing"
	"time"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketSeries_BucketCountsPerToken(t *testing.T) {
	tests := []struct {
		token string
		want  int
	}{
		{PeriodToday, 8},
		{PeriodWeek, 7},
		{PeriodYear, 12},
		{PeriodAll, 6},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			s := BucketSeries(nil, tt.token, refNow)
			assert.Len(t, s.Labels, tt.want)
			assert.Len(t, s.Revenue, tt.want)
			assert.Len(t, s.Counts, tt.want)
		})
	}
}

func TestBucketSeries_MonthWeeklyBucketsTruncated(t *testing.T) {
	// August 2026 has 31 days: weeks of 7,7,7,7 then a 3-day remainder.
	s := BucketSeries(nil, PeriodMonth, refNow)

	require.Len(t, s.Labels, 5)
	assert.Equal(t, "Week 1", s.Labels[0])
	assert.Equal(t, "Week 5", s.Labels[4])
}

func TestBucketSeries_AssignsRecordsAndZeroFills(t *testing.T) {
	orders := []domain.OrderRecord{
		{ID: "a", Status: "completed", Total: 10.0, CreatedAt: time.Date(2026, 8, 16, 8, 0, 0, 0, time.UTC)},  // Sunday
		{ID: "b", Status: "completed", Total: 20.0, CreatedAt: time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC)}, // Monday
		{ID: "c", Status: "cancelled", Total: 99.0, CreatedAt: time.Date(2026, 8, 17, 13, 0, 0, 0, time.UTC)},
		{ID: "d", Status: "completed", Total: 5.0, CreatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)}, // outside the week
	}

	s := BucketSeries(orders, PeriodWeek, refNow)
	require.Len(t, s.Labels, 7)
	assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, s.Labels)

	assert.Equal(t, []float64{10, 20, 0, 0, 0, 0, 0}, s.Revenue)
	assert.Equal(t, []int{1, 1, 0, 0, 0, 0, 0}, s.Counts)
}

func TestBucketSeries_TodayBucketBoundaries(t *testing.T) {
	orders := []domain.OrderRecord{
		{ID: "a", Total: 4.0, CreatedAt: time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC)},   // first instant
		{ID: "b", Total: 6.0, CreatedAt: time.Date(2026, 8, 19, 2, 59, 59, 0, time.UTC)}, // still bucket 0
		{ID: "c", Total: 8.0, CreatedAt: time.Date(2026, 8, 19, 3, 0, 0, 0, time.UTC)},   // bucket 1, half-open
	}

	s := BucketSeries(orders, PeriodToday, refNow)

	assert.Equal(t, "00:00", s.Labels[0])
	assert.Equal(t, 10.0, s.Revenue[0])
	assert.Equal(t, 8.0, s.Revenue[1])
	assert.Equal(t, 2, s.Counts[0])
	assert.Equal(t, 1, s.Counts[1])
}

func TestBucketSeries_AllTrailingSixMonths(t *testing.T) {
	s := BucketSeries(nil, PeriodAll, refNow)

	require.Len(t, s.Labels, 6)
	assert.Equal(t, "Mar 2026", s.Labels[0])
	assert.Equal(t, "Aug 2026", s.Labels[5])
}

func sumSeries(s *domain.Series) (revenue float64, count int) {
	for i := range s.Revenue {
		revenue += s.Revenue[i]
		count += s.Counts[i]
	}
	return revenue, count
}

func TestBucketRangeSeries_DailyForShortRange(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC)

	s := BucketRangeSeries(nil, start, end)

	require.Len(t, s.Labels, 7)
	assert.Equal(t, "Aug 1", s.Labels[0])
	assert.Equal(t, "Aug 7", s.Labels[6])
}

func TestBucketRangeSeries_MultiMonthRangeKeepsEveryRecord(t *testing.T) {
	// A 61-day range crosses two month boundaries; records from every month
	// must land in some bucket, not just the first calendar month.
	start := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	orders := []domain.OrderRecord{
		{ID: "a", Status: "completed", Total: 30.0, CreatedAt: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)},
		{ID: "b", Status: "completed", Total: 20.0, CreatedAt: time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)},
		{ID: "c", Status: "completed", Total: "12.50", CreatedAt: time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)},
		{ID: "d", Status: "cancelled", Total: 99.0, CreatedAt: time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC)},
	}

	s := BucketRangeSeries(orders, start, end)

	// Weekly buckets from Aug 15, last one truncated at Oct 15.
	require.Len(t, s.Labels, 9)
	assert.Equal(t, "Aug 15", s.Labels[0])

	revenue, count := sumSeries(s)
	assert.InDelta(t, 62.5, revenue, 1e-9)
	assert.Equal(t, 3, count)
}

func TestBucketRangeSeries_MonthlyForLongRange(t *testing.T) {
	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC)

	orders := []domain.OrderRecord{
		{ID: "a", Status: "completed", Total: 10.0, CreatedAt: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "b", Status: "completed", Total: 20.0, CreatedAt: time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC)},
		{ID: "c", Status: "completed", Total: 40.0, CreatedAt: time.Date(2026, 12, 19, 23, 0, 0, 0, time.UTC)},
	}

	s := BucketRangeSeries(orders, start, end)

	require.Len(t, s.Labels, 12)
	assert.Equal(t, "Jan 2026", s.Labels[0])
	assert.Equal(t, "Dec 2026", s.Labels[11])

	revenue, count := sumSeries(s)
	assert.InDelta(t, 70.0, revenue, 1e-9)
	assert.Equal(t, 3, count)
}

func TestBucketRangeSeries_EmptyRange(t *testing.T) {
	at := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	s := BucketRangeSeries(nil, at, at)
	assert.Empty(t, s.Labels)
	assert.Empty(t, s.Revenue)
	assert.Empty(t, s.Counts)
}
