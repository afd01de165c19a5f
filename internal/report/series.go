package report

import (
	"fmt"
	"time"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/domain"
)

type bucket struct {
	label string
	start time.Time
	end   time.Time
}

// BucketSeries slices a record set into period-appropriate chart buckets.
// Every bucket emits a value even when empty, so series length always
// equals label count. Granularity by token: today → eight 3-hour buckets,
// week → 7 days from Sunday, month → calendar weeks (last one truncated),
// year → 12 months, all → trailing 6 months ending at the current month.
func BucketSeries(orders []domain.OrderRecord, token string, now time.Time) *domain.Series {
	return fillBuckets(orders, buildBuckets(token, now))
}

// BucketRangeSeries slices a record set into buckets covering an explicit
// [start, end) range. Granularity follows the span: daily up to a month,
// weekly up to half a year, calendar months beyond that. The final bucket
// truncates to end, so every record in range lands in exactly one bucket.
func BucketRangeSeries(orders []domain.OrderRecord, start, end time.Time) *domain.Series {
	return fillBuckets(orders, buildRangeBuckets(start, end))
}

func fillBuckets(orders []domain.OrderRecord, buckets []bucket) *domain.Series {
	series := &domain.Series{
		Labels:  make([]string, len(buckets)),
		Revenue: make([]float64, len(buckets)),
		Counts:  make([]int, len(buckets)),
	}

	for i, b := range buckets {
		series.Labels[i] = b.label
	}

	for i := range orders {
		o := &orders[i]
		if domain.IsCancelled(o.Status) {
			continue
		}
		for j, b := range buckets {
			if !o.CreatedAt.Before(b.start) && o.CreatedAt.Before(b.end) {
				series.Revenue[j] += ReconcileRevenue(o)
				series.Counts[j]++
				break
			}
		}
	}

	return series
}

const (
	dailyRangeMax  = 31 * 24 * time.Hour
	weeklyRangeMax = 26 * 7 * 24 * time.Hour
)

func buildRangeBuckets(start, end time.Time) []bucket {
	if !end.After(start) {
		return nil
	}

	span := end.Sub(start)
	var buckets []bucket

	switch {
	case span <= dailyRangeMax:
		for s := start; s.Before(end); s = s.AddDate(0, 0, 1) {
			e := s.AddDate(0, 0, 1)
			if e.After(end) {
				e = end
			}
			buckets = append(buckets, bucket{label: s.Format("Jan 2"), start: s, end: e})
		}

	case span <= weeklyRangeMax:
		for s := start; s.Before(end); s = s.AddDate(0, 0, 7) {
			e := s.AddDate(0, 0, 7)
			if e.After(end) {
				e = end
			}
			buckets = append(buckets, bucket{label: s.Format("Jan 2"), start: s, end: e})
		}

	default:
		// Calendar-aligned months; the first and last buckets truncate to
		// the range edges.
		for s := start; s.Before(end); {
			e := time.Date(s.Year(), s.Month(), 1, 0, 0, 0, 0, s.Location()).AddDate(0, 1, 0)
			if e.After(end) {
				e = end
			}
			buckets = append(buckets, bucket{label: s.Format("Jan 2006"), start: s, end: e})
			s = e
		}
	}

	return buckets
}

func buildBuckets(token string, now time.Time) []bucket {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch token {
	case PeriodToday:
		buckets := make([]bucket, 0, 8)
		for i := 0; i < 8; i++ {
			start := midnight.Add(time.Duration(i) * 3 * time.Hour)
			buckets = append(buckets, bucket{
				label: start.Format("15:04"),
				start: start,
				end:   start.Add(3 * time.Hour),
			})
		}
		return buckets

	case PeriodWeek:
		weekStart := midnight.AddDate(0, 0, -int(midnight.Weekday()))
		buckets := make([]bucket, 0, 7)
		for i := 0; i < 7; i++ {
			start := weekStart.AddDate(0, 0, i)
			buckets = append(buckets, bucket{
				label: start.Format("Mon"),
				start: start,
				end:   start.AddDate(0, 0, 1),
			})
		}
		return buckets

	case PeriodYear:
		yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		buckets := make([]bucket, 0, 12)
		for i := 0; i < 12; i++ {
			start := yearStart.AddDate(0, i, 0)
			buckets = append(buckets, bucket{
				label: start.Format("Jan"),
				start: start,
				end:   start.AddDate(0, 1, 0),
			})
		}
		return buckets

	case PeriodAll:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		buckets := make([]bucket, 0, 6)
		for i := 5; i >= 0; i-- {
			start := monthStart.AddDate(0, -i, 0)
			buckets = append(buckets, bucket{
				label: start.Format("Jan 2006"),
				start: start,
				end:   start.AddDate(0, 1, 0),
			})
		}
		return buckets

	default:
		// month, and the fallback for anything unrecognized: weekly buckets
		// spanning the calendar month, final bucket truncated to month end.
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		monthEnd := monthStart.AddDate(0, 1, 0)
		var buckets []bucket
		for i, start := 0, monthStart; start.Before(monthEnd); i, start = i+1, start.AddDate(0, 0, 7) {
			end := start.AddDate(0, 0, 7)
			if end.After(monthEnd) {
				end = monthEnd
			}
			buckets = append(buckets, bucket{
				label: fmt.Sprintf("Week %d", i+1),
				start: start,
				end:   end,
			})
		}
		return buckets
	}
}
