package report

import (
	"time"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/domain"
	"github.com/rs/zerolog/log"
)

// Period tokens accepted by ResolvePeriod.
const (
	PeriodToday   = "today"
	PeriodWeek    = "week"
	PeriodMonth   = "month"
	PeriodQuarter = "quarter"
	PeriodYear    = "year"
	PeriodAll     = "all"
)

// PeriodCustom marks a period built from an explicit start/end range rather
// than a token. ResolvePeriod never produces it; range-taking callers do.
const PeriodCustom = "custom"

// allPreviousWindow bounds the comparison window for the "all" token. An
// unbounded report still needs a finite "previous" so the deltas stay
// computable; the last 365 days before the window start is the documented
// choice, asymmetric on purpose.
const allPreviousWindow = 365 * 24 * time.Hour

// ResolvePeriod maps a period token to a current window and the window it is
// compared against. Unknown tokens fall back to the calendar month; that is
// the only failure mode.
func ResolvePeriod(token string, now time.Time) domain.Period {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch token {
	case PeriodToday:
		start := midnight
		end := start.AddDate(0, 0, 1)
		return domain.Period{
			Token:         token,
			Start:         start,
			End:           end,
			PreviousStart: start.AddDate(0, 0, -1),
			PreviousEnd:   start,
		}

	case PeriodWeek:
		// Weeks start on Sunday.
		start := midnight.AddDate(0, 0, -int(midnight.Weekday()))
		end := start.AddDate(0, 0, 7)
		return domain.Period{
			Token:         token,
			Start:         start,
			End:           end,
			PreviousStart: start.AddDate(0, 0, -7),
			PreviousEnd:   start,
		}

	case PeriodQuarter:
		quarterMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		start := time.Date(now.Year(), quarterMonth, 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 3, 0)
		return domain.Period{
			Token:         token,
			Start:         start,
			End:           end,
			PreviousStart: start.AddDate(0, -3, 0),
			PreviousEnd:   start,
		}

	case PeriodYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(1, 0, 0)
		return domain.Period{
			Token:         token,
			Start:         start,
			End:           end,
			PreviousStart: start.AddDate(-1, 0, 0),
			PreviousEnd:   start,
		}

	case PeriodAll:
		start := time.Unix(0, 0).In(now.Location())
		return domain.Period{
			Token:         token,
			Start:         start,
			End:           now,
			PreviousStart: start.Add(-allPreviousWindow),
			PreviousEnd:   start,
		}

	case PeriodMonth:
		// handled below

	default:
		log.Warn().Str("token", token).Msg("report: unknown period token, defaulting to month")
	}

	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0)
	return domain.Period{
		Token:         PeriodMonth,
		Start:         start,
		End:           end,
		PreviousStart: start.AddDate(0, -1, 0),
		PreviousEnd:   start,
	}
}
