package report

import (
	"sort"
	"strings"
	"time"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/domain"
)

// rowTimeFormats are tried in order when comparing date columns.
var rowTimeFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// TableView is the pure filter/sort/limit pipeline behind the detail grid.
// The master row list is immutable; every operation recomputes the working
// view from it in fixed order (filter, then sort, then limit), so
// re-invoking with different arguments never compounds prior criteria.
type TableView struct {
	columns []domain.Column
	master  []domain.Row

	term    string
	sortKey string
	sortDir string
	limit   int // -1 means no limit
}

// NewTableView copies the given rows into an immutable master list.
func NewTableView(columns []domain.Column, rows []domain.Row) *TableView {
	master := make([]domain.Row, len(rows))
	copy(master, rows)
	return &TableView{
		columns: columns,
		master:  master,
		limit:   -1,
	}
}

// Filter sets the free-text term and returns the recomputed view. An empty
// term is the identity filter.
func (v *TableView) Filter(term string) []domain.Row {
	v.term = term
	return v.Rows()
}

// Sort sets the sort column and direction ("asc" or "desc") and returns the
// recomputed view. Unknown columns leave the master order untouched.
func (v *TableView) Sort(columnKey, direction string) []domain.Row {
	v.sortKey = columnKey
	if direction != "asc" && direction != "desc" {
		direction = "asc"
	}
	v.sortDir = direction
	return v.Rows()
}

// Limit caps the view to the first n rows; a negative n clears the cap.
func (v *TableView) Limit(n int) []domain.Row {
	v.limit = n
	return v.Rows()
}

// Rows recomputes the working view from the master list.
func (v *TableView) Rows() []domain.Row {
	rows := v.filtered()
	rows = v.sorted(rows)
	if v.limit >= 0 && v.limit < len(rows) {
		rows = rows[:v.limit]
	}
	return rows
}

func (v *TableView) filtered() []domain.Row {
	out := make([]domain.Row, 0, len(v.master))
	term := strings.ToLower(strings.TrimSpace(v.term))
	if term == "" {
		return append(out, v.master...)
	}

	for _, row := range v.master {
		for _, col := range v.columns {
			if !col.Searchable {
				continue
			}
			if strings.Contains(strings.ToLower(row[col.Key]), term) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

func (v *TableView) sorted(rows []domain.Row) []domain.Row {
	if v.sortKey == "" {
		return rows
	}
	col, ok := v.column(v.sortKey)
	if !ok {
		return rows
	}

	less := comparatorFor(col)
	sort.SliceStable(rows, func(i, j int) bool {
		return less(rows[i][col.Key], rows[j][col.Key])
	})

	// Descending is the exact reversal of ascending, ties included, so
	// flipping direction on the same column round-trips the row order.
	if v.sortDir == "desc" {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}
	return rows
}

func (v *TableView) column(key string) (domain.Column, bool) {
	for _, col := range v.columns {
		if col.Key == key {
			return col, true
		}
	}
	return domain.Column{}, false
}

func comparatorFor(col domain.Column) func(a, b string) bool {
	switch col.Type {
	case domain.ColumnCurrency, domain.ColumnQuantity:
		return func(a, b string) bool {
			fa, _ := looseFloat(a)
			fb, _ := looseFloat(b)
			return fa < fb
		}
	case domain.ColumnDate:
		return func(a, b string) bool {
			return parseRowTime(a).Before(parseRowTime(b))
		}
	default:
		return func(a, b string) bool {
			return strings.ToLower(a) < strings.ToLower(b)
		}
	}
}

func parseRowTime(s string) time.Time {
	for _, layout := range rowTimeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
