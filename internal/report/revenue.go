package report

import "github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/domain"

// revenueExtractor is one named strategy for pulling a total out of an order
// document. Strategies are evaluated in priority order; the first one that
// finds a numeric value wins.
type revenueExtractor struct {
	name    string
	extract func(o *domain.OrderRecord) (float64, bool)
}

// The canonical extraction order. Individual order documents disagree about
// which field holds the total, so the chain is fixed here rather than
// duck-typed at each call site.
var revenueExtractors = []revenueExtractor{
	{
		name: "total",
		extract: func(o *domain.OrderRecord) (float64, bool) {
			return numericValue(o.Total)
		},
	},
	{
		name: "totalAmount",
		extract: func(o *domain.OrderRecord) (float64, bool) {
			return numericValue(o.TotalAmount)
		},
	},
	{
		name: "payment.amount",
		extract: func(o *domain.OrderRecord) (float64, bool) {
			if o.Payment == nil {
				return 0, false
			}
			return numericValue(o.Payment.Amount)
		},
	},
	{
		name: "subtotal",
		extract: func(o *domain.OrderRecord) (float64, bool) {
			return numericValue(o.Subtotal)
		},
	},
	{
		name: "items",
		extract: func(o *domain.OrderRecord) (float64, bool) {
			if len(o.Items) == 0 {
				return 0, false
			}
			var sum float64
			for i := range o.Items {
				sum += LineRevenue(&o.Items[i])
			}
			return sum, true
		},
	},
}

// ReconcileRevenue resolves a single non-negative total from an order
// record. It never fails: an order with no usable monetary field at all
// contributes zero. The input is not mutated.
func ReconcileRevenue(o *domain.OrderRecord) float64 {
	if o == nil {
		return 0
	}
	for _, e := range revenueExtractors {
		if v, ok := e.extract(o); ok {
			if v < 0 {
				return 0
			}
			return v
		}
	}
	return 0
}

// LineRevenue computes price times quantity for one line item, treating
// unparsable values as zero. The price candidates mirror the document
// shapes: "price" first, then "unitPrice".
func LineRevenue(item *domain.OrderLineItem) float64 {
	price, ok := numericValue(item.Price)
	if !ok {
		price, _ = numericValue(item.UnitPrice)
	}
	qty := quantityValue(item.Quantity)
	if price < 0 || qty < 0 {
		return 0
	}
	return price * float64(qty)
}

// UnitPrice resolves the display unit price for a line item.
func UnitPrice(item *domain.OrderLineItem) float64 {
	if v, ok := numericValue(item.Price); ok && v >= 0 {
		return v
	}
	if v, ok := numericValue(item.UnitPrice); ok && v >= 0 {
		return v
	}
	return 0
}

// LooseAmount reconciles a single heterogeneous monetary field (tax,
// delivery fee) into a non-negative number.
func LooseAmount(v any) float64 {
	f, ok := numericValue(v)
	if !ok || f < 0 {
		return 0
	}
	return f
}
