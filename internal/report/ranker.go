package report

import (
	"sort"
	"strings"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/domain"
)

// unnamedProductPlaceholder is the literal the storefront writes when an
// item was saved without a resolvable name. It is rejected during name
// resolution so the humanized identifier can take over.
const unnamedProductPlaceholder = "Unknown Product"

type productGroup struct {
	name         string
	totalQty     int
	totalRevenue float64
	lineRevenue  []float64
	orders       map[string]struct{}
}

// RankProducts aggregates order line items into a product ranking by
// reconciled revenue. Cancelled orders are excluded. The result is sorted
// descending by total revenue; ties keep first-encountered order.
func RankProducts(orders []domain.OrderRecord, catalog map[string]string) []domain.RankedEntity {
	groups := make(map[string]*productGroup)
	var keys []string

	for i := range orders {
		o := &orders[i]
		if domain.IsCancelled(o.Status) {
			continue
		}
		for j := range o.Items {
			item := &o.Items[j]
			name := ResolveProductName(item, catalog)
			key := item.ProductID
			if key == "" {
				key = name
			}

			g, ok := groups[key]
			if !ok {
				g = &productGroup{name: name, orders: make(map[string]struct{})}
				groups[key] = g
				keys = append(keys, key)
			}

			rev := LineRevenue(item)
			g.totalQty += quantityValue(item.Quantity)
			g.totalRevenue += rev
			g.lineRevenue = append(g.lineRevenue, rev)
			g.orders[o.ID] = struct{}{}
		}
	}

	ranked := make([]domain.RankedEntity, 0, len(keys))
	for _, key := range keys {
		g := groups[key]
		avg := 0.0
		if len(g.lineRevenue) > 0 {
			avg = g.totalRevenue / float64(len(g.lineRevenue))
		}
		ranked = append(ranked, domain.RankedEntity{
			Name:          g.name,
			TotalQuantity: g.totalQty,
			TotalRevenue:  g.totalRevenue,
			OrderCount:    len(g.orders),
			AvgPrice:      avg,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalRevenue > ranked[j].TotalRevenue
	})

	return ranked
}

// TopN truncates a ranking to its first n entries.
func TopN(ranked []domain.RankedEntity, n int) []domain.RankedEntity {
	if n < 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}

// ResolveProductName picks a display name for a line item. Priority: joined
// catalog name, the item's explicit product-name field, its generic name
// field (unless it is the "Unknown Product" placeholder), a humanized form
// of a hyphenated identifier, then the raw identifier with a "Product: "
// prefix.
func ResolveProductName(item *domain.OrderLineItem, catalog map[string]string) string {
	if name, ok := catalog[item.ProductID]; ok && name != "" {
		return name
	}
	if item.ProductName != "" {
		return item.ProductName
	}
	if item.Name != "" && item.Name != unnamedProductPlaceholder {
		return item.Name
	}
	if strings.Contains(item.ProductID, "-") {
		return humanizeIdentifier(item.ProductID)
	}
	return "Product: " + item.ProductID
}

// humanizeIdentifier turns "red-velvet-cupcake" into "Red Velvet Cupcake".
func humanizeIdentifier(id string) string {
	parts := strings.Split(id, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
