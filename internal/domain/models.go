package domain

import "time"

// OrderRecord is a point-in-time snapshot of a storefront order. Monetary
// fields come from a loosely-shaped document payload, so any of them may be
// absent or hold a non-numeric value; the report engine reconciles them into
// a single total.
type OrderRecord struct {
	ID            string          `json:"id" db:"id"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
	Status        string          `json:"status" db:"status"`
	CustomerRef   string          `json:"customerRef" db:"customer_ref"`
	CustomerName  string          `json:"customerName" db:"customer_name"`
	PaymentMethod string          `json:"paymentMethod" db:"payment_method"`
	Total         any             `json:"total,omitempty"`
	TotalAmount   any             `json:"totalAmount,omitempty"`
	Subtotal      any             `json:"subtotal,omitempty"`
	Tax           any             `json:"tax,omitempty"`
	DeliveryFee   any             `json:"deliveryFee,omitempty"`
	Payment       *PaymentInfo    `json:"payment,omitempty"`
	Items         []OrderLineItem `json:"items"`
}

// PaymentInfo is the nested payment block some order documents carry.
type PaymentInfo struct {
	Method string `json:"method,omitempty"`
	Amount any    `json:"amount,omitempty"`
}

// OrderLineItem is one purchased product inside an order. Name and price
// fields are candidates, not guarantees.
type OrderLineItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName,omitempty"`
	Name        string `json:"name,omitempty"`
	Quantity    any    `json:"quantity"`
	Price       any    `json:"price,omitempty"`
	UnitPrice   any    `json:"unitPrice,omitempty"`
}

// Customer is a registered storefront account.
type Customer struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// InventoryItem is one stocked ingredient or finished good.
type InventoryItem struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	Quantity    float64   `json:"quantity" db:"quantity"`
	Threshold   float64   `json:"threshold" db:"threshold"`
	CostPerUnit float64   `json:"cost_per_unit" db:"cost_per_unit"`
	Unit        string    `json:"unit" db:"unit"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Review is a customer rating used for the dashboard rating metric.
type Review struct {
	ID        string    `json:"id" db:"id"`
	OrderID   string    `json:"order_id" db:"order_id"`
	Rating    float64   `json:"rating" db:"rating"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CatalogProduct maps a product identifier to its display name.
type CatalogProduct struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
