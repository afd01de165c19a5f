package domain

import "strings"

// Order statuses as written by the storefront. "completed" and "delivered"
// are treated as the same terminal state.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

var orderStatusLabels = map[string]string{
	StatusPending:    "Pending",
	StatusConfirmed:  "Confirmed",
	StatusProcessing: "Processing",
	StatusCompleted:  "Completed",
	StatusDelivered:  "Delivered",
	StatusCancelled:  "Cancelled",
}

// OrderStatusLabel returns a human-readable label for an order status.
func OrderStatusLabel(status string) string {
	if label, ok := orderStatusLabels[strings.ToLower(strings.TrimSpace(status))]; ok {
		return label
	}

	return "Unknown"
}

// IsCancelled reports whether an order should be excluded from revenue and
// ranking aggregates.
func IsCancelled(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), StatusCancelled)
}
