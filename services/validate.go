package services

import (
	"fmt"
	"strings"

	"github.com/mohitkushwaha4020/zaika/entity"
)

// OrderLineIn is one line of an inbound order payload. ItemID references
// the menu item for estimation only; the stored line is a snapshot.
type OrderLineIn struct {
	ItemID   int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

// CreateOrderReq is the order payload as submitted by a customer client.
// Total is caller-supplied and not recomputed from the lines; see the
// trust-boundary note in DESIGN.md.
type CreateOrderReq struct {
	Items          []OrderLineIn       `json:"items"`
	Total          float64             `json:"total"`
	CustomerInfo   entity.CustomerInfo `json:"customerInfo"`
	PaymentMethod  string              `json:"paymentMethod"`
	DeliveryCharge float64             `json:"deliveryCharge"`
}

// ValidationError carries the full list of violations found in a payload.
// A payload that fails validation is never partially applied.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// ValidateOrder checks every rule independently and collects all
// violations rather than stopping at the first.
func ValidateOrder(req *CreateOrderReq) []string {
	var violations []string

	if len(req.Items) == 0 {
		violations = append(violations, "items must be a non-empty list")
	}
	if req.Total <= 0 {
		violations = append(violations, "total must be a positive number")
	}
	if req.CustomerInfo.Name == "" {
		violations = append(violations, "customerInfo.name is required")
	}
	for i, line := range req.Items {
		if line.Name == "" {
			violations = append(violations, fmt.Sprintf("items[%d].name must be a non-empty string", i))
		}
		if line.Price <= 0 {
			violations = append(violations, fmt.Sprintf("items[%d].price must be a positive number", i))
		}
		if line.Quantity <= 0 {
			violations = append(violations, fmt.Sprintf("items[%d].quantity must be a positive number", i))
		}
	}
	return violations
}
