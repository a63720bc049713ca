package entity

import "time"

// OrderStatus is the closed set of lifecycle states an order moves through.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the five recognized statuses.
// Anything else is rejected outright; this is an enum, not free text.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// OrderLine is a snapshot of one ordered dish, captured at creation time.
// Later catalog edits never touch it.
type OrderLine struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

type Address struct {
	FullAddress string `json:"fullAddress"`
}

type CustomerInfo struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Address *Address `json:"address,omitempty"`
}

// Order is the authoritative record of a placed order. Only Status and
// UpdatedAt mutate after creation; everything else is immutable.
type Order struct {
	ID             string       `json:"id" gorm:"primaryKey"`
	OrderNumber    int          `json:"orderNumber" gorm:"uniqueIndex"`
	Items          []OrderLine  `json:"items" gorm:"serializer:json"`
	Total          float64      `json:"total"`
	CustomerInfo   CustomerInfo `json:"customerInfo" gorm:"serializer:json"`
	PaymentMethod  string       `json:"paymentMethod"`
	DeliveryCharge float64      `json:"deliveryCharge"`
	Status         OrderStatus  `json:"status"`
	EstimatedTime  int          `json:"estimatedTime"` // minutes, fixed at creation
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}
