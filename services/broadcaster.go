package services

// Room topology is fixed: one room per client population.
const (
	RoomCustomer   = "customer_room"
	RoomRestaurant = "restaurant_room"
)

// Outbound realtime event names.
const (
	EventNewOrder          = "newOrder"
	EventOrderConfirmed    = "orderConfirmed"
	EventOrderCreated      = "orderCreated"
	EventOrderStatusUpdate = "orderStatusUpdate"
	EventMenuUpdated       = "menuUpdated"
)

// Broadcaster is the room fan-out the coordinator hands events to after a
// mutation has committed. Delivery is fire-and-forget: no retries, no
// delivery reports.
type Broadcaster interface {
	ToRoom(room, event string, data any)
	ToAll(event string, data any)
}

// ConnectionStats is the aggregate presence snapshot republished to every
// connection whenever room membership changes.
type ConnectionStats struct {
	Customers   int `json:"customers"`
	Restaurants int `json:"restaurants"`
	Total       int `json:"total"`
}
