package services

import (
	"time"

	"github.com/mohitkushwaha4020/zaika/entity"
	"github.com/mohitkushwaha4020/zaika/repository"
)

// OrderService orchestrates the order lifecycle: sanitize, validate,
// mutate the store, then broadcast. Broadcasts happen strictly after the
// mutation is visible to reads; a failed request never leaves a partial
// order behind.
type OrderService struct {
	Store repository.OrderStore
	Menu  repository.MenuCatalog
	Bc    Broadcaster
}

func NewOrderService(store repository.OrderStore, menu repository.MenuCatalog, bc Broadcaster) *OrderService {
	return &OrderService{Store: store, Menu: menu, Bc: bc}
}

// OrderConfirmation is the customer-facing acknowledgment of a new order.
// It goes to the whole customer room; clients filter by order id.
type OrderConfirmation struct {
	OrderID       string             `json:"orderId"`
	OrderNumber   int                `json:"orderNumber"`
	Status        entity.OrderStatus `json:"status"`
	EstimatedTime int                `json:"estimatedTime"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// StatusUpdate is broadcast to the customer room after a status change.
type StatusUpdate struct {
	OrderID   string             `json:"orderId"`
	Status    entity.OrderStatus `json:"status"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	sanitizeOrder(req)
	if violations := ValidateOrder(req); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	lines := make([]entity.OrderLine, 0, len(req.Items))
	for _, in := range req.Items {
		lines = append(lines, entity.OrderLine{Name: in.Name, Price: in.Price, Quantity: in.Quantity})
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "COD"
	}

	order := &entity.Order{
		Items:          lines,
		Total:          req.Total,
		CustomerInfo:   req.CustomerInfo,
		PaymentMethod:  paymentMethod,
		DeliveryCharge: req.DeliveryCharge,
		EstimatedTime:  EstimatePrepTime(s.Menu, req.Items),
	}

	created, err := s.Store.Create(order)
	if err != nil {
		return nil, err
	}

	s.Bc.ToRoom(RoomRestaurant, EventNewOrder, created)
	s.Bc.ToRoom(RoomCustomer, EventOrderConfirmed, OrderConfirmation{
		OrderID:       created.ID,
		OrderNumber:   created.OrderNumber,
		Status:        created.Status,
		EstimatedTime: created.EstimatedTime,
		CreatedAt:     created.CreatedAt,
	})
	// Instrumentation notice, not part of the lifecycle contract.
	s.Bc.ToAll(EventOrderCreated, map[string]any{
		"orderId":     created.ID,
		"orderNumber": created.OrderNumber,
	})
	return created, nil
}

func (s *OrderService) Get(id string) (*entity.Order, error) {
	return s.Store.Get(id)
}

func (s *OrderService) List() ([]entity.Order, error) {
	return s.Store.List()
}

func (s *OrderService) SetStatus(id string, status entity.OrderStatus) (*entity.Order, error) {
	updated, err := s.Store.SetStatus(id, status)
	if err != nil {
		return nil, err
	}
	s.Bc.ToRoom(RoomCustomer, EventOrderStatusUpdate, StatusUpdate{
		OrderID:   updated.ID,
		Status:    updated.Status,
		UpdatedAt: updated.UpdatedAt,
	})
	return updated, nil
}

func (s *OrderService) Stats() (*repository.OrderStats, error) {
	return s.Store.Stats()
}
