package repository

import (
	"strconv"
	"sync"
	"time"

	"github.com/mohitkushwaha4020/zaika/entity"
)

// MemoryOrderStore keeps orders in process memory, newest first. All
// mutations run under one mutex: handlers are concurrent, so id and
// orderNumber assignment must be serialized to stay unique and monotonic.
type MemoryOrderStore struct {
	mu     sync.Mutex
	orders []*entity.Order // newest first
	byID   map[string]*entity.Order
	lastID int64 // last millisecond value issued as an order id
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{byID: make(map[string]*entity.Order)}
}

// Create assigns id, orderNumber, status and timestamps, then inserts the
// order at the front of the collection. Ids keep the ORD<millis> shape but
// bump past the last issued value, so two creates in the same millisecond
// still get distinct, increasing ids.
func (s *MemoryOrderStore) Create(o *entity.Order) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	ms := now.UnixMilli()
	if ms <= s.lastID {
		ms = s.lastID + 1
	}
	s.lastID = ms

	o.ID = "ORD" + strconv.FormatInt(ms, 10)
	o.OrderNumber = len(s.orders) + 1
	o.Status = entity.StatusPending
	o.CreatedAt = now
	o.UpdatedAt = now

	stored := cloneOrder(o)
	s.orders = append([]*entity.Order{stored}, s.orders...)
	s.byID[stored.ID] = stored
	return cloneOrder(stored), nil
}

func (s *MemoryOrderStore) Get(id string) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneOrder(o), nil
}

func (s *MemoryOrderStore) List() ([]entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, *cloneOrder(o))
	}
	return out, nil
}

// SetStatus validates the enum before the lookup, so an unknown status on
// an unknown id still reports the status error, matching the API contract
// (400 before 404). Forward-only progression is deliberately not enforced.
func (s *MemoryOrderStore) SetStatus(id string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return cloneOrder(o), nil
}

func (s *MemoryOrderStore) Stats() (*OrderStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]entity.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, *o)
	}
	return computeStats(orders, time.Now()), nil
}

// cloneOrder copies the order and its line slice so callers can never
// reach the store's internal state.
func cloneOrder(o *entity.Order) *entity.Order {
	c := *o
	c.Items = append([]entity.OrderLine(nil), o.Items...)
	if o.CustomerInfo.Address != nil {
		addr := *o.CustomerInfo.Address
		c.CustomerInfo.Address = &addr
	}
	return &c
}
