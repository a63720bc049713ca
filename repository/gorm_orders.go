package repository

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/mohitkushwaha4020/zaika/entity"
)

// GormOrderStore is the durable substitution for MemoryOrderStore, backed
// by sqlite through GORM. The mutex serializes creation so orderNumber and
// the time-derived id stay monotonic; everything else is plain queries.
type GormOrderStore struct {
	db     *gorm.DB
	mu     sync.Mutex
	lastID int64
}

func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

func (s *GormOrderStore) Create(o *entity.Order) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	ms := now.UnixMilli()
	if ms <= s.lastID {
		ms = s.lastID + 1
	}

	// The table may hold orders from a previous run in the same
	// millisecond; probe until the id is free.
	var id string
	for {
		id = "ORD" + strconv.FormatInt(ms, 10)
		var n int64
		if err := s.db.Model(&entity.Order{}).Where("id = ?", id).Count(&n).Error; err != nil {
			return nil, err
		}
		if n == 0 {
			break
		}
		ms++
	}
	s.lastID = ms

	o.ID = id
	o.Status = entity.StatusPending
	o.CreatedAt = now
	o.UpdatedAt = now

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.Order{}).Count(&count).Error; err != nil {
			return err
		}
		o.OrderNumber = int(count) + 1
		return tx.Create(o).Error
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (s *GormOrderStore) Get(id string) (*entity.Order, error) {
	var o entity.Order
	if err := s.db.First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (s *GormOrderStore) List() ([]entity.Order, error) {
	var orders []entity.Order
	if err := s.db.Order("order_number DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *GormOrderStore) SetStatus(id string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	var out entity.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&out, "id = ?", id).Error; err != nil {
			return err
		}
		out.Status = status
		out.UpdatedAt = time.Now()
		return tx.Save(&out).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (s *GormOrderStore) Stats() (*OrderStats, error) {
	orders, err := s.List()
	if err != nil {
		return nil, err
	}
	return computeStats(orders, time.Now()), nil
}
