package repository

import (
	"sync"
	"time"

	"github.com/mohitkushwaha4020/zaika/entity"
)

// MemoryMenuCatalog keeps menu items in process memory, insertion order.
// Item ids are time-derived like order ids, allocated under the mutex.
type MemoryMenuCatalog struct {
	mu     sync.Mutex
	items  []*entity.MenuItem
	byID   map[int64]*entity.MenuItem
	lastID int64
}

func NewMemoryMenuCatalog() *MemoryMenuCatalog {
	return &MemoryMenuCatalog{byID: make(map[int64]*entity.MenuItem)}
}

func (c *MemoryMenuCatalog) List() ([]entity.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entity.MenuItem, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, *it)
	}
	return out, nil
}

func (c *MemoryMenuCatalog) Get(id int64) (*entity.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, ok := c.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *it
	return &cp, nil
}

func (c *MemoryMenuCatalog) Add(item *entity.MenuItem) (*entity.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ms := time.Now().UnixMilli()
	if ms <= c.lastID {
		ms = c.lastID + 1
	}
	c.lastID = ms
	item.ID = ms

	stored := *item
	c.items = append(c.items, &stored)
	c.byID[stored.ID] = &stored
	cp := stored
	return &cp, nil
}

func (c *MemoryMenuCatalog) Update(id int64, patch *entity.MenuItemPatch) (*entity.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, ok := c.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(it)
	cp := *it
	return &cp, nil
}

func (c *MemoryMenuCatalog) Remove(id int64) (*entity.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, ok := c.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(c.byID, id)
	for i, cur := range c.items {
		if cur.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	cp := *it
	return &cp, nil
}

func (c *MemoryMenuCatalog) SetAvailability(id int64, available bool) (*entity.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, ok := c.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	it.Available = available
	cp := *it
	return &cp, nil
}
