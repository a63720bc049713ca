package repository

import (
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/mohitkushwaha4020/zaika/entity"
)

// GormMenuCatalog is the sqlite-backed MenuCatalog. Item ids follow the
// same time-derived scheme as the memory catalog.
type GormMenuCatalog struct {
	db     *gorm.DB
	mu     sync.Mutex
	lastID int64
}

func NewGormMenuCatalog(db *gorm.DB) *GormMenuCatalog {
	return &GormMenuCatalog{db: db}
}

func (c *GormMenuCatalog) List() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	if err := c.db.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (c *GormMenuCatalog) Get(id int64) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := c.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (c *GormMenuCatalog) Add(item *entity.MenuItem) (*entity.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ms := time.Now().UnixMilli()
	if ms <= c.lastID {
		ms = c.lastID + 1
	}
	for {
		var n int64
		if err := c.db.Model(&entity.MenuItem{}).Where("id = ?", ms).Count(&n).Error; err != nil {
			return nil, err
		}
		if n == 0 {
			break
		}
		ms++
	}
	c.lastID = ms
	item.ID = ms

	if err := c.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (c *GormMenuCatalog) Update(id int64, patch *entity.MenuItemPatch) (*entity.MenuItem, error) {
	var out entity.MenuItem
	err := c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&out, "id = ?", id).Error; err != nil {
			return err
		}
		patch.Apply(&out)
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

func (c *GormMenuCatalog) Remove(id int64) (*entity.MenuItem, error) {
	var out entity.MenuItem
	err := c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&out, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.MenuItem{}, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (c *GormMenuCatalog) SetAvailability(id int64, available bool) (*entity.MenuItem, error) {
	return c.Update(id, &entity.MenuItemPatch{Available: &available})
}
