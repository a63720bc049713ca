package repository

import "github.com/mohitkushwaha4020/zaika/entity"

// OrderStore owns the append-ordered order collection. Create assigns the
// order id, orderNumber, status and timestamps; List returns newest first.
// Implementations must serialize mutations so ids and order numbers stay
// unique and monotonic under concurrent handlers.
type OrderStore interface {
	Create(o *entity.Order) (*entity.Order, error)
	Get(id string) (*entity.Order, error)
	List() ([]entity.Order, error)
	SetStatus(id string, status entity.OrderStatus) (*entity.Order, error)
	Stats() (*OrderStats, error)
}

// MenuCatalog owns the menu item set. Add assigns the item id.
type MenuCatalog interface {
	List() ([]entity.MenuItem, error)
	Get(id int64) (*entity.MenuItem, error)
	Add(item *entity.MenuItem) (*entity.MenuItem, error)
	Update(id int64, patch *entity.MenuItemPatch) (*entity.MenuItem, error)
	Remove(id int64) (*entity.MenuItem, error)
	SetAvailability(id int64, available bool) (*entity.MenuItem, error)
}

// OrderStats is the aggregate snapshot recomputed from scratch on every
// call; nothing is maintained incrementally.
type OrderStats struct {
	Total        int     `json:"total"`
	CreatedToday int     `json:"createdToday"`
	Pending      int     `json:"pending"`
	Delivered    int     `json:"delivered"`
	TotalRevenue float64 `json:"totalRevenue"`
	TodayRevenue float64 `json:"todayRevenue"`
}
