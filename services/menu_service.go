package services

import (
	"github.com/mohitkushwaha4020/zaika/entity"
	"github.com/mohitkushwaha4020/zaika/repository"
)

// MenuService fronts the catalog. Every successful mutation rebroadcasts
// the full current menu to all connections; subscribers never have to
// reconstruct state from deltas.
type MenuService struct {
	Catalog repository.MenuCatalog
	Bc      Broadcaster
}

func NewMenuService(catalog repository.MenuCatalog, bc Broadcaster) *MenuService {
	return &MenuService{Catalog: catalog, Bc: bc}
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Catalog.List()
}

func (s *MenuService) Add(item *entity.MenuItem) (*entity.MenuItem, error) {
	added, err := s.Catalog.Add(item)
	if err != nil {
		return nil, err
	}
	s.broadcastMenu()
	return added, nil
}

func (s *MenuService) Update(id int64, patch *entity.MenuItemPatch) (*entity.MenuItem, error) {
	updated, err := s.Catalog.Update(id, patch)
	if err != nil {
		return nil, err
	}
	s.broadcastMenu()
	return updated, nil
}

func (s *MenuService) Remove(id int64) (*entity.MenuItem, error) {
	removed, err := s.Catalog.Remove(id)
	if err != nil {
		return nil, err
	}
	s.broadcastMenu()
	return removed, nil
}

func (s *MenuService) SetAvailability(id int64, available bool) (*entity.MenuItem, error) {
	updated, err := s.Catalog.SetAvailability(id, available)
	if err != nil {
		return nil, err
	}
	s.broadcastMenu()
	return updated, nil
}

func (s *MenuService) broadcastMenu() {
	items, err := s.Catalog.List()
	if err != nil {
		return
	}
	s.Bc.ToAll(EventMenuUpdated, items)
}
