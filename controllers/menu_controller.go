package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mohitkushwaha4020/zaika/entity"
	"github.com/mohitkushwaha4020/zaika/pkg/resp"
	"github.com/mohitkushwaha4020/zaika/repository"
	"github.com/mohitkushwaha4020/zaika/services"
)

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

// GET /api/menu
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// menuItemIn is deliberately unvalidated beyond JSON shape; the admin
// console is trusted with catalog contents.
type menuItemIn struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Price           float64 `json:"price"`
	Description     string  `json:"description"`
	Rating          float64 `json:"rating"`
	Popular         bool    `json:"popular"`
	Premium         bool    `json:"premium"`
	Available       *bool   `json:"available"`
	PreparationTime int     `json:"preparationTime"`
}

// POST /api/menu
func (ctl *MenuController) Create(c *gin.Context) {
	var req menuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	item := &entity.MenuItem{
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		Description:     req.Description,
		Rating:          req.Rating,
		Popular:         req.Popular,
		Premium:         req.Premium,
		Available:       available,
		PreparationTime: req.PreparationTime,
	}

	added, err := ctl.Svc.Add(item)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, added)
}

// PUT /api/menu/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	var patch entity.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updated, err := ctl.Svc.Update(id, &patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, updated)
}

// DELETE /api/menu/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	removed, err := ctl.Svc.Remove(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, removed)
}

// PATCH /api/menu/:id/availability
func (ctl *MenuController) SetAvailability(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	var req struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updated, err := ctl.Svc.SetAvailability(id, *req.Available)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, updated)
}
