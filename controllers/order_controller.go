package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mohitkushwaha4020/zaika/entity"
	"github.com/mohitkushwaha4020/zaika/pkg/resp"
	"github.com/mohitkushwaha4020/zaika/repository"
	"github.com/mohitkushwaha4020/zaika/services"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// GET /api/orders
func (ctl *OrderController) List(c *gin.Context) {
	orders, err := ctl.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/:id
func (ctl *OrderController) Get(c *gin.Context) {
	order, err := ctl.Svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /api/orders
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	created, err := ctl.Svc.Create(&req)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			resp.Violations(c, ve.Violations)
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, created)
}

// PUT /api/orders/:id/status
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updated, err := ctl.Svc.SetStatus(c.Param("id"), entity.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidStatus):
			resp.BadRequest(c, "status must be one of pending, preparing, ready, delivered, cancelled")
		case errors.Is(err, repository.ErrNotFound):
			resp.NotFound(c, "order not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, updated)
}
