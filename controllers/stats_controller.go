package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/mohitkushwaha4020/zaika/pkg/resp"
	"github.com/mohitkushwaha4020/zaika/services"
)

// ConnectionCounter reports live websocket connection counts; the ws hub
// implements it.
type ConnectionCounter interface {
	Stats() services.ConnectionStats
}

type StatsController struct {
	Orders      *services.OrderService
	Connections ConnectionCounter
}

func NewStatsController(orders *services.OrderService, connections ConnectionCounter) *StatsController {
	return &StatsController{Orders: orders, Connections: connections}
}

// GET /api/restaurant/stats
func (ctl *StatsController) Get(c *gin.Context) {
	orderStats, err := ctl.Orders.Stats()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"orders":      orderStats,
		"connections": ctl.Connections.Stats(),
	})
}
