package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mohitkushwaha4020/zaika/controllers"
	"github.com/mohitkushwaha4020/zaika/ws"
)

func RegisterRoutes(
	r *gin.Engine,
	menuCtl *controllers.MenuController,
	orderCtl *controllers.OrderController,
	statsCtl *controllers.StatsController,
	wsHandler *ws.Handler,
) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := r.Group("/api")
	{
		api.GET("/menu", menuCtl.List)
		api.POST("/menu", menuCtl.Create)
		api.PUT("/menu/:id", menuCtl.Update)
		api.DELETE("/menu/:id", menuCtl.Delete)
		api.PATCH("/menu/:id/availability", menuCtl.SetAvailability)

		api.GET("/orders", orderCtl.List)
		api.GET("/orders/:id", orderCtl.Get)
		api.POST("/orders", orderCtl.Create)
		api.PUT("/orders/:id/status", orderCtl.UpdateStatus)

		api.GET("/restaurant/stats", statsCtl.Get)
	}

	r.GET("/ws", wsHandler.HandleWebSocket)
}
