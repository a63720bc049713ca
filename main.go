package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/mohitkushwaha4020/zaika/configs"
	"github.com/mohitkushwaha4020/zaika/controllers"
	"github.com/mohitkushwaha4020/zaika/middlewares"
	"github.com/mohitkushwaha4020/zaika/repository"
	"github.com/mohitkushwaha4020/zaika/routes"
	"github.com/mohitkushwaha4020/zaika/services"
	"github.com/mohitkushwaha4020/zaika/ws"
)

func main() {
	cfg := configs.LoadConfig()
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Stores
	var (
		orderStore  repository.OrderStore
		menuCatalog repository.MenuCatalog
	)
	switch cfg.DBDriver {
	case "sqlite":
		db, err := configs.OpenDB(cfg.DBSource)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		orderStore = repository.NewGormOrderStore(db)
		menuCatalog = repository.NewGormMenuCatalog(db)
	default:
		orderStore = repository.NewMemoryOrderStore()
		menuCatalog = repository.NewMemoryMenuCatalog()
	}

	if err := configs.SeedMenu(menuCatalog); err != nil {
		log.Fatalf("seed menu: %v", err)
	}

	// Realtime hub + services
	hub := ws.NewHub()
	orderSvc := services.NewOrderService(orderStore, menuCatalog, hub)
	menuSvc := services.NewMenuService(menuCatalog, hub)

	// Controllers
	menuCtl := controllers.NewMenuController(menuSvc)
	orderCtl := controllers.NewOrderController(orderSvc)
	statsCtl := controllers.NewStatsController(orderSvc, hub)
	wsHandler := ws.NewHandler(hub, orderSvc, menuSvc)

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.AllowOrigins))
	routes.RegisterRoutes(r, menuCtl, orderCtl, statsCtl, wsHandler)

	log.Printf("zaika backend listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
