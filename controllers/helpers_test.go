package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mohitkushwaha4020/zaika/repository"
	"github.com/mohitkushwaha4020/zaika/services"
)

type recordedEvent struct {
	Room  string
	Event string
}

type recorderBroadcaster struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (r *recorderBroadcaster) ToRoom(room, event string, data any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{Room: room, Event: event})
}

func (r *recorderBroadcaster) ToAll(event string, data any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{Event: event})
}

func (r *recorderBroadcaster) count(event string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Event == event {
			n++
		}
	}
	return n
}

type fixedConnections struct{ stats services.ConnectionStats }

func (f fixedConnections) Stats() services.ConnectionStats { return f.stats }

type testEnv struct {
	router  *gin.Engine
	bc      *recorderBroadcaster
	catalog repository.MenuCatalog
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	bc := &recorderBroadcaster{}
	store := repository.NewMemoryOrderStore()
	catalog := repository.NewMemoryMenuCatalog()
	orderSvc := services.NewOrderService(store, catalog, bc)
	menuSvc := services.NewMenuService(catalog, bc)

	menuCtl := NewMenuController(menuSvc)
	orderCtl := NewOrderController(orderSvc)
	statsCtl := NewStatsController(orderSvc, fixedConnections{services.ConnectionStats{Customers: 2, Restaurants: 1, Total: 3}})

	r := gin.New()
	api := r.Group("/api")
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

	return &testEnv{router: r, bc: bc, catalog: catalog}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func orderPayload() map[string]any {
	return map[string]any{
		"items": []map[string]any{
			{"id": 1, "name": "Butter Chicken", "price": 320, "quantity": 1},
		},
		"total": 320,
		"customerInfo": map[string]any{
			"name":  "Asha",
			"phone": "9876500000",
		},
	}
}

