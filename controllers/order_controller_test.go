package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohitkushwaha4020/zaika/entity"
	"github.com/mohitkushwaha4020/zaika/services"
)

func TestCreateOrderEndpoint(t *testing.T) {
	env := setupEnv(t)

	w := env.do(t, http.MethodPost, "/api/orders", orderPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	var created entity.Order
	require.NoError(t, json.Unmarshal(body["data"], &created))
	assert.Equal(t, 1, created.OrderNumber)
	assert.Equal(t, entity.StatusPending, created.Status)
	assert.Equal(t, "COD", created.PaymentMethod)

	assert.Equal(t, 1, env.bc.count(services.EventNewOrder))
	assert.Equal(t, 1, env.bc.count(services.EventOrderConfirmed))

	// second order gets a higher number
	w = env.do(t, http.MethodPost, "/api/orders", orderPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	body = decodeBody(t, w)
	var second entity.Order
	require.NoError(t, json.Unmarshal(body["data"], &second))
	assert.Greater(t, second.OrderNumber, created.OrderNumber)
	assert.NotEqual(t, created.ID, second.ID)
}

func TestCreateOrderEndpointValidationFailure(t *testing.T) {
	env := setupEnv(t)

	payload := orderPayload()
	payload["customerInfo"] = map[string]any{"phone": "123"}

	w := env.do(t, http.MethodPost, "/api/orders", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	var violations []string
	require.NoError(t, json.Unmarshal(body["violations"], &violations))
	assert.Contains(t, violations, "customerInfo.name is required")

	// the store stays untouched
	w = env.do(t, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	var orders []entity.Order
	require.NoError(t, json.Unmarshal(body["data"], &orders))
	assert.Empty(t, orders)
	assert.Empty(t, env.bc.events)
}

func TestOrderListNewestFirst(t *testing.T) {
	env := setupEnv(t)

	first := env.do(t, http.MethodPost, "/api/orders", orderPayload())
	require.Equal(t, http.StatusCreated, first.Code)
	second := env.do(t, http.MethodPost, "/api/orders", orderPayload())
	require.Equal(t, http.StatusCreated, second.Code)

	w := env.do(t, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []entity.Order
	require.NoError(t, json.Unmarshal(decodeBody(t, w)["data"], &orders))
	require.Len(t, orders, 2)
	assert.Equal(t, 2, orders[0].OrderNumber)
	assert.Equal(t, 1, orders[1].OrderNumber)
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	env := setupEnv(t)

	w := env.do(t, http.MethodPost, "/api/orders", orderPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	var created entity.Order
	require.NoError(t, json.Unmarshal(decodeBody(t, w)["data"], &created))

	w = env.do(t, http.MethodPut, "/api/orders/"+created.ID+"/status", map[string]any{"status": "preparing"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, env.bc.count(services.EventOrderStatusUpdate))

	w = env.do(t, http.MethodPut, "/api/orders/"+created.ID+"/status", map[string]any{"status": "not-a-status"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPut, "/api/orders/ORD0/status", map[string]any{"status": "ready"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrderEndpoint(t *testing.T) {
	env := setupEnv(t)

	w := env.do(t, http.MethodGet, "/api/orders/ORD0", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRestaurantStatsEndpoint(t *testing.T) {
	env := setupEnv(t)

	w := env.do(t, http.MethodPost, "/api/orders", orderPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/api/restaurant/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Orders      struct {
			Total   int `json:"total"`
			Pending int `json:"pending"`
		} `json:"orders"`
		Connections services.ConnectionStats `json:"connections"`
	}
	require.NoError(t, json.Unmarshal(decodeBody(t, w)["data"], &data))
	assert.Equal(t, 1, data.Orders.Total)
	assert.Equal(t, 1, data.Orders.Pending)
	assert.Equal(t, 3, data.Connections.Total)
}
