package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohitkushwaha4020/zaika/entity"
	"github.com/mohitkushwaha4020/zaika/services"
)

func TestMenuCRUDEndpoints(t *testing.T) {
	env := setupEnv(t)

	w := env.do(t, http.MethodPost, "/api/menu", map[string]any{
		"name":            "Samosa",
		"category":        "Starters",
		"price":           40,
		"preparationTime": 10,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created entity.MenuItem
	require.NoError(t, json.Unmarshal(decodeBody(t, w)["data"], &created))
	assert.True(t, created.Available, "availability defaults to true")
	assert.Equal(t, 1, env.bc.count(services.EventMenuUpdated))

	path := fmt.Sprintf("/api/menu/%d", created.ID)

	w = env.do(t, http.MethodPut, path, map[string]any{"price": 45})
	require.Equal(t, http.StatusOK, w.Code)
	var updated entity.MenuItem
	require.NoError(t, json.Unmarshal(decodeBody(t, w)["data"], &updated))
	assert.Equal(t, 45.0, updated.Price)
	assert.Equal(t, "Samosa", updated.Name)
	assert.Equal(t, 2, env.bc.count(services.EventMenuUpdated))

	w = env.do(t, http.MethodPatch, path+"/availability", map[string]any{"available": false})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, env.bc.count(services.EventMenuUpdated))

	w = env.do(t, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, env.bc.count(services.EventMenuUpdated))

	w = env.do(t, http.MethodGet, "/api/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []entity.MenuItem
	require.NoError(t, json.Unmarshal(decodeBody(t, w)["data"], &items))
	assert.Empty(t, items)
}

func TestMenuUnknownIDReturns404WithoutBroadcast(t *testing.T) {
	env := setupEnv(t)

	w := env.do(t, http.MethodDelete, "/api/menu/12345", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodPut, "/api/menu/12345", map[string]any{"price": 10})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodPatch, "/api/menu/12345/availability", map[string]any{"available": true})
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.Equal(t, 0, env.bc.count(services.EventMenuUpdated))
}

func TestMenuCreateKeepsExplicitAvailability(t *testing.T) {
	env := setupEnv(t)

	w := env.do(t, http.MethodPost, "/api/menu", map[string]any{
		"name":      "Day Special",
		"price":     120,
		"available": false,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created entity.MenuItem
	require.NoError(t, json.Unmarshal(decodeBody(t, w)["data"], &created))
	assert.False(t, created.Available)
}
