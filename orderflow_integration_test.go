package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Brianlih/orderflow-be/router"
	"github.com/Brianlih/orderflow-be/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	os.Exit(m.Run())
}

func setupIntegrationRouter(t *testing.T) *gin.Engine {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, autoMigrate(db))
	return router.SetupRouter(db)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, utils.JSONResponse) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp utils.JSONResponse
	if w.Body.Len() > 0 {
		json.Unmarshal(w.Body.Bytes(), &resp)
	}
	return w, resp
}

func TestHealthEndpoint(t *testing.T) {
	r := setupIntegrationRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

// Walks the guest-facing flow end to end: set up a restaurant with a menu,
// open a QR session from a table token, place an order, and read back the
// assembled menu and allergen rollup.
func TestGuestOrderingFlow(t *testing.T) {
	r := setupIntegrationRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/restaurants", gin.H{
		"name": "Harbor Grill", "address": "12 Harbor Road",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	restaurantID := uint(resp.Data.(map[string]interface{})["id"].(float64))

	w, resp = doJSON(t, r, http.MethodPost, "/tables", gin.H{
		"restaurant_id": restaurantID, "name": "T1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	tableData := resp.Data.(map[string]interface{})
	tableID := uint(tableData["id"].(float64))
	qrToken := tableData["qr_code_token"].(string)
	require.NotEmpty(t, qrToken)

	w, resp = doJSON(t, r, http.MethodPost, "/categories", gin.H{
		"restaurant_id": restaurantID, "name": "Mains", "sort_order": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	categoryID := uint(resp.Data.(map[string]interface{})["id"].(float64))

	w, resp = doJSON(t, r, http.MethodPost, "/menu-items", gin.H{
		"restaurant_id": restaurantID,
		"category_id":   categoryID,
		"name":          "Spicy Noodles",
		"price":         "11.00",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	itemID := uint(resp.Data.(map[string]interface{})["id"].(float64))

	w, resp = doJSON(t, r, http.MethodPost, "/allergens", gin.H{
		"i18n_key": "allergen.peanuts", "name": "Peanuts",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	allergenID := uint(resp.Data.(map[string]interface{})["id"].(float64))

	w, _ = doJSON(t, r, http.MethodPost, fmt.Sprintf("/menu-items/%d/allergens", itemID), gin.H{
		"allergen_id": allergenID, "contamination_risk": "contains",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Guest scans the table QR code.
	w, resp = doJSON(t, r, http.MethodPost, "/qr-sessions/open", gin.H{
		"qr_code_token": qrToken,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	session := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(tableID), session["table_id"])
	assert.NotEmpty(t, session["session_token"])

	// Guest browses the menu.
	w, resp = doJSON(t, r, http.MethodGet, fmt.Sprintf("/restaurants/%d/menu", restaurantID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	menu := resp.Data.(map[string]interface{})
	assert.Equal(t, "Harbor Grill", menu["restaurant_name"])
	categories := menu["categories"].([]interface{})
	require.Len(t, categories, 1)
	items := categories[0].(map[string]interface{})["menu_items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Spicy Noodles", items[0].(map[string]interface{})["name"])

	w, resp = doJSON(t, r, http.MethodGet, fmt.Sprintf("/restaurants/%d/allergens", restaurantID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	allergens := resp.Data.([]interface{})
	require.Len(t, allergens, 1)
	assert.Equal(t, "Peanuts", allergens[0].(map[string]interface{})["name"])

	// Guest places an order for the noodles.
	w, resp = doJSON(t, r, http.MethodPost, "/orders", gin.H{
		"restaurant_id": restaurantID,
		"table_id":      tableID,
		"subtotal":      "22.00",
		"total_amount":  "22.00",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := uint(resp.Data.(map[string]interface{})["id"].(float64))

	w, _ = doJSON(t, r, http.MethodPost, "/order-items", gin.H{
		"order_id":   orderID,
		"item_id":    itemID,
		"quantity":   2,
		"unit_price": "11.00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp = doJSON(t, r, http.MethodGet, fmt.Sprintf("/orders/%d", orderID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(tableID), resp.Data.(map[string]interface{})["table_id"])
}

func TestMenuHidesRetiredItems(t *testing.T) {
	r := setupIntegrationRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/restaurants", gin.H{"name": "Harbor Grill"})
	require.Equal(t, http.StatusCreated, w.Code)
	restaurantID := uint(resp.Data.(map[string]interface{})["id"].(float64))

	w, resp = doJSON(t, r, http.MethodPost, "/categories", gin.H{
		"restaurant_id": restaurantID, "name": "Mains",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	categoryID := uint(resp.Data.(map[string]interface{})["id"].(float64))

	w, resp = doJSON(t, r, http.MethodPost, "/menu-items", gin.H{
		"restaurant_id": restaurantID, "category_id": categoryID,
		"name": "Sold Out Stew", "price": "9.00",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	itemID := uint(resp.Data.(map[string]interface{})["id"].(float64))

	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/menu-items/%d", itemID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w, resp = doJSON(t, r, http.MethodGet, fmt.Sprintf("/restaurants/%d/menu", restaurantID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	categories := resp.Data.(map[string]interface{})["categories"].([]interface{})
	require.Len(t, categories, 1)
	assert.Empty(t, categories[0].(map[string]interface{})["menu_items"])
}

func TestOpenSessionUnknownTokenReturns404(t *testing.T) {
	r := setupIntegrationRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/qr-sessions/open", gin.H{
		"qr_code_token": "no-such-token",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
