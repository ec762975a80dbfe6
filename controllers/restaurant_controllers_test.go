package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Brianlih/orderflow-be/models"
	"github.com/Brianlih/orderflow-be/services"
	"github.com/Brianlih/orderflow-be/utils"
)

func setupRestaurantRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.Restaurant{},
		&models.Category{},
		&models.Allergen{},
		&models.MenuItem{},
		&models.MenuItemAllergen{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	ctrl := NewRestaurantController(services.NewRestaurantService(db))

	r := gin.New()
	r.GET("/restaurants", ctrl.GetAllRestaurants)
	r.GET("/restaurants/:restaurant_id", ctrl.GetRestaurantByID)
	r.POST("/restaurants", ctrl.CreateRestaurant)
	r.PUT("/restaurants/:restaurant_id", ctrl.UpdateRestaurant)
	r.DELETE("/restaurants/:restaurant_id", ctrl.DeleteRestaurant)
	r.GET("/restaurants/:restaurant_id/allergens", ctrl.GetRestaurantAllergens)
	r.GET("/restaurants/:restaurant_id/menu", ctrl.GetRestaurantMenu)
	return r, db
}

func performRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRestaurantReturns201(t *testing.T) {
	r, _ := setupRestaurantRouter(t)

	w := performRequest(r, http.MethodPost, "/restaurants", gin.H{
		"name":    "Harbor Grill",
		"address": "12 Harbor Road",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp utils.JSONResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Harbor Grill", data["name"])
	assert.NotZero(t, data["id"])
}

func TestCreateRestaurantRejectsMissingName(t *testing.T) {
	r, _ := setupRestaurantRouter(t)

	w := performRequest(r, http.MethodPost, "/restaurants", gin.H{"address": "12 Harbor Road"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAllRestaurantsExcludesDeleted(t *testing.T) {
	r, db := setupRestaurantRouter(t)

	db.Create(&models.Restaurant{Name: "Visible"})
	hidden := models.Restaurant{Name: "Hidden"}
	db.Create(&hidden)
	db.Model(&hidden).Update("is_active", false)

	w := performRequest(r, http.MethodGet, "/restaurants", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp utils.JSONResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	list := resp.Data.([]interface{})
	assert.Len(t, list, 1)
}

func TestGetRestaurantByIDNotFound(t *testing.T) {
	r, _ := setupRestaurantRouter(t)

	w := performRequest(r, http.MethodGet, "/restaurants/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRestaurantByIDBadID(t *testing.T) {
	r, _ := setupRestaurantRouter(t)

	w := performRequest(r, http.MethodGet, "/restaurants/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRestaurantPartialPayload(t *testing.T) {
	r, db := setupRestaurantRouter(t)

	restaurant := models.Restaurant{Name: "Old Name", Address: "Keep Me"}
	db.Create(&restaurant)

	w := performRequest(r, http.MethodPut, "/restaurants/1", gin.H{"name": "New Name"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp utils.JSONResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "New Name", data["name"])
	assert.Equal(t, "Keep Me", data["address"])
}

func TestUpdateRestaurantNotFound(t *testing.T) {
	r, _ := setupRestaurantRouter(t)

	w := performRequest(r, http.MethodPut, "/restaurants/42", gin.H{"name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRestaurantThenGetReturns404(t *testing.T) {
	r, db := setupRestaurantRouter(t)

	db.Create(&models.Restaurant{Name: "Short Lived"})

	w := performRequest(r, http.MethodDelete, "/restaurants/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = performRequest(r, http.MethodGet, "/restaurants/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// A repeat delete finds nothing to flip.
	w = performRequest(r, http.MethodDelete, "/restaurants/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRestaurantAllergensRequiresExistingRestaurant(t *testing.T) {
	r, _ := setupRestaurantRouter(t)

	w := performRequest(r, http.MethodGet, "/restaurants/999/allergens", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRestaurantAllergensEmptyListIsOK(t *testing.T) {
	r, db := setupRestaurantRouter(t)

	db.Create(&models.Restaurant{Name: "Plain Fare"})

	w := performRequest(r, http.MethodGet, "/restaurants/1/allergens", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetRestaurantMenuNotFound(t *testing.T) {
	r, _ := setupRestaurantRouter(t)

	w := performRequest(r, http.MethodGet, "/restaurants/999/menu", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
