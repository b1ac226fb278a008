package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Muskanagrawal2005/AyuBalance/models"
	"github.com/Muskanagrawal2005/AyuBalance/services"

	"github.com/gin-gonic/gin"
)

func newFoodRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db := newTestDB(t)
	ctl := NewFoodController(services.NewFoodService(db))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/foods", asUser(1, models.RoleDietitian), ctl.CreateFood)
	return r
}

func postFood(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/foods", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateFoodAcceptsZeroCalories(t *testing.T) {
	r := newFoodRouter(t)

	w := postFood(t, r, `{"name":"Warm Water","calories":0,"vata":"pacifies"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 for a zero-calorie food (body %s)", w.Code, w.Body.String())
	}
}

func TestCreateFoodRejectsNegativeCalories(t *testing.T) {
	r := newFoodRouter(t)

	w := postFood(t, r, `{"name":"Antimatter","calories":-5}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for negative calories (body %s)", w.Code, w.Body.String())
	}
}
