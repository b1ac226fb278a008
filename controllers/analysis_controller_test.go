package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Muskanagrawal2005/AyuBalance/config"
	"github.com/Muskanagrawal2005/AyuBalance/models"
	"github.com/Muskanagrawal2005/AyuBalance/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Test doubles for the auth middleware: inject identity directly.
func asUser(id uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", id)
		c.Set("role", role)
		c.Next()
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	if err := config.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

type analysisHarness struct {
	db        *gorm.DB
	intake    *services.IntakeService
	dietitian *models.User
	patient   *models.User
	food      *models.FoodItem
	ctl       *AnalysisController
}

func newAnalysisHarness(t *testing.T) *analysisHarness {
	t.Helper()
	db := newTestDB(t)
	// ownedPatient goes through the package-level handle.
	config.DB = db

	dietitian := &models.User{Name: "Dr. Asha", Email: t.Name() + "+d@clinic.test", Password: "x", Role: models.RoleDietitian}
	if err := db.Create(dietitian).Error; err != nil {
		t.Fatalf("seed dietitian: %v", err)
	}
	patient := &models.User{Name: "Ravi", Email: t.Name() + "+p@clinic.test", Password: "x", Role: models.RolePatient, CreatedByID: &dietitian.ID}
	if err := db.Create(patient).Error; err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	food := &models.FoodItem{Name: "Rice", Calories: 500, VataEffect: models.DoshaNeutral, PittaEffect: models.DoshaNeutral, KaphaEffect: models.DoshaNeutral}
	if err := db.Create(food).Error; err != nil {
		t.Fatalf("seed food: %v", err)
	}

	planSvc := services.NewPlanService(db, config.DefaultTargets())
	return &analysisHarness{
		db:        db,
		intake:    services.NewIntakeService(db),
		dietitian: dietitian,
		patient:   patient,
		food:      food,
		ctl:       NewAnalysisController(services.NewAnalysisService(db, planSvc)),
	}
}

func (h *analysisHarness) patientRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/patient/analysis", asUser(h.patient.ID, models.RolePatient), h.ctl.GetMyAnalysis)
	return r
}

func (h *analysisHarness) dietitianRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/dietitian/patients/:id/analysis", asUser(h.dietitian.ID, models.RoleDietitian), h.ctl.GetPatientAnalysis)
	return r
}

func TestGetMyAnalysisRejectsBadDates(t *testing.T) {
	h := newAnalysisHarness(t)
	r := h.patientRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/patient/analysis?from=not-a-date&to=2025-03-10", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetMyAnalysisRejectsInvertedRange(t *testing.T) {
	h := newAnalysisHarness(t)
	r := h.patientRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/patient/analysis?from=2025-03-10&to=2025-03-01", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetMyAnalysisReturnsComposedResult(t *testing.T) {
	h := newAnalysisHarness(t)
	r := h.patientRouter()

	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)
	if _, err := h.intake.AppendEntry(context.Background(), h.patient.ID, day, models.MealLunch, h.food.ID, 1, "bowl"); err != nil {
		t.Fatalf("append: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/patient/analysis?from=2025-03-10&to=2025-03-10", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	var out services.AnalysisResult
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if out.DaysLogged != 1 {
		t.Fatalf("daysLogged = %d, want 1", out.DaysLogged)
	}
	if out.Totals.Calories != 500 {
		t.Fatalf("totals.calories = %d, want 500", out.Totals.Calories)
	}
	if out.PlanName != services.FallbackPlanName {
		t.Fatalf("planName = %q, want %q", out.PlanName, services.FallbackPlanName)
	}
	if out.Targets.Calories != 2000 {
		t.Fatalf("targets.calories = %d, want 2000", out.Targets.Calories)
	}
}

func TestGetPatientAnalysisEnforcesOwnership(t *testing.T) {
	h := newAnalysisHarness(t)

	// A patient belonging to a different dietitian.
	other := &models.User{Name: "Dr. Meera", Email: t.Name() + "+other@clinic.test", Password: "x", Role: models.RoleDietitian}
	if err := h.db.Create(other).Error; err != nil {
		t.Fatalf("seed other dietitian: %v", err)
	}
	foreign := &models.User{Name: "Sita", Email: t.Name() + "+foreign@clinic.test", Password: "x", Role: models.RolePatient, CreatedByID: &other.ID}
	if err := h.db.Create(foreign).Error; err != nil {
		t.Fatalf("seed foreign patient: %v", err)
	}

	r := h.dietitianRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/dietitian/patients/%d/analysis?from=2025-03-01&to=2025-03-10", foreign.ID), nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 for another dietitian's patient", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/dietitian/patients/%d/analysis?from=2025-03-01&to=2025-03-10", h.patient.ID), nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for own patient (body %s)", w.Code, w.Body.String())
	}
}
