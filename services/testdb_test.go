package services

import (
	"testing"

	"github.com/Muskanagrawal2005/AyuBalance/config"
	"github.com/Muskanagrawal2005/AyuBalance/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database and migrates the full
// schema. Each test gets its own namespace via t.Name().
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

func seedDietitian(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	d := &models.User{
		Name:     "Dr. Asha",
		Email:    t.Name() + "+dietitian@clinic.test",
		Password: "x",
		Role:     models.RoleDietitian,
	}
	if err := db.Create(d).Error; err != nil {
		t.Fatalf("seed dietitian: %v", err)
	}
	return d
}

func seedPatient(t *testing.T, db *gorm.DB, dietitian *models.User) *models.User {
	t.Helper()
	p := &models.User{
		Name:     "Ravi",
		Email:    t.Name() + "+patient@clinic.test",
		Password: "x",
		Role:     models.RolePatient,
	}
	if dietitian != nil {
		p.CreatedByID = &dietitian.ID
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	return p
}

func seedFood(t *testing.T, db *gorm.DB, food models.FoodItem) *models.FoodItem {
	t.Helper()
	if food.Name == "" {
		food.Name = "Test Food"
	}
	if food.VataEffect == "" {
		food.VataEffect = models.DoshaNeutral
	}
	if food.PittaEffect == "" {
		food.PittaEffect = models.DoshaNeutral
	}
	if food.KaphaEffect == "" {
		food.KaphaEffect = models.DoshaNeutral
	}
	if err := db.Create(&food).Error; err != nil {
		t.Fatalf("seed food: %v", err)
	}
	return &food
}
