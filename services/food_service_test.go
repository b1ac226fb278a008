package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Muskanagrawal2005/AyuBalance/models"
)

func TestFindByNameIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewFoodService(db)
	ctx := context.Background()

	seedFood(t, db, models.FoodItem{Name: "Basmati Rice (Cooked)", Calories: 205})

	food, err := svc.FindByName(ctx, "basmati rice (cooked)")
	if err != nil {
		t.Fatalf("find by name: %v", err)
	}
	if food == nil {
		t.Fatal("expected a match for different casing, got nil")
	}

	miss, err := svc.FindByName(ctx, "Basmati")
	if err != nil {
		t.Fatalf("find by name: %v", err)
	}
	if miss != nil {
		t.Fatalf("partial name matched %q; FindByName is exact-match only", miss.Name)
	}
}

func TestFindByIDNotFound(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewFoodService(db)

	if _, err := svc.FindByID(context.Background(), 12345); !errors.Is(err, ErrFoodNotFound) {
		t.Fatalf("err = %v, want ErrFoodNotFound", err)
	}
}

func TestSearchMatchesSubstring(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewFoodService(db)
	ctx := context.Background()

	seedFood(t, db, models.FoodItem{Name: "Mung Dal (Cooked)", Calories: 147})
	seedFood(t, db, models.FoodItem{Name: "Red Lentils (Masoor Dal)", Calories: 230})
	seedFood(t, db, models.FoodItem{Name: "Ghee", Calories: 120})

	foods, err := svc.Search(ctx, "dal")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(foods) != 2 {
		t.Fatalf("search hit %d rows, want 2", len(foods))
	}
}

func TestCreateNormalizesDoshaEffects(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewFoodService(db)

	food := models.FoodItem{
		Name:        "Pickled Mango",
		Calories:    60,
		VataEffect:  "Pacifies Vata strongly",
		PittaEffect: "AGGRAVATES",
		KaphaEffect: "no effect",
	}
	if err := svc.Create(context.Background(), &food); err != nil {
		t.Fatalf("create: %v", err)
	}
	if food.VataEffect != models.DoshaPacifies ||
		food.PittaEffect != models.DoshaAggravates ||
		food.KaphaEffect != models.DoshaNeutral {
		t.Fatalf("effects = %s/%s/%s, want pacifies/aggravates/neutral",
			food.VataEffect, food.PittaEffect, food.KaphaEffect)
	}
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewFoodService(db)
	ctx := context.Background()

	if err := svc.SeedDefaults(ctx); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	var after1 int64
	if err := db.Model(&models.FoodItem{}).Count(&after1).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if after1 == 0 {
		t.Fatal("seed inserted nothing")
	}

	if err := svc.SeedDefaults(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	var after2 int64
	if err := db.Model(&models.FoodItem{}).Count(&after2).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if after1 != after2 {
		t.Fatalf("second seed changed row count %d → %d", after1, after2)
	}
}
