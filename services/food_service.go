package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Muskanagrawal2005/AyuBalance/models"

	"gorm.io/gorm"
)

// FoodService is the read-mostly gateway to the food catalog.
type FoodService struct{ db *gorm.DB }

func NewFoodService(db *gorm.DB) *FoodService { return &FoodService{db: db} }

// Create validates and stores a manually entered catalog row. Dosha effect
// values are normalized onto the canonical constants before saving.
func (s *FoodService) Create(ctx context.Context, food *models.FoodItem) error {
	food.Name = strings.TrimSpace(food.Name)
	if food.Name == "" {
		return errors.New("food name is required")
	}
	if food.Calories < 0 {
		return errors.New("calories must not be negative")
	}
	food.VataEffect = models.NormalizeDoshaEffect(food.VataEffect)
	food.PittaEffect = models.NormalizeDoshaEffect(food.PittaEffect)
	food.KaphaEffect = models.NormalizeDoshaEffect(food.KaphaEffect)
	return s.db.WithContext(ctx).Create(food).Error
}

// FindByID resolves a catalog row or reports ErrFoodNotFound.
func (s *FoodService) FindByID(ctx context.Context, id uint) (*models.FoodItem, error) {
	var food models.FoodItem
	err := s.db.WithContext(ctx).First(&food, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

// FindByName does a case-insensitive exact match. A miss is (nil, nil),
// not an error.
func (s *FoodService) FindByName(ctx context.Context, name string) (*models.FoodItem, error) {
	var food models.FoodItem
	err := s.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).
		First(&food).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

// Search returns up to 20 rows whose name contains the query,
// case-insensitively. An empty query lists the first 20 rows.
func (s *FoodService) Search(ctx context.Context, query string) ([]models.FoodItem, error) {
	q := s.db.WithContext(ctx).Limit(20).Order("name ASC")
	if query = strings.TrimSpace(query); query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	var foods []models.FoodItem
	err := q.Find(&foods).Error
	return foods, err
}
