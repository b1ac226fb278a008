package models

import (
	"gorm.io/gorm"
)

// DietPlan is a dietitian's prescription for a patient. Plans are never
// edited in place; a newer plan supersedes the old one, and only the most
// recently created plan drives target resolution.
type DietPlan struct {
	gorm.Model
	DietitianID  uint   `gorm:"index;not null"`
	PatientID    uint   `gorm:"index;not null"`
	Name         string `gorm:"default:'Weekly Plan'"`
	Meals        []DietPlanMeal
	Instructions string
}

// DietPlanMeal groups the prescribed items for one meal slot.
type DietPlanMeal struct {
	gorm.Model
	DietPlanID uint   `gorm:"index;not null"`
	MealType   string `gorm:"type:varchar(16)"`
	Items      []DietPlanMealItem
}

type DietPlanMealItem struct {
	gorm.Model
	DietPlanMealID uint `gorm:"index;not null"`
	FoodItemID     uint `gorm:"not null"`
	FoodItem       FoodItem
	Quantity       float64
	Unit           string
	Notes          string
}
