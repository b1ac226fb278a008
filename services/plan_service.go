package services

import (
	"context"
	"errors"
	"math"

	"github.com/Muskanagrawal2005/AyuBalance/config"
	"github.com/Muskanagrawal2005/AyuBalance/models"

	"gorm.io/gorm"
)

// FallbackPlanName labels targets that came from the configured defaults
// rather than a prescribed plan.
const FallbackPlanName = "Default RDA"

type PlanService struct {
	db       *gorm.DB
	defaults config.NutrientTargets
}

func NewPlanService(db *gorm.DB, defaults config.NutrientTargets) *PlanService {
	return &PlanService{db: db, defaults: defaults}
}

// NutrientTargets is the resolved daily prescription, rounded for
// presentation.
type NutrientTargets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// ResolveTargets reduces the patient's most recent plan into one daily
// target total: per-serving nutrients × quantity summed over every item of
// every meal. Older plans are never aggregated. Patients without a plan
// get the configured clinic defaults under the name "Default RDA".
func (s *PlanService) ResolveTargets(ctx context.Context, patientID uint) (NutrientTargets, string, error) {
	var plan models.DietPlan
	err := s.db.WithContext(ctx).
		Preload("Meals.Items.FoodItem").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NutrientTargets{
			Calories: int(math.Round(s.defaults.Calories)),
			Protein:  int(math.Round(s.defaults.Protein)),
			Carbs:    int(math.Round(s.defaults.Carbs)),
			Fat:      int(math.Round(s.defaults.Fat)),
		}, FallbackPlanName, nil
	}
	if err != nil {
		return NutrientTargets{}, "", err
	}

	var cal, prot, carbs, fat float64
	for _, meal := range plan.Meals {
		for _, item := range meal.Items {
			qty := item.Quantity
			if qty == 0 {
				qty = 1
			}
			cal += item.FoodItem.Calories * qty
			prot += item.FoodItem.ProteinG * qty
			carbs += item.FoodItem.CarbsG * qty
			fat += item.FoodItem.FatG * qty
		}
	}

	return NutrientTargets{
		Calories: int(math.Round(cal)),
		Protein:  int(math.Round(prot)),
		Carbs:    int(math.Round(carbs)),
		Fat:      int(math.Round(fat)),
	}, plan.Name, nil
}

// PlanMealInput / PlanItemInput mirror the create-plan request body.
type PlanItemInput struct {
	FoodID   uint    `json:"food_id" binding:"required"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Notes    string  `json:"notes"`
}

type PlanMealInput struct {
	MealType string          `json:"meal_type" binding:"required"`
	Items    []PlanItemInput `json:"items"`
}

// Create stores a new plan for the patient. Plans are immutable once
// created; prescribing again means creating a new plan that supersedes
// this one.
func (s *PlanService) Create(
	ctx context.Context,
	dietitianID, patientID uint,
	name, instructions string,
	meals []PlanMealInput,
) (*models.DietPlan, error) {
	plan := models.DietPlan{
		DietitianID:  dietitianID,
		PatientID:    patientID,
		Name:         name,
		Instructions: instructions,
	}
	if plan.Name == "" {
		plan.Name = "Weekly Plan"
	}
	for _, m := range meals {
		if !models.ValidMealSlot(m.MealType) {
			return nil, ErrInvalidMealSlot
		}
		planMeal := models.DietPlanMeal{MealType: m.MealType}
		for _, it := range m.Items {
			var food models.FoodItem
			err := s.db.WithContext(ctx).First(&food, it.FoodID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrFoodNotFound
			}
			if err != nil {
				return nil, err
			}
			qty := it.Quantity
			if qty == 0 {
				qty = 1
			}
			planMeal.Items = append(planMeal.Items, models.DietPlanMealItem{
				FoodItemID: food.ID,
				Quantity:   qty,
				Unit:       it.Unit,
				Notes:      it.Notes,
			})
		}
		plan.Meals = append(plan.Meals, planMeal)
	}

	if err := s.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return nil, err
	}

	var created models.DietPlan
	err := s.db.WithContext(ctx).
		Preload("Meals.Items.FoodItem").
		First(&created, plan.ID).Error
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListForPatient returns the patient's plans newest-first with food
// details populated.
func (s *PlanService) ListForPatient(ctx context.Context, patientID uint) ([]models.DietPlan, error) {
	var plans []models.DietPlan
	err := s.db.WithContext(ctx).
		Preload("Meals.Items.FoodItem").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

// Delete removes a plan and its nested rows. Only the dietitian who
// created the plan may delete it; anything else is ErrPlanNotFound.
func (s *PlanService) Delete(ctx context.Context, dietitianID, planID uint) error {
	var plan models.DietPlan
	err := s.db.WithContext(ctx).
		Where("id = ? AND dietitian_id = ?", planID, dietitianID).
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPlanNotFound
	}
	if err != nil {
		return err
	}

	var mealIDs []uint
	err = s.db.WithContext(ctx).
		Model(&models.DietPlanMeal{}).
		Where("diet_plan_id = ?", plan.ID).
		Pluck("id", &mealIDs).Error
	if err != nil {
		return err
	}
	if len(mealIDs) > 0 {
		err = s.db.WithContext(ctx).
			Where("diet_plan_meal_id IN ?", mealIDs).
			Delete(&models.DietPlanMealItem{}).Error
		if err != nil {
			return err
		}
	}
	err = s.db.WithContext(ctx).
		Where("diet_plan_id = ?", plan.ID).
		Delete(&models.DietPlanMeal{}).Error
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&plan).Error
}
