package controllers

import (
	"net/http"

	"github.com/Muskanagrawal2005/AyuBalance/models"
	"github.com/Muskanagrawal2005/AyuBalance/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{Foods: foods}
}

// ListFoods serves catalog search for both roles.
func (fc *FoodController) ListFoods(c *gin.Context) {
	foods, err := fc.Foods.Search(c.Request.Context(), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

type CreateFoodInput struct {
	Name        string  `json:"name" binding:"required"`
	ServingSize string  `json:"serving_size"`
	Calories    float64 `json:"calories"` // zero is legitimate (water, teas)
	ProteinG    float64 `json:"protein_g"`
	CarbsG      float64 `json:"carbs_g"`
	FatG        float64 `json:"fat_g"`
	FiberG      float64 `json:"fiber_g"`
	Rasa        string  `json:"rasa"`
	Virya       string  `json:"virya"`
	Vipaka      string  `json:"vipaka"`
	Guna        string  `json:"guna"`
	Vata        string  `json:"vata"`
	Pitta       string  `json:"pitta"`
	Kapha       string  `json:"kapha"`
}

// CreateFood adds a manually entered catalog row (dietitians only).
func (fc *FoodController) CreateFood(c *gin.Context) {
	var input CreateFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food := models.FoodItem{
		Name:        input.Name,
		ServingSize: input.ServingSize,
		Calories:    input.Calories,
		ProteinG:    input.ProteinG,
		CarbsG:      input.CarbsG,
		FatG:        input.FatG,
		FiberG:      input.FiberG,
		Rasa:        input.Rasa,
		Virya:       input.Virya,
		Vipaka:      input.Vipaka,
		Guna:        input.Guna,
		VataEffect:  input.Vata,
		PittaEffect: input.Pitta,
		KaphaEffect: input.Kapha,
	}
	if err := fc.Foods.Create(c.Request.Context(), &food); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, food)
}
