package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Muskanagrawal2005/AyuBalance/services"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	Plans *services.PlanService
}

func NewPlanController(plans *services.PlanService) *PlanController {
	return &PlanController{Plans: plans}
}

type CreatePlanInput struct {
	Name         string                   `json:"name"`
	Instructions string                   `json:"instructions"`
	Meals        []services.PlanMealInput `json:"meals" binding:"required"`
}

// CreatePlan prescribes a new plan for one of the dietitian's patients.
// The new plan supersedes older ones for target resolution.
func (pc *PlanController) CreatePlan(c *gin.Context) {
	dietitianID := c.GetUint("userID")
	patient, ok := ownedPatient(c)
	if !ok {
		return
	}

	var input CreatePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := pc.Plans.Create(
		c.Request.Context(),
		dietitianID, patient.ID, input.Name, input.Instructions, input.Meals,
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFoodNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidMealSlot):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// GetPatientPlans lists one patient's plans newest-first (dietitian view).
func (pc *PlanController) GetPatientPlans(c *gin.Context) {
	patient, ok := ownedPatient(c)
	if !ok {
		return
	}

	plans, err := pc.Plans.ListForPatient(c.Request.Context(), patient.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plans)
}

// DeletePlan removes a plan the calling dietitian created.
func (pc *PlanController) DeletePlan(c *gin.Context) {
	dietitianID := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	err = pc.Plans.Delete(c.Request.Context(), dietitianID, uint(id))
	if errors.Is(err, services.ErrPlanNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "plan deleted"})
}

// GetMyPlans lists the calling patient's own plans newest-first.
func (pc *PlanController) GetMyPlans(c *gin.Context) {
	patientID := c.GetUint("userID")

	plans, err := pc.Plans.ListForPatient(c.Request.Context(), patientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plans)
}
