package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Muskanagrawal2005/AyuBalance/services"

	"github.com/gin-gonic/gin"
)

type IntakeController struct {
	Intake *services.IntakeService
	Hub    *services.RealtimeHub
}

func NewIntakeController(intake *services.IntakeService, hub *services.RealtimeHub) *IntakeController {
	return &IntakeController{Intake: intake, Hub: hub}
}

type LogIntakeInput struct {
	Date     string  `json:"date" binding:"required"` // YYYY-MM-DD
	MealType string  `json:"mealType" binding:"required"`
	FoodID   uint    `json:"foodId" binding:"required"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// LogIntake appends one food to the calling patient's diary and returns
// the updated day. The patient's dietitian gets a realtime push.
func (ic *IntakeController) LogIntake(c *gin.Context) {
	patientID := c.GetUint("userID")

	var input LogIntakeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	dayLog, err := ic.Intake.AppendEntry(
		c.Request.Context(),
		patientID, date, input.MealType, input.FoodID, input.Quantity, input.Unit,
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFoodNotFound), errors.Is(err, services.ErrPatientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidMealSlot):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ic.Hub.BroadcastIntake(dayLog.DietitianID, patientID, dayLog)

	c.JSON(http.StatusOK, dayLog)
}

// GetIntakeByDate returns the calling patient's diary for one day; absent
// days come back as the empty shape, never a 404.
func (ic *IntakeController) GetIntakeByDate(c *gin.Context) {
	patientID := c.GetUint("userID")

	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}

	dayLog, err := ic.Intake.GetLog(c.Request.Context(), patientID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dayLog)
}

// GetPatientLog is the dietitian-side view of one patient day.
func (ic *IntakeController) GetPatientLog(c *gin.Context) {
	patient, ok := ownedPatient(c)
	if !ok {
		return
	}

	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}

	dayLog, err := ic.Intake.GetLog(c.Request.Context(), patient.ID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dayLog)
}

// parseDateQuery reads a required YYYY-MM-DD query param, defaulting to
// today when absent, and writes the 400 itself on garbage input.
func parseDateQuery(c *gin.Context, key string) (time.Time, bool) {
	v := c.Query(key)
	if v == "" {
		return time.Now(), true
	}
	date, err := time.ParseInLocation("2006-01-02", v, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + key})
		return time.Time{}, false
	}
	return date, true
}
