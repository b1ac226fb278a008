package controllers

import (
	"net/http"
	"time"

	"github.com/Muskanagrawal2005/AyuBalance/services"

	"github.com/gin-gonic/gin"
)

type AnalysisController struct {
	Svc *services.AnalysisService
}

func NewAnalysisController(svc *services.AnalysisService) *AnalysisController {
	return &AnalysisController{Svc: svc}
}

// GetMyAnalysis serves the calling patient their own intake analysis.
func (ac *AnalysisController) GetMyAnalysis(c *gin.Context) {
	patientID := c.GetUint("userID")
	ac.respond(c, patientID)
}

// GetPatientAnalysis serves a dietitian the analysis of one of their
// patients. The computation is identical to the patient view; only the
// source of the patient id differs.
func (ac *AnalysisController) GetPatientAnalysis(c *gin.Context) {
	patient, ok := ownedPatient(c)
	if !ok {
		return
	}
	ac.respond(c, patient.ID)
}

func (ac *AnalysisController) respond(c *gin.Context, patientID uint) {
	from, to, ok := parseRange(c)
	if !ok {
		return
	}

	out, err := ac.Svc.Compose(c.Request.Context(), patientID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// parseRange reads from/to (YYYY-MM-DD, inclusive), defaulting to the
// current month. Unparseable dates are rejected here; the engine below
// never sees them.
func parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)

	fromStr := c.DefaultQuery("from", first.Format("2006-01-02"))
	toStr := c.DefaultQuery("to", last.Format("2006-01-02"))

	from, err := time.ParseInLocation("2006-01-02", fromStr, now.Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
		return time.Time{}, time.Time{}, false
	}
	to, err := time.ParseInLocation("2006-01-02", toStr, now.Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
		return time.Time{}, time.Time{}, false
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "`to` must be on/after `from`"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
