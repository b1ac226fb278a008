package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Muskanagrawal2005/AyuBalance/config"
	"github.com/Muskanagrawal2005/AyuBalance/models"
	"github.com/Muskanagrawal2005/AyuBalance/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreatePatientInput struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Mobile         string `json:"mobile"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	AyurvedicDosha string `json:"ayurvedic_dosha"`
}

// CreatePatient registers a patient under the calling dietitian and mails
// them a temporary password. If the mail fails the account still exists;
// the response then carries the password so the clinician can pass it on.
func CreatePatient(c *gin.Context) {
	dietitianID := c.GetUint("userID")

	var input CreatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tempPassword := utils.GenerateTempPassword(8)
	hashed, err := utils.HashPassword(tempPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	patient := models.User{
		Name:           input.Name,
		Email:          input.Email,
		Password:       hashed,
		Role:           models.RolePatient,
		Mobile:         input.Mobile,
		Age:            input.Age,
		Gender:         input.Gender,
		AyurvedicDosha: input.AyurvedicDosha,
		CreatedByID:    &dietitianID,
	}
	if err := config.DB.Create(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := utils.SendPatientCredentials(patient.Email, patient.Name, tempPassword); err != nil {
		log.Printf("credentials email to %s failed: %v", patient.Email, err)
		c.JSON(http.StatusCreated, gin.H{
			"message":       "patient created, but email failed; note password manually",
			"patient":       patient,
			"temp_password": tempPassword,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "patient created and email sent",
		"patient": patient,
	})
}

// GetMyPatients lists the patients the calling dietitian created.
func GetMyPatients(c *gin.Context) {
	dietitianID := c.GetUint("userID")

	var patients []models.User
	err := config.DB.
		Where("created_by_id = ? AND role = ?", dietitianID, models.RolePatient).
		Order("name ASC").
		Find(&patients).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patients)
}

func GetPatientByID(c *gin.Context) {
	patient, ok := ownedPatient(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, patient)
}

type UpdatePatientInput struct {
	Name           string `json:"name"`
	Mobile         string `json:"mobile"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	AyurvedicDosha string `json:"ayurvedic_dosha"`
}

func UpdatePatient(c *gin.Context) {
	patient, ok := ownedPatient(c)
	if !ok {
		return
	}

	var input UpdatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != "" {
		patient.Name = input.Name
	}
	if input.Mobile != "" {
		patient.Mobile = input.Mobile
	}
	if input.Age != 0 {
		patient.Age = input.Age
	}
	if input.Gender != "" {
		patient.Gender = input.Gender
	}
	if input.AyurvedicDosha != "" {
		patient.AyurvedicDosha = input.AyurvedicDosha
	}

	if err := config.DB.Save(patient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patient)
}

func DeletePatient(c *gin.Context) {
	patient, ok := ownedPatient(c)
	if !ok {
		return
	}
	if err := config.DB.Delete(patient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "patient removed"})
}

// ownedPatient resolves the :id path param to a patient created by the
// calling dietitian, writing the error response itself on failure. The
// engine performs no access control; this is where the dietitian→patient
// rule lives.
func ownedPatient(c *gin.Context) (*models.User, bool) {
	dietitianID := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient id"})
		return nil, false
	}

	var patient models.User
	err = config.DB.
		Where("id = ? AND role = ? AND created_by_id = ?", uint(id), models.RolePatient, dietitianID).
		First(&patient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return &patient, true
}
