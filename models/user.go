package models

import (
	"gorm.io/gorm"
)

const (
	RoleDietitian = "dietitian"
	RolePatient   = "patient"
)

type User struct {
	gorm.Model
	Name     string `gorm:"not null"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"type:varchar(20);not null;default:'patient'"`

	// Patient profile fields, filled in by the dietitian who creates the
	// account.
	Mobile         string
	Age            int
	Gender         string
	AyurvedicDosha string // constitutional type, e.g. "Vata-Pitta"

	// Dietitian who created this patient; the patient's assigned clinician.
	CreatedByID *uint `gorm:"index"`
}
