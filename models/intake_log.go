package models

import (
	"time"

	"gorm.io/gorm"
)

// The four fixed meal slots of a day.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// MealSlots lists the slots in presentation order.
var MealSlots = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

func ValidMealSlot(s string) bool {
	switch s {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// IntakeLog is one patient's food diary for a single calendar day. Date is
// stored at local midnight and the (patient_id, date) pair is unique, so
// every append for a day lands on the same row.
type IntakeLog struct {
	gorm.Model
	PatientID   uint      `gorm:"uniqueIndex:idx_intake_patient_date;not null"`
	DietitianID uint      `gorm:"index"` // assigned clinician, backfilled when missing
	Date        time.Time `gorm:"uniqueIndex:idx_intake_patient_date;not null"`
	Entries     []IntakeEntry

	// Running sum maintained on each append, never recomputed from scratch.
	TotalCalories float64
}

// IntakeEntry is one logged food, tagged with the meal slot it belongs to.
type IntakeEntry struct {
	gorm.Model
	IntakeLogID uint   `gorm:"index;not null"`
	MealSlot    string `gorm:"type:varchar(16);not null"`
	FoodItemID  uint   `gorm:"not null"`
	FoodItem    FoodItem
	Quantity    float64 // servings, defaults to 1
	Unit        string  // free text, e.g. "cup"

	// Calories per-serving × quantity, snapshotted at log time. Later
	// catalog edits do not touch this value; the analysis engine recomputes
	// from the catalog instead.
	Calories float64
}
