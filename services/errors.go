package services

import "errors"

// Sentinel errors surfaced across the service layer. Controllers map these
// onto HTTP statuses; everything else is a 500.
var (
	ErrFoodNotFound    = errors.New("food item not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrPlanNotFound    = errors.New("diet plan not found")
	ErrInvalidMealSlot = errors.New("invalid meal type")
)
