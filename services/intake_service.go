package services

import (
	"context"
	"errors"
	"time"

	"github.com/Muskanagrawal2005/AyuBalance/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IntakeService owns the per-day food diary. The load-bearing invariant is
// one IntakeLog per (patient, date); appends always land on that day's row.
type IntakeService struct{ db *gorm.DB }

func NewIntakeService(db *gorm.DB) *IntakeService { return &IntakeService{db: db} }

// DayLog is the wire shape of one day's diary: entries grouped into the
// four fixed meal slots, all slots always present.
type DayLog struct {
	ID            uint                   `json:"id,omitempty"`
	PatientID     uint                   `json:"patient_id"`
	DietitianID   uint                   `json:"-"`
	Date          string                 `json:"date"`
	Meals         map[string][]EntryView `json:"meals"`
	TotalCalories float64                `json:"total_calories"`
}

// EntryView is one logged food. Calories is the value cached at log time;
// the analysis endpoints recompute from the current catalog instead.
type EntryView struct {
	ID       uint    `json:"id"`
	FoodID   uint    `json:"food_id"`
	FoodName string  `json:"food_name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
}

// AppendEntry records one food against the patient's diary for the given
// day, creating the day's log if it does not exist yet, and returns the
// updated day.
func (s *IntakeService) AppendEntry(
	ctx context.Context,
	patientID uint,
	date time.Time,
	slot string,
	foodID uint,
	quantity float64,
	unit string,
) (*DayLog, error) {
	if !models.ValidMealSlot(slot) {
		return nil, ErrInvalidMealSlot
	}
	if quantity == 0 {
		quantity = 1
	}

	var patient models.User
	err := s.db.WithContext(ctx).
		Where("id = ? AND role = ?", patientID, models.RolePatient).
		First(&patient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, err
	}

	var food models.FoodItem
	err = s.db.WithContext(ctx).First(&food, foodID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		return nil, err
	}

	day := dayStart(date)
	dayLog, err := s.findOrCreateLog(ctx, &patient, day)
	if err != nil {
		return nil, err
	}

	// Older rows predate the clinician column; backfill lazily.
	if dayLog.DietitianID == 0 && patient.CreatedByID != nil {
		dayLog.DietitianID = *patient.CreatedByID
	}

	entry := models.IntakeEntry{
		IntakeLogID: dayLog.ID,
		MealSlot:    slot,
		FoodItemID:  food.ID,
		Quantity:    quantity,
		Unit:        unit,
		Calories:    food.Calories * quantity,
	}

	// The entry insert and the running-sum bump commit together; the
	// increment happens in SQL so concurrent appends to the same day
	// never lose each other's calories.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		return tx.Model(&models.IntakeLog{}).
			Where("id = ?", dayLog.ID).
			Updates(map[string]any{
				"total_calories": gorm.Expr("total_calories + ?", entry.Calories),
				"dietitian_id":   dayLog.DietitianID,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetLog(ctx, patientID, day)
}

// findOrCreateLog resolves the unique day row. Creation uses ON CONFLICT
// DO NOTHING so two concurrent first-appends for the same day cannot
// produce duplicates; the loser of the race re-fetches the winner's row.
func (s *IntakeService) findOrCreateLog(ctx context.Context, patient *models.User, day time.Time) (*models.IntakeLog, error) {
	var dayLog models.IntakeLog
	err := s.db.WithContext(ctx).
		Where("patient_id = ? AND date = ?", patient.ID, day).
		First(&dayLog).Error
	if err == nil {
		return &dayLog, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := models.IntakeLog{PatientID: patient.ID, Date: day}
	if patient.CreatedByID != nil {
		fresh.DietitianID = *patient.CreatedByID
	}
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&fresh)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 1 {
		return &fresh, nil
	}

	// Lost the race; the winner's row exists now.
	err = s.db.WithContext(ctx).
		Where("patient_id = ? AND date = ?", patient.ID, day).
		First(&dayLog).Error
	if err != nil {
		return nil, err
	}
	return &dayLog, nil
}

// GetLog returns the day's diary, or an empty-but-fully-shaped day when
// nothing was logged, so callers never branch on absence.
func (s *IntakeService) GetLog(ctx context.Context, patientID uint, date time.Time) (*DayLog, error) {
	day := dayStart(date)

	var dayLog models.IntakeLog
	err := s.db.WithContext(ctx).
		Preload("Entries.FoodItem").
		Where("patient_id = ? AND date = ?", patientID, day).
		First(&dayLog).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return emptyDayLog(patientID, day), nil
	}
	if err != nil {
		return nil, err
	}

	out := emptyDayLog(patientID, day)
	out.ID = dayLog.ID
	out.DietitianID = dayLog.DietitianID
	out.TotalCalories = dayLog.TotalCalories
	for _, e := range dayLog.Entries {
		out.Meals[e.MealSlot] = append(out.Meals[e.MealSlot], EntryView{
			ID:       e.ID,
			FoodID:   e.FoodItemID,
			FoodName: e.FoodItem.Name,
			Quantity: e.Quantity,
			Unit:     e.Unit,
			Calories: e.Calories,
		})
	}
	return out, nil
}

func emptyDayLog(patientID uint, day time.Time) *DayLog {
	meals := make(map[string][]EntryView, len(models.MealSlots))
	for _, slot := range models.MealSlots {
		meals[slot] = []EntryView{}
	}
	return &DayLog{
		PatientID: patientID,
		Date:      day.Format("2006-01-02"),
		Meals:     meals,
	}
}
