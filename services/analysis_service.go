package services

import (
	"context"
	"math"
	"time"

	"github.com/Muskanagrawal2005/AyuBalance/models"

	"gorm.io/gorm"
)

// AnalysisService turns a patient's intake logs over a date range into a
// normalized nutritional and dosha comparison against their prescribed
// targets.
type AnalysisService struct {
	db    *gorm.DB
	plans *PlanService
}

func NewAnalysisService(db *gorm.DB, plans *PlanService) *AnalysisService {
	return &AnalysisService{db: db, plans: plans}
}

// NutrientTotals holds per-day averages over the queried range, rounded to
// the nearest integer per field.
type NutrientTotals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// DoshaAnalysis counts aggravation events: one per logged entry per dosha
// the food aggravates. The same food eaten twice counts twice. Neutral is
// kept for wire compatibility and never incremented.
type DoshaAnalysis struct {
	Vata    int `json:"Vata"`
	Pitta   int `json:"Pitta"`
	Kapha   int `json:"Kapha"`
	Neutral int `json:"Neutral"`
}

// IntakeAggregate is the range-scan output before targets are merged in.
type IntakeAggregate struct {
	DaysLogged    int            `json:"daysLogged"`
	Totals        NutrientTotals `json:"totals"`
	DoshaAnalysis DoshaAnalysis  `json:"doshaAnalysis"`
}

// AnalysisResult is the composed response served identically to the
// patient and their dietitian.
type AnalysisResult struct {
	DaysLogged    int             `json:"daysLogged"`
	Totals        NutrientTotals  `json:"totals"`
	Targets       NutrientTargets `json:"targets"`
	PlanName      string          `json:"planName"`
	DoshaAnalysis DoshaAnalysis   `json:"doshaAnalysis"`
}

// Aggregate scans every log in the inclusive [from, to] range. Nutrient
// sums are recomputed live from the catalog's per-serving values — not the
// per-entry cached calories — so later catalog edits are reflected here
// even though the cached display value stays put. Totals come back as
// daily averages: the range sum divided by the calendar days spanned
// (minimum 1), rounded per field. No data means zeros, never an error.
func (s *AnalysisService) Aggregate(ctx context.Context, patientID uint, from, to time.Time) (*IntakeAggregate, error) {
	var logs []models.IntakeLog
	err := s.db.WithContext(ctx).
		Preload("Entries.FoodItem").
		Where("patient_id = ? AND date BETWEEN ? AND ?", patientID, dayStart(from), dayEnd(to)).
		Order("date ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	var cal, prot, carbs, fat float64
	var dosha DoshaAnalysis
	for _, l := range logs {
		for _, e := range l.Entries {
			qty := e.Quantity
			if qty == 0 {
				qty = 1
			}
			f := e.FoodItem
			cal += f.Calories * qty
			prot += f.ProteinG * qty
			carbs += f.CarbsG * qty
			fat += f.FatG * qty

			if f.VataEffect == models.DoshaAggravates {
				dosha.Vata++
			}
			if f.PittaEffect == models.DoshaAggravates {
				dosha.Pitta++
			}
			if f.KaphaEffect == models.DoshaAggravates {
				dosha.Kapha++
			}
		}
	}

	days := daysSpanned(from, to)
	return &IntakeAggregate{
		DaysLogged: len(logs),
		Totals: NutrientTotals{
			Calories: roundAvg(cal, days),
			Protein:  roundAvg(prot, days),
			Carbs:    roundAvg(carbs, days),
			Fat:      roundAvg(fat, days),
		},
		DoshaAnalysis: dosha,
	}, nil
}

// Compose merges target resolution (range-independent) with the range
// aggregate. There is no role-based branching here; patient and dietitian
// callers get the identical computation.
func (s *AnalysisService) Compose(ctx context.Context, patientID uint, from, to time.Time) (*AnalysisResult, error) {
	targets, planName, err := s.plans.ResolveTargets(ctx, patientID)
	if err != nil {
		return nil, err
	}
	agg, err := s.Aggregate(ctx, patientID, from, to)
	if err != nil {
		return nil, err
	}
	return &AnalysisResult{
		DaysLogged:    agg.DaysLogged,
		Totals:        agg.Totals,
		Targets:       targets,
		PlanName:      planName,
		DoshaAnalysis: agg.DoshaAnalysis,
	}, nil
}

// daysSpanned is the calendar-day length of the inclusive range, floored
// at 1 so single-day queries divide by one. Rounding the midnight-to-
// midnight duration keeps the count exact across DST transitions, where a
// local day is 23 or 25 hours.
func daysSpanned(from, to time.Time) int {
	d := int(dayStart(to).Sub(dayStart(from)).Round(24*time.Hour).Hours()/24) + 1
	if d < 1 {
		d = 1
	}
	return d
}

func roundAvg(sum float64, days int) int {
	return int(math.Round(sum / float64(days)))
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
