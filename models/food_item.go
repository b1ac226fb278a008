package models

import (
	"strings"

	"gorm.io/gorm"
)

// Effect of a food on a single dosha.
const (
	DoshaPacifies   = "pacifies"
	DoshaAggravates = "aggravates"
	DoshaNeutral    = "neutral"
)

// FoodItem is an immutable catalog row: per-serving nutrition plus the
// Ayurvedic classification used by the analysis engine. Rows are created by
// dietitians (or the seed data set) and never mutated afterwards.
type FoodItem struct {
	gorm.Model
	Name        string `gorm:"index;not null"`
	ServingSize string `gorm:"default:'100g'"`

	// Per-serving nutritional values.
	Calories float64 `gorm:"not null"`
	ProteinG float64
	CarbsG   float64
	FatG     float64
	FiberG   float64

	// Ayurvedic properties.
	Rasa   string // taste
	Virya  string // potency (heating/cooling)
	Vipaka string // post-digestive effect
	Guna   string // qualities (heavy, light, oily, ...)

	// Directional effect on each dosha, one of the Dosha* constants.
	VataEffect  string `gorm:"type:varchar(16);default:'neutral'"`
	PittaEffect string `gorm:"type:varchar(16);default:'neutral'"`
	KaphaEffect string `gorm:"type:varchar(16);default:'neutral'"`
}

// NormalizeDoshaEffect maps free-form effect text onto the canonical
// constants. Anything unrecognized is neutral.
func NormalizeDoshaEffect(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	switch {
	case strings.Contains(v, "pacif"):
		return DoshaPacifies
	case strings.Contains(v, "aggrav"):
		return DoshaAggravates
	default:
		return DoshaNeutral
	}
}
