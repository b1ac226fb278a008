package config

import (
	"os"
	"strconv"
)

// NutrientTargets holds the clinic's fallback daily targets, used for
// patients who have no diet plan yet.
type NutrientTargets struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// DefaultTargets reads the fallback targets from the environment so each
// deployment can set its own clinical defaults. Unset values fall back to
// the standard RDA numbers.
func DefaultTargets() NutrientTargets {
	return NutrientTargets{
		Calories: envFloat("TARGET_CALORIES", 2000),
		Protein:  envFloat("TARGET_PROTEIN_G", 50),
		Carbs:    envFloat("TARGET_CARBS_G", 250),
		Fat:      envFloat("TARGET_FAT_G", 70),
	}
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
