package models

import "testing"

func TestNormalizeDoshaEffect(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value string
		want  string
	}{
		{"canonical pacifies", "pacifies", DoshaPacifies},
		{"canonical aggravates", "aggravates", DoshaAggravates},
		{"canonical neutral", "neutral", DoshaNeutral},
		{"verbose pacify", "Pacifies Vata", DoshaPacifies},
		{"uppercase aggravate", "AGGRAVATING", DoshaAggravates},
		{"padded", "  aggravates  ", DoshaAggravates},
		{"unknown", "balances", DoshaNeutral},
		{"empty", "", DoshaNeutral},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeDoshaEffect(tt.value); got != tt.want {
				t.Fatalf("NormalizeDoshaEffect(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidMealSlot(t *testing.T) {
	t.Parallel()

	for _, slot := range MealSlots {
		if !ValidMealSlot(slot) {
			t.Fatalf("ValidMealSlot(%q) = false, want true", slot)
		}
	}
	for _, bad := range []string{"", "brunch", "Breakfast"} {
		if ValidMealSlot(bad) {
			t.Fatalf("ValidMealSlot(%q) = true, want false", bad)
		}
	}
}
