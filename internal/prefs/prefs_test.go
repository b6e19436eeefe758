package prefs

import "testing"

func TestNormalizeDefaults(t *testing.T) {
	var p Preferences
	p.Normalize()

	if p.Calories != 2000 {
		t.Errorf("expected default calories 2000, got %v", p.Calories)
	}
	if p.ProteinPercent != 30 || p.CarbsPercent != 40 || p.FatsPercent != 30 {
		t.Errorf("unexpected default macro split: %v/%v/%v", p.ProteinPercent, p.CarbsPercent, p.FatsPercent)
	}
	if p.CookTimesPerWeek != 7 {
		t.Errorf("expected default cook times 7, got %d", p.CookTimesPerWeek)
	}
	if p.IngredientVariety != 3 {
		t.Errorf("expected default ingredient variety 3, got %d", p.IngredientVariety)
	}
	if p.Allergies == nil || p.EatingOutMeals == nil {
		t.Error("expected nil slices to become empty slices")
	}
}

func TestNormalizeClampsSliders(t *testing.T) {
	p := Preferences{CookTimesPerWeek: 12, IngredientVariety: -1}
	p.Normalize()
	if p.CookTimesPerWeek != 7 {
		t.Errorf("out-of-range cook times should reset to 7, got %d", p.CookTimesPerWeek)
	}
	if p.IngredientVariety != 3 {
		t.Errorf("out-of-range variety should reset to 3, got %d", p.IngredientVariety)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	p := Preferences{
		Calories:          1800,
		CookTimesPerWeek:  3,
		IngredientVariety: 5,
		Allergies:         []string{"Peanuts"},
	}
	p.Normalize()
	first := p
	p.Normalize()

	if p.Calories != first.Calories || p.CookTimesPerWeek != first.CookTimesPerWeek ||
		p.IngredientVariety != first.IngredientVariety || len(p.Allergies) != len(first.Allergies) {
		t.Error("second Normalize changed an already-normalized document")
	}
}
