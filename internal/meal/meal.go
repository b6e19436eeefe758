package meal

import (
	"fmt"

	"github.com/google/uuid"
)

// Type is one of the three daily meal slots.
type Type string

const (
	Breakfast Type = "breakfast"
	Lunch     Type = "lunch"
	Dinner    Type = "dinner"
)

// ParseType validates a raw meal-type string. An unknown value is a hard
// request error: there is no safe default slot to substitute.
func ParseType(raw string) (Type, error) {
	switch Type(raw) {
	case Breakfast, Lunch, Dinner:
		return Type(raw), nil
	}
	return "", fmt.Errorf("invalid meal type %q", raw)
}

// idPrefix returns the two-letter id prefix for a meal type ("br", "lu", "di").
func (t Type) idPrefix() string {
	if len(t) < 2 {
		return "xx"
	}
	return string(t)[:2]
}

// PlaceholderName is the exact name of the synthetic eating-out meal.
const PlaceholderName = "Eating Out"

// Meal is a candidate meal, either from the static catalog or produced by
// generation. JSON field names match the plan document the UI consumes.
type Meal struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PrepTime    string `json:"prepTime"`
	Servings    int    `json:"servings"`

	Tags        []string `json:"tags"`
	Ingredients []string `json:"ingredients"`
	Directions  string   `json:"directions,omitempty"`

	MealType Type     `json:"mealType"`
	Cuisine  []string `json:"cuisine"`

	ProteinSources []string `json:"proteinSources"`
	CarbSources    []string `json:"carbSources"`
	FatSources     []string `json:"fatSources"`

	EstimatedCalories float64 `json:"estimatedCalories"`
	EstimatedProtein  float64 `json:"estimatedProtein"`
	EstimatedCarbs    float64 `json:"estimatedCarbs"`
	EstimatedFats     float64 `json:"estimatedFats"`

	ContainsAllergens   []string `json:"containsAllergens"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	MedicalFriendly     []string `json:"medicalFriendly"`
	MedicationSafe      []string `json:"medicationSafe"`
}

// IsPlaceholder reports whether the meal is the synthetic eating-out slot.
func (m *Meal) IsPlaceholder() bool {
	return m.Name == PlaceholderName
}

// NewID generates a fresh meal identifier for the given type.
func NewID(t Type) string {
	return fmt.Sprintf("%s-%s", t.idPrefix(), uuid.NewString())
}

// Clone returns an independent copy of the meal with a freshly generated
// identifier. Catalog entries are immutable; every selection emits a clone so
// identifiers never collide across a plan.
func (m Meal) Clone() Meal {
	c := m
	c.ID = NewID(m.MealType)
	c.Tags = append([]string(nil), m.Tags...)
	c.Ingredients = append([]string(nil), m.Ingredients...)
	c.Cuisine = append([]string(nil), m.Cuisine...)
	c.ProteinSources = append([]string(nil), m.ProteinSources...)
	c.CarbSources = append([]string(nil), m.CarbSources...)
	c.FatSources = append([]string(nil), m.FatSources...)
	c.ContainsAllergens = append([]string(nil), m.ContainsAllergens...)
	c.DietaryRestrictions = append([]string(nil), m.DietaryRestrictions...)
	c.MedicalFriendly = append([]string(nil), m.MedicalFriendly...)
	c.MedicationSafe = append([]string(nil), m.MedicationSafe...)
	return c
}

// Placeholder builds the eating-out meal for a slot: zero nutrition, no
// ingredients, excluded from used-name tracking and the shopping list.
func Placeholder(t Type) Meal {
	return Meal{
		ID:          NewID(t),
		Name:        PlaceholderName,
		Description: "This meal slot is reserved for dining out or ordering in",
		PrepTime:    "0 mins",
		Servings:    1,
		Tags:        []string{"Eating Out"},
		Ingredients: []string{},
		MealType:    t,
	}
}
