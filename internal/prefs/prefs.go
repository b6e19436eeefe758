// Package prefs defines the user preference document that drives planning and
// its normalization rules. Preferences arrive as loosely validated JSON from
// the UI, the CLI or the Telegram bot; Normalize makes the document safe for
// every downstream consumer so none of them re-checks defaults.
package prefs

// Preferences captures everything the user told us about how they want to
// eat this week. All slice fields are optional; empty means "no constraint".
type Preferences struct {
	Calories       float64 `json:"calories"`
	ProteinPercent float64 `json:"proteinPercent"`
	CarbsPercent   float64 `json:"carbsPercent"`
	FatsPercent    float64 `json:"fatsPercent"`

	ProteinSources []string `json:"proteinSources"`
	CarbSources    []string `json:"carbSources"`
	FatSources     []string `json:"fatSources"`

	Allergies         []string `json:"allergies"`
	MedicalConditions []string `json:"medicalConditions"`
	Medications       []string `json:"medications"`
	Restrictions      []string `json:"dietaryRestrictions"`

	Cuisines     []string `json:"cuisines"`
	CuisineNotes string   `json:"cuisineNotes"`

	RecipeInventory  []string `json:"recipeInventory"`
	FridgeInventory  []string `json:"fridgeInventory"`
	MealServiceMeals []string `json:"mealServiceMeals"`

	// EatingOutMeals holds slot keys like "Monday Breakfast" that should be
	// left open in the plan.
	EatingOutMeals []string `json:"eatingOutMeals"`

	CookTimesPerWeek  int `json:"cookTimesPerWeek"`
	IngredientVariety int `json:"ingredientVariety"`

	MealExamples    []string `json:"mealExamples"`
	AdditionalNotes string   `json:"additionalNotes"`
}

// Default targets applied when the user leaves the nutrition section blank.
const (
	defaultCalories       = 2000
	defaultProteinPercent = 30
	defaultCarbsPercent   = 40
	defaultFatsPercent    = 30

	defaultCookTimes  = 7
	defaultIngredient = 3
)

// Normalize fills missing values with defaults and clamps the sliders to
// their legal ranges. It never fails and is idempotent: normalizing an
// already-normalized document changes nothing. Macro percentages are taken
// as entered; they are not forced to sum to 100.
func (p *Preferences) Normalize() {
	if p.Calories <= 0 {
		p.Calories = defaultCalories
	}
	if p.ProteinPercent <= 0 {
		p.ProteinPercent = defaultProteinPercent
	}
	if p.CarbsPercent <= 0 {
		p.CarbsPercent = defaultCarbsPercent
	}
	if p.FatsPercent <= 0 {
		p.FatsPercent = defaultFatsPercent
	}

	if p.CookTimesPerWeek < 1 || p.CookTimesPerWeek > 7 {
		p.CookTimesPerWeek = defaultCookTimes
	}
	if p.IngredientVariety < 1 || p.IngredientVariety > 5 {
		p.IngredientVariety = defaultIngredient
	}

	p.ProteinSources = ensure(p.ProteinSources)
	p.CarbSources = ensure(p.CarbSources)
	p.FatSources = ensure(p.FatSources)
	p.Allergies = ensure(p.Allergies)
	p.MedicalConditions = ensure(p.MedicalConditions)
	p.Medications = ensure(p.Medications)
	p.Restrictions = ensure(p.Restrictions)
	p.Cuisines = ensure(p.Cuisines)
	p.RecipeInventory = ensure(p.RecipeInventory)
	p.FridgeInventory = ensure(p.FridgeInventory)
	p.MealServiceMeals = ensure(p.MealServiceMeals)
	p.EatingOutMeals = ensure(p.EatingOutMeals)
	p.MealExamples = ensure(p.MealExamples)
}

func ensure(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
