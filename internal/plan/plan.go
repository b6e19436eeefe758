// Package plan assembles weekly meal plans. The controller prefers the
// four-stage agent pipeline and falls back to deterministic catalog
// selection whenever generation is unavailable or fails; the fallback always
// succeeds, so plan generation as a whole never errors out on the LLM path.
package plan

import (
	"fine-ill-eat/internal/agents"
	"fine-ill-eat/internal/meal"
	"fine-ill-eat/internal/shopping"
)

// Days are the plan's day names, Monday first.
var Days = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Fallback reasons reported to the UI when the agent path was not used.
const (
	FallbackNoCredential    = "no_credential"
	FallbackGenerationError = "generation_error"
)

// DayPlan holds one day's three meals.
type DayPlan struct {
	Day       string    `json:"day"`
	Breakfast meal.Meal `json:"breakfast"`
	Lunch     meal.Meal `json:"lunch"`
	Dinner    meal.Meal `json:"dinner"`
}

// WeeklyPlan is the seven-day grid.
type WeeklyPlan struct {
	Days []DayPlan `json:"days"`
}

// Result is the full planning response: the grid, the derived shopping list
// and metadata about how the plan was produced.
type Result struct {
	Plan            WeeklyPlan         `json:"plan"`
	ShoppingList    []shopping.Item    `json:"shoppingList"`
	UsedAgentPath   bool               `json:"usedAgentPath"`
	FallbackReason  string             `json:"fallbackReason,omitempty"`
	AgentSteps      []agents.AgentStep `json:"agentSteps,omitempty"`
	CookSchedule    string             `json:"cookSchedule,omitempty"`
	IngredientReuse string             `json:"ingredientReuse,omitempty"`
}

// slotType maps a flat slot index (0-20) to its meal type: the first seven
// slots are breakfasts, then lunches, then dinners.
func slotType(i int) meal.Type {
	switch {
	case i < 7:
		return meal.Breakfast
	case i < 14:
		return meal.Lunch
	default:
		return meal.Dinner
	}
}

// slotDay maps a flat slot index to its day name.
func slotDay(i int) string {
	return Days[i%7]
}

// weeklyFromSlots folds 21 slot meals into the day grid.
func weeklyFromSlots(slots []meal.Meal) WeeklyPlan {
	wp := WeeklyPlan{Days: make([]DayPlan, 7)}
	for d := 0; d < 7; d++ {
		wp.Days[d] = DayPlan{
			Day:       Days[d],
			Breakfast: slots[d],
			Lunch:     slots[7+d],
			Dinner:    slots[14+d],
		}
	}
	return wp
}
