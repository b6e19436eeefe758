package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"fine-ill-eat/internal/agents"
	"fine-ill-eat/internal/filter"
	"fine-ill-eat/internal/llm"
	"fine-ill-eat/internal/meal"
	"fine-ill-eat/internal/prefs"
)

func testSelector() *filter.Selector {
	return filter.NewSelector(rand.New(rand.NewSource(1)))
}

func checkFullGrid(t *testing.T, res *Result) {
	t.Helper()
	if len(res.Plan.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(res.Plan.Days))
	}
	for i, day := range res.Plan.Days {
		if day.Day != Days[i] {
			t.Errorf("day %d named %q, want %q", i, day.Day, Days[i])
		}
		for _, m := range []meal.Meal{day.Breakfast, day.Lunch, day.Dinner} {
			if m.Name == "" {
				t.Errorf("%s has an empty meal slot", day.Day)
			}
			if m.ID == "" {
				t.Errorf("%s: meal %q has no identifier", day.Day, m.Name)
			}
		}
		if day.Breakfast.MealType != meal.Breakfast || day.Lunch.MealType != meal.Lunch || day.Dinner.MealType != meal.Dinner {
			t.Errorf("%s has meals in the wrong slots", day.Day)
		}
	}
}

func TestGenerateWithoutBackendFallsBack(t *testing.T) {
	g := NewGenerator(nil, testSelector(), nil)

	p := prefs.Preferences{}
	res, err := g.Generate(context.Background(), &p, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if res.UsedAgentPath {
		t.Error("expected the deterministic path without a backend")
	}
	if res.FallbackReason != FallbackNoCredential {
		t.Errorf("expected fallback reason %q, got %q", FallbackNoCredential, res.FallbackReason)
	}
	checkFullGrid(t, res)
	if len(res.ShoppingList) == 0 {
		t.Error("expected a non-empty shopping list")
	}
}

type erroringGen struct{}

func (erroringGen) GenerateContent(context.Context, string) (llm.ContentResponse, error) {
	return llm.ContentResponse{}, fmt.Errorf("rate limited")
}

func TestGenerateBackendErrorFallsBack(t *testing.T) {
	g := NewGenerator(erroringGen{}, testSelector(), nil)

	p := prefs.Preferences{}
	res, err := g.Generate(context.Background(), &p, nil)
	if err != nil {
		t.Fatalf("Generate must not fail on backend errors: %v", err)
	}
	if res.UsedAgentPath {
		t.Error("expected the deterministic path after a backend error")
	}
	if res.FallbackReason != FallbackGenerationError {
		t.Errorf("expected fallback reason %q, got %q", FallbackGenerationError, res.FallbackReason)
	}
	checkFullGrid(t, res)
}

// fullPlanGen answers the first three stages with filler and the Planner
// stage with a complete 21-meal plan.
type fullPlanGen struct {
	meals int
}

func (g fullPlanGen) GenerateContent(_ context.Context, prompt string) (llm.ContentResponse, error) {
	if !strings.Contains(prompt, "final structured weekly plan") {
		return llm.ContentResponse{Content: "ok"}, nil
	}

	out := agents.PlannerOutput{
		CookSchedule:    "Cook Sunday and Wednesday.",
		IngredientReuse: "Spinach appears three times.",
	}
	for i := 0; i < g.meals; i++ {
		out.Meals = append(out.Meals, meal.Meal{
			Name:        fmt.Sprintf("Generated Meal %d", i),
			Ingredients: []string{"1 cup Spinach"},
			Servings:    1,
		})
	}
	data, err := json.Marshal(out)
	if err != nil {
		return llm.ContentResponse{}, err
	}
	return llm.ContentResponse{Content: string(data)}, nil
}

func TestGenerateAgentPath(t *testing.T) {
	g := NewGenerator(fullPlanGen{meals: 21}, testSelector(), nil)

	p := prefs.Preferences{}
	res, err := g.Generate(context.Background(), &p, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !res.UsedAgentPath {
		t.Fatal("expected the agent path")
	}
	if res.FallbackReason != "" {
		t.Errorf("unexpected fallback reason %q", res.FallbackReason)
	}
	if len(res.AgentSteps) != 4 {
		t.Errorf("expected 4 agent steps, got %d", len(res.AgentSteps))
	}
	if res.CookSchedule != "Cook Sunday and Wednesday." {
		t.Errorf("cook schedule not carried: %q", res.CookSchedule)
	}
	checkFullGrid(t, res)

	// Slot order: meal 0 is Monday breakfast, meal 7 Monday lunch,
	// meal 14 Monday dinner.
	if res.Plan.Days[0].Breakfast.Name != "Generated Meal 0" {
		t.Errorf("Monday breakfast is %q", res.Plan.Days[0].Breakfast.Name)
	}
	if res.Plan.Days[0].Lunch.Name != "Generated Meal 7" {
		t.Errorf("Monday lunch is %q", res.Plan.Days[0].Lunch.Name)
	}
	if res.Plan.Days[6].Dinner.Name != "Generated Meal 20" {
		t.Errorf("Sunday dinner is %q", res.Plan.Days[6].Dinner.Name)
	}
}

func TestGeneratePartialPlanFillsFromCatalog(t *testing.T) {
	g := NewGenerator(fullPlanGen{meals: 5}, testSelector(), nil)

	p := prefs.Preferences{}
	res, err := g.Generate(context.Background(), &p, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !res.UsedAgentPath {
		t.Fatal("a partial plan still counts as the agent path")
	}
	checkFullGrid(t, res)
	if res.Plan.Days[0].Breakfast.Name != "Generated Meal 0" {
		t.Errorf("generated slots should be kept, got %q", res.Plan.Days[0].Breakfast.Name)
	}
	// Slots past the generated prefix come from the catalog.
	if strings.HasPrefix(res.Plan.Days[0].Lunch.Name, "Generated Meal") {
		t.Errorf("slot 7 should be a catalog meal, got %q", res.Plan.Days[0].Lunch.Name)
	}
}

func TestGenerateEatingOutSlots(t *testing.T) {
	g := NewGenerator(nil, testSelector(), nil)

	p := prefs.Preferences{EatingOutMeals: []string{"Monday Breakfast", "Friday Dinner"}}
	res, err := g.Generate(context.Background(), &p, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	monday := res.Plan.Days[0].Breakfast
	if !monday.IsPlaceholder() {
		t.Errorf("Monday breakfast should be %q, got %q", meal.PlaceholderName, monday.Name)
	}
	if len(monday.Ingredients) != 0 || monday.EstimatedCalories != 0 {
		t.Error("placeholder meals must carry no ingredients or nutrition")
	}
	if !res.Plan.Days[4].Dinner.IsPlaceholder() {
		t.Errorf("Friday dinner should be eating out, got %q", res.Plan.Days[4].Dinner.Name)
	}
	if res.Plan.Days[1].Breakfast.IsPlaceholder() {
		t.Error("Tuesday breakfast should be a real meal")
	}

	for _, item := range res.ShoppingList {
		if item.Name == "" {
			t.Error("placeholder leaked into the shopping list")
		}
	}
}

func TestGenerateEatingOutOverridesAgentPath(t *testing.T) {
	g := NewGenerator(fullPlanGen{meals: 21}, testSelector(), nil)

	p := prefs.Preferences{EatingOutMeals: []string{"Monday Breakfast"}}
	res, err := g.Generate(context.Background(), &p, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !res.Plan.Days[0].Breakfast.IsPlaceholder() {
		t.Errorf("eating-out slot must override the generated meal, got %q", res.Plan.Days[0].Breakfast.Name)
	}
}

func TestRegenerateMeal(t *testing.T) {
	g := NewGenerator(nil, testSelector(), nil)

	p := prefs.Preferences{}
	current := "Grilled Chicken Salad"
	for i := 0; i < 10; i++ {
		m, err := g.RegenerateMeal(&p, "lunch", current)
		if err != nil {
			t.Fatalf("RegenerateMeal failed: %v", err)
		}
		if m.Name == current {
			t.Fatalf("regeneration returned the current meal %q", current)
		}
		if m.MealType != meal.Lunch {
			t.Errorf("expected a lunch, got %s", m.MealType)
		}
	}
}

func TestRegenerateMealRejectsInvalidType(t *testing.T) {
	g := NewGenerator(nil, testSelector(), nil)

	p := prefs.Preferences{}
	if _, err := g.RegenerateMeal(&p, "brunch", ""); err == nil {
		t.Error("expected an error for an unknown meal type")
	}
}
