package agents

import "testing"

func TestParsePlannerOutputValidObject(t *testing.T) {
	raw := `{"meals": [{"name": "Oatmeal", "mealType": "breakfast"}], "cookSchedule": "Cook daily", "ingredientReuse": "Oats twice"}`
	out, outcome, err := ParsePlannerOutput(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != ParsedFull {
		t.Errorf("expected full parse, got %s", outcome)
	}
	if len(out.Meals) != 1 || out.Meals[0].Name != "Oatmeal" {
		t.Errorf("unexpected meals: %+v", out.Meals)
	}
	if out.CookSchedule != "Cook daily" || out.IngredientReuse != "Oats twice" {
		t.Errorf("schedule fields not carried through: %+v", out)
	}
}

func TestParsePlannerOutputStripsCodeFence(t *testing.T) {
	raw := "Here is your plan:\n```json\n{\"meals\": [{\"name\": \"Salad\", \"mealType\": \"lunch\"}]}\n```"
	out, outcome, err := ParsePlannerOutput(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != ParsedFull {
		t.Errorf("expected full parse after fence stripping, got %s", outcome)
	}
	if len(out.Meals) != 1 || out.Meals[0].Name != "Salad" {
		t.Errorf("unexpected meals: %+v", out.Meals)
	}
}

func TestParsePlannerOutputAcceptsBareArray(t *testing.T) {
	raw := `[{"name": "Stir-Fry", "mealType": "dinner"}]`
	out, outcome, err := ParsePlannerOutput(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != ParsedFull {
		t.Errorf("expected full parse, got %s", outcome)
	}
	if len(out.Meals) != 1 || out.Meals[0].Name != "Stir-Fry" {
		t.Errorf("unexpected meals: %+v", out.Meals)
	}
}

func TestParsePlannerOutputSalvagesTruncation(t *testing.T) {
	// Truncated mid-way through the second meal, as models do when they run
	// out of output tokens.
	raw := `{"meals": [{"name": "Omelette", "mealType": "breakfast"}, {"name": "Half a me`
	out, outcome, err := ParsePlannerOutput(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != ParsedSalvaged {
		t.Errorf("expected salvage, got %s", outcome)
	}
	if len(out.Meals) != 1 || out.Meals[0].Name != "Omelette" {
		t.Errorf("expected the one complete meal to survive, got %+v", out.Meals)
	}
}

func TestParsePlannerOutputFailure(t *testing.T) {
	_, outcome, err := ParsePlannerOutput("I'm sorry, I cannot produce a plan.")
	if err == nil {
		t.Error("expected an error for unparseable output")
	}
	if outcome != ParseFailed {
		t.Errorf("expected failure outcome, got %s", outcome)
	}
}
