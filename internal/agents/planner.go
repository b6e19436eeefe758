package agents

import (
	"bytes"
	"context"
	_ "embed"
	"text/template"
	"time"

	"fine-ill-eat/internal/llm"
	"fine-ill-eat/internal/prefs"
)

//go:embed planner_prompt.md
var plannerPrompt string

// PlannerResult carries the final stage's raw JSON answer. Parsing is the
// caller's concern so salvage and fallback decisions stay in one place.
type PlannerResult struct {
	Raw  string
	Meta llm.AgentMeta
}

func (p *Pipeline) runPlanner(ctx context.Context, pr *prefs.Preferences, medicalAnalysis, nutritionStrategy, mealIdeas string) (PlannerResult, string, error) {
	start := time.Now()
	prompt, err := buildPlannerPrompt(pr, medicalAnalysis, nutritionStrategy, mealIdeas)
	if err != nil {
		return PlannerResult{}, "", err
	}

	resp, err := p.textGen.GenerateContent(ctx, prompt)
	if err != nil {
		return PlannerResult{}, prompt, err
	}

	return PlannerResult{
		Raw: resp.Content,
		Meta: llm.AgentMeta{
			AgentName: "Planner",
			Usage:     resp.Usage,
			Latency:   time.Since(start),
		},
	}, prompt, nil
}

func buildPlannerPrompt(pr *prefs.Preferences, medicalAnalysis, nutritionStrategy, mealIdeas string) (string, error) {
	tmpl, err := template.New("Planner").Parse(plannerPrompt)
	if err != nil {
		return "", err
	}

	data := struct {
		MedicalAnalysis   string
		NutritionStrategy string
		MealIdeas         string
		FridgeInventory   string
		CookTimesPerWeek  int
		IngredientVariety int
		MealServiceMeals  string
		EatingOutMeals    string
		AdditionalNotes   string
	}{
		MedicalAnalysis:   medicalAnalysis,
		NutritionStrategy: nutritionStrategy,
		MealIdeas:         mealIdeas,
		FridgeInventory:   joinOr(pr.FridgeInventory, "nothing usable"),
		CookTimesPerWeek:  pr.CookTimesPerWeek,
		IngredientVariety: pr.IngredientVariety,
		MealServiceMeals:  joinOr(pr.MealServiceMeals, "none"),
		EatingOutMeals:    joinOr(pr.EatingOutMeals, "none"),
		AdditionalNotes:   orDefault(pr.AdditionalNotes, "none"),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
