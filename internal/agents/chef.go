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

//go:embed chef_prompt.md
var chefPrompt string

// ChefResult is the free-form meal brainstorm produced by the third stage.
type ChefResult struct {
	MealIdeas string
	Meta      llm.AgentMeta
}

func (p *Pipeline) runChef(ctx context.Context, pr *prefs.Preferences, medicalAnalysis, nutritionStrategy string) (ChefResult, string, error) {
	start := time.Now()
	prompt, err := buildChefPrompt(pr, medicalAnalysis, nutritionStrategy)
	if err != nil {
		return ChefResult{}, "", err
	}

	resp, err := p.textGen.GenerateContent(ctx, prompt)
	if err != nil {
		return ChefResult{}, prompt, err
	}

	return ChefResult{
		MealIdeas: resp.Content,
		Meta: llm.AgentMeta{
			AgentName: "Chef",
			Usage:     resp.Usage,
			Latency:   time.Since(start),
		},
	}, prompt, nil
}

func buildChefPrompt(pr *prefs.Preferences, medicalAnalysis, nutritionStrategy string) (string, error) {
	tmpl, err := template.New("Chef").Parse(chefPrompt)
	if err != nil {
		return "", err
	}

	data := struct {
		RecipeInventory   string
		Cuisines          string
		CuisineNotes      string
		ProteinSources    string
		CarbSources       string
		FatSources        string
		MealExamples      string
		MedicalAnalysis   string
		NutritionStrategy string
	}{
		RecipeInventory:   joinOr(pr.RecipeInventory, "none"),
		Cuisines:          joinOr(pr.Cuisines, "anything"),
		CuisineNotes:      orDefault(pr.CuisineNotes, "none"),
		ProteinSources:    joinOr(pr.ProteinSources, "no preference"),
		CarbSources:       joinOr(pr.CarbSources, "no preference"),
		FatSources:        joinOr(pr.FatSources, "no preference"),
		MealExamples:      joinOr(pr.MealExamples, "none given"),
		MedicalAnalysis:   medicalAnalysis,
		NutritionStrategy: nutritionStrategy,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
