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

//go:embed dietician_prompt.md
var dieticianPrompt string

// DieticianResult is the nutrition strategy produced by the second stage.
type DieticianResult struct {
	Strategy string
	Meta     llm.AgentMeta
}

func (p *Pipeline) runDietician(ctx context.Context, pr *prefs.Preferences, medicalAnalysis string) (DieticianResult, string, error) {
	start := time.Now()
	prompt, err := buildDieticianPrompt(pr, medicalAnalysis)
	if err != nil {
		return DieticianResult{}, "", err
	}

	resp, err := p.textGen.GenerateContent(ctx, prompt)
	if err != nil {
		return DieticianResult{}, prompt, err
	}

	return DieticianResult{
		Strategy: resp.Content,
		Meta: llm.AgentMeta{
			AgentName: "Dietician",
			Usage:     resp.Usage,
			Latency:   time.Since(start),
		},
	}, prompt, nil
}

func buildDieticianPrompt(pr *prefs.Preferences, medicalAnalysis string) (string, error) {
	tmpl, err := template.New("Dietician").Parse(dieticianPrompt)
	if err != nil {
		return "", err
	}

	data := struct {
		Calories        float64
		ProteinPercent  float64
		CarbsPercent    float64
		FatsPercent     float64
		ProteinSources  string
		CarbSources     string
		FatSources      string
		Restrictions    string
		MedicalAnalysis string
	}{
		Calories:        pr.Calories,
		ProteinPercent:  pr.ProteinPercent,
		CarbsPercent:    pr.CarbsPercent,
		FatsPercent:     pr.FatsPercent,
		ProteinSources:  joinOr(pr.ProteinSources, "no preference"),
		CarbSources:     joinOr(pr.CarbSources, "no preference"),
		FatSources:      joinOr(pr.FatSources, "no preference"),
		Restrictions:    joinOr(pr.Restrictions, "none"),
		MedicalAnalysis: medicalAnalysis,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
