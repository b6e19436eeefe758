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

//go:embed doctor_prompt.md
var doctorPrompt string

// DoctorResult is the medical dietary analysis produced by the first stage.
type DoctorResult struct {
	Analysis string
	Meta     llm.AgentMeta
}

func (p *Pipeline) runDoctor(ctx context.Context, pr *prefs.Preferences) (DoctorResult, string, error) {
	start := time.Now()
	prompt, err := buildDoctorPrompt(pr)
	if err != nil {
		return DoctorResult{}, "", err
	}

	resp, err := p.textGen.GenerateContent(ctx, prompt)
	if err != nil {
		return DoctorResult{}, prompt, err
	}

	return DoctorResult{
		Analysis: resp.Content,
		Meta: llm.AgentMeta{
			AgentName: "Doctor",
			Usage:     resp.Usage,
			Latency:   time.Since(start),
		},
	}, prompt, nil
}

func buildDoctorPrompt(pr *prefs.Preferences) (string, error) {
	tmpl, err := template.New("Doctor").Parse(doctorPrompt)
	if err != nil {
		return "", err
	}

	data := struct {
		Conditions  string
		Medications string
		Allergies   string
	}{
		Conditions:  joinOr(pr.MedicalConditions, "none reported"),
		Medications: joinOr(pr.Medications, "none reported"),
		Allergies:   joinOr(pr.Allergies, "none reported"),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
