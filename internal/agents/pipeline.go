package agents

import (
	"context"
	"fmt"

	"fine-ill-eat/internal/llm"
	"fine-ill-eat/internal/prefs"
)

// Result is everything the pipeline produced: the raw Planner answer plus
// the per-stage transcript and usage metadata.
type Result struct {
	PlannerRaw string
	Steps      []AgentStep
	Metas      []llm.AgentMeta
}

// Run executes the four stages in order, threading every earlier stage's
// output into the later prompts. Any stage failure aborts the whole chain; the
// caller decides whether to fall back to deterministic planning.
func (p *Pipeline) Run(ctx context.Context, pr *prefs.Preferences, progress Progress) (*Result, error) {
	notify := func(stage, message string) {
		if progress != nil {
			progress(stage, message)
		}
	}
	res := &Result{}

	notify("doctor", "Reviewing medical conditions and medications...")
	doctor, doctorIn, err := p.runDoctor(ctx, pr)
	if err != nil {
		return nil, fmt.Errorf("doctor stage: %w", err)
	}
	res.record("Doctor", doctorIn, doctor.Analysis, doctor.Meta)

	notify("dietician", "Designing the nutrition strategy...")
	dietician, dieticianIn, err := p.runDietician(ctx, pr, doctor.Analysis)
	if err != nil {
		return nil, fmt.Errorf("dietician stage: %w", err)
	}
	res.record("Dietician", dieticianIn, dietician.Strategy, dietician.Meta)

	notify("chef", "Sketching meal ideas...")
	chef, chefIn, err := p.runChef(ctx, pr, doctor.Analysis, dietician.Strategy)
	if err != nil {
		return nil, fmt.Errorf("chef stage: %w", err)
	}
	res.record("Chef", chefIn, chef.MealIdeas, chef.Meta)

	notify("planner", "Assembling the weekly plan...")
	planner, plannerIn, err := p.runPlanner(ctx, pr, doctor.Analysis, dietician.Strategy, chef.MealIdeas)
	if err != nil {
		return nil, fmt.Errorf("planner stage: %w", err)
	}
	res.record("Planner", plannerIn, planner.Raw, planner.Meta)

	res.PlannerRaw = planner.Raw
	return res, nil
}

func (r *Result) record(agent, input, output string, meta llm.AgentMeta) {
	r.Steps = append(r.Steps, AgentStep{Agent: agent, Input: input, Output: output})
	r.Metas = append(r.Metas, meta)
}
