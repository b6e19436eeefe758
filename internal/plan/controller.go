package plan

import (
	"context"
	"log"
	"strings"

	"fine-ill-eat/internal/agents"
	"fine-ill-eat/internal/filter"
	"fine-ill-eat/internal/llm"
	"fine-ill-eat/internal/meal"
	"fine-ill-eat/internal/metrics"
	"fine-ill-eat/internal/prefs"
	"fine-ill-eat/internal/shopping"
)

const totalSlots = 21

// Generator produces weekly plans. textGen may be nil, in which case every
// plan takes the deterministic path with fallback reason "no_credential".
type Generator struct {
	textGen  llm.TextGenerator
	selector *filter.Selector
	metrics  *metrics.Store
}

// NewGenerator wires a plan generator. metrics may be nil to disable
// execution recording.
func NewGenerator(textGen llm.TextGenerator, selector *filter.Selector, store *metrics.Store) *Generator {
	return &Generator{textGen: textGen, selector: selector, metrics: store}
}

// Generate builds a full weekly plan for the given preferences. The error
// return covers only context cancellation style failures surfaced by the
// deterministic path; LLM failures never propagate, they downgrade the plan.
func (g *Generator) Generate(ctx context.Context, pr *prefs.Preferences, progress agents.Progress) (*Result, error) {
	pr.Normalize()

	if g.textGen == nil {
		res := g.deterministicResult(pr, FallbackNoCredential)
		return res, nil
	}

	pipeline := agents.NewPipeline(g.textGen)
	pipeRes, err := pipeline.Run(ctx, pr, progress)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("plan: agent pipeline failed, falling back: %v", err)
		res := g.deterministicResult(pr, FallbackGenerationError)
		return res, nil
	}
	g.recordMetas(pipeRes.Metas)

	out, outcome, perr := agents.ParsePlannerOutput(pipeRes.PlannerRaw)
	if outcome == agents.ParseFailed {
		log.Printf("plan: planner output unusable, falling back: %v", perr)
		res := g.deterministicResult(pr, FallbackGenerationError)
		res.AgentSteps = pipeRes.Steps
		return res, nil
	}
	if outcome == agents.ParsedSalvaged {
		log.Printf("plan: planner output truncated, salvaged %d meals", len(out.Meals))
	}

	slots := g.slotsFromPlannerOutput(pr, out.Meals)
	res := &Result{
		Plan:            weeklyFromSlots(slots),
		ShoppingList:    shopping.Build(slots, pr.FridgeInventory),
		UsedAgentPath:   true,
		AgentSteps:      pipeRes.Steps,
		CookSchedule:    out.CookSchedule,
		IngredientReuse: out.IngredientReuse,
	}
	return res, nil
}

// RegenerateMeal swaps out a single meal. Regeneration is always
// deterministic: it is a quick "give me something else" action, so it never
// waits on the LLM. The current meal's name is excluded so the replacement
// is distinct whenever the pool allows it.
func (g *Generator) RegenerateMeal(pr *prefs.Preferences, rawType, currentMealName string) (meal.Meal, error) {
	t, err := meal.ParseType(rawType)
	if err != nil {
		return meal.Meal{}, err
	}
	pr.Normalize()

	var exclude []string
	if currentMealName != "" {
		exclude = append(exclude, currentMealName)
	}
	return g.selector.Select(t, pr, exclude), nil
}

// deterministicResult fills all 21 slots from the catalog.
func (g *Generator) deterministicResult(pr *prefs.Preferences, reason string) *Result {
	slots := make([]meal.Meal, totalSlots)
	var used []string
	for i := 0; i < totalSlots; i++ {
		slots[i] = g.fillSlot(pr, i, &used)
	}
	return &Result{
		Plan:           weeklyFromSlots(slots),
		ShoppingList:   shopping.Build(slots, pr.FridgeInventory),
		UsedAgentPath:  false,
		FallbackReason: reason,
	}
}

// slotsFromPlannerOutput lays generated meals into the 21 slots. Eating-out
// slots always become placeholders regardless of what the model returned,
// and any slot the model left empty (salvaged truncation) is filled from
// the catalog.
func (g *Generator) slotsFromPlannerOutput(pr *prefs.Preferences, generated []meal.Meal) []meal.Meal {
	slots := make([]meal.Meal, totalSlots)
	var used []string
	for i := 0; i < totalSlots; i++ {
		t := slotType(i)
		if isEatingOut(pr, i) {
			slots[i] = meal.Placeholder(t)
			continue
		}
		if i < len(generated) && strings.TrimSpace(generated[i].Name) != "" {
			slots[i] = adoptGenerated(generated[i], t)
			used = append(used, slots[i].Name)
			continue
		}
		slots[i] = g.catalogPick(pr, t, &used)
	}
	return slots
}

func (g *Generator) fillSlot(pr *prefs.Preferences, i int, used *[]string) meal.Meal {
	t := slotType(i)
	if isEatingOut(pr, i) {
		return meal.Placeholder(t)
	}
	return g.catalogPick(pr, t, used)
}

func (g *Generator) catalogPick(pr *prefs.Preferences, t meal.Type, used *[]string) meal.Meal {
	m := g.selector.Select(t, pr, *used)
	*used = append(*used, m.Name)
	return m
}

// adoptGenerated sanitizes a model-produced meal for a slot: the slot's type
// wins over whatever the model claimed, identifiers are always fresh, and a
// missing servings count defaults to one.
func adoptGenerated(m meal.Meal, t meal.Type) meal.Meal {
	m.MealType = t
	m.ID = meal.NewID(t)
	if m.Servings <= 0 {
		m.Servings = 1
	}
	if m.Ingredients == nil {
		m.Ingredients = []string{}
	}
	return m
}

// isEatingOut matches a slot against the preference keys, e.g.
// "Monday Breakfast".
func isEatingOut(pr *prefs.Preferences, i int) bool {
	key := slotDay(i) + " " + titleType(slotType(i))
	for _, k := range pr.EatingOutMeals {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

func titleType(t meal.Type) string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (g *Generator) recordMetas(metas []llm.AgentMeta) {
	if g.metrics == nil {
		return
	}
	for _, m := range metas {
		if err := g.metrics.RecordMeta(m); err != nil {
			log.Printf("plan: failed to record metrics for %s: %v", m.AgentName, err)
		}
	}
}
