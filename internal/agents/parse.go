package agents

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"fine-ill-eat/internal/meal"
)

// ParseOutcome tags how the Planner's answer was recovered.
type ParseOutcome string

const (
	// ParsedFull means the answer was valid JSON as returned.
	ParsedFull ParseOutcome = "full"
	// ParsedSalvaged means the answer was truncated or malformed and a
	// repair heuristic recovered a usable prefix.
	ParsedSalvaged ParseOutcome = "salvaged"
	// ParseFailed means no heuristic produced valid JSON.
	ParseFailed ParseOutcome = "failure"
)

// PlannerOutput is the structured plan the Planner stage must return.
type PlannerOutput struct {
	Meals           []meal.Meal `json:"meals"`
	CookSchedule    string      `json:"cookSchedule"`
	IngredientReuse string      `json:"ingredientReuse"`
}

var (
	codeFenceRe     = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
)

// ParsePlannerOutput decodes the Planner's raw answer. Models truncate long
// JSON mid-array often enough that this walks a repair ladder: strict parse,
// code-fence stripping, then a series of salvage edits that close off the
// meals array at the last complete object. A salvaged plan keeps whatever
// complete meals survived; the caller fills the missing slots.
func ParsePlannerOutput(raw string) (PlannerOutput, ParseOutcome, error) {
	if out, ok := decode(raw); ok {
		return out, ParsedFull, nil
	}

	body := stripCodeFence(raw)
	if out, ok := decode(body); ok {
		return out, ParsedFull, nil
	}

	for _, candidate := range salvageCandidates(body) {
		if out, ok := decode(candidate); ok && len(out.Meals) > 0 {
			return out, ParsedSalvaged, nil
		}
	}

	return PlannerOutput{}, ParseFailed, fmt.Errorf("planner output is not parseable JSON")
}

// decode accepts either the documented object shape or a bare meals array.
func decode(s string) (PlannerOutput, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PlannerOutput{}, false
	}

	var out PlannerOutput
	if err := json.Unmarshal([]byte(s), &out); err == nil && len(out.Meals) > 0 {
		return out, true
	}

	var meals []meal.Meal
	if err := json.Unmarshal([]byte(s), &meals); err == nil && len(meals) > 0 {
		return PlannerOutput{Meals: meals}, true
	}

	return PlannerOutput{}, false
}

func stripCodeFence(raw string) string {
	if m := codeFenceRe.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return raw
}

// salvageCandidates generates repaired variants of a malformed answer, in
// order of increasing aggressiveness.
func salvageCandidates(body string) []string {
	body = strings.TrimSpace(body)
	var candidates []string

	// Cut back to the last complete object first: dropping a half-written
	// meal beats keeping its fragment.
	if idx := strings.LastIndex(body, "},"); idx >= 0 {
		prefix := body[:idx+1]
		candidates = append(candidates, prefix+"]", prefix+"]}")
	}

	return append(candidates,
		body+"]",
		body+"]}",
		body+"\"}]",
		body+"\"}]}",
		trailingCommaRe.ReplaceAllString(body, "$1"),
	)
}
