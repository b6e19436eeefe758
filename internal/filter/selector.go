package filter

import (
	"log"
	"math/rand"

	"fine-ill-eat/internal/match"
	"fine-ill-eat/internal/meal"
	"fine-ill-eat/internal/prefs"
)

// topPickWindow is how many of the best-ranked candidates the selector
// chooses between. Picking uniformly inside the window keeps plans varied
// without letting poorly matched meals in.
const topPickWindow = 5

// Selector picks concrete meals from filtered pools. The random source is
// injected so tests can seed it.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a selector backed by the given random source.
func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// Select returns one meal of the requested type. It never fails: when the
// hard filters empty the pool it relaxes to the unconstrained catalog,
// preferring meals free of the user's allergens, and logs the relaxation.
// The returned meal is always a clone with a fresh identifier.
func (s *Selector) Select(t meal.Type, p *prefs.Preferences, excludeNames []string) meal.Meal {
	if m, ok := s.SelectFromPool(Pool(t, p, excludeNames)); ok {
		return m
	}

	log.Printf("selector: no %s candidates passed filtering, relaxing to full catalog", t)
	all := meal.CatalogByType(t)
	var safe []meal.Meal
	for _, m := range all {
		if !match.AnyFuzzy(m.ContainsAllergens, p.Allergies) {
			safe = append(safe, m)
		}
	}
	if len(safe) == 0 {
		safe = all
	}
	return safe[s.rng.Intn(len(safe))].Clone()
}

// SelectFromPool picks uniformly among the top candidates of an
// already-ranked pool. ok is false when the pool is empty.
func (s *Selector) SelectFromPool(pool []meal.Meal) (meal.Meal, bool) {
	if len(pool) == 0 {
		return meal.Meal{}, false
	}
	window := topPickWindow
	if len(pool) < window {
		window = len(pool)
	}
	return pool[s.rng.Intn(window)].Clone(), true
}
