// Package shopping aggregates the ingredients of a week's meals into a
// categorized shopping list. Quantities are deliberately coarse: the list
// tells the user roughly how much to buy, not a gram-accurate total.
package shopping

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"fine-ill-eat/internal/match"
	"fine-ill-eat/internal/meal"
)

// Item is one shopping-list line.
type Item struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Category string `json:"category"`
}

// categoryPriority fixes the order categories appear in the final list,
// roughly matching a walk through a grocery store.
var categoryPriority = []string{
	"Produce",
	"Protein",
	"Dairy",
	"Grains & Pasta",
	"Pantry Staples",
	"Legumes & Beans",
	"Nuts & Seeds",
	"Spices & Seasonings",
	"Other",
}

// categoryEntry maps an ingredient term to its store category. The table is
// ordered: lookup tries exact matches first, then substring matches in table
// order, so specific terms ("coconut milk", "peanut butter") must appear
// before the generic terms they contain ("milk", "butter").
type categoryEntry struct {
	term     string
	category string
}

var categoryTable = []categoryEntry{
	// Compound terms that would otherwise be misfiled by their suffix.
	{"coconut milk", "Pantry Staples"},
	{"almond milk", "Pantry Staples"},
	{"peanut butter", "Nuts & Seeds"},
	{"nut butters", "Nuts & Seeds"},
	{"sweet potatoes", "Produce"},

	// Produce
	{"spinach", "Produce"},
	{"kale", "Produce"},
	{"mixed greens", "Produce"},
	{"lettuce", "Produce"},
	{"tomato", "Produce"},
	{"bell pepper", "Produce"},
	{"mushroom", "Produce"},
	{"onion", "Produce"},
	{"garlic", "Produce"},
	{"broccoli", "Produce"},
	{"asparagus", "Produce"},
	{"zucchini", "Produce"},
	{"carrot", "Produce"},
	{"celery", "Produce"},
	{"cucumber", "Produce"},
	{"avocado", "Produce"},
	{"banana", "Produce"},
	{"berries", "Produce"},
	{"lemon", "Produce"},
	{"lime", "Produce"},
	{"orange", "Produce"},
	{"potato", "Produce"},
	{"green beans", "Produce"},
	{"bean sprouts", "Produce"},
	{"ginger", "Produce"},
	{"basil", "Produce"},
	{"olives", "Produce"},

	// Protein
	{"chicken", "Protein"},
	{"beef", "Protein"},
	{"turkey", "Protein"},
	{"salmon", "Protein"},
	{"tuna", "Protein"},
	{"shrimp", "Protein"},
	{"egg", "Protein"},
	{"tofu", "Protein"},
	{"fish", "Protein"},

	// Dairy
	{"milk", "Dairy"},
	{"yogurt", "Dairy"},
	{"cheese", "Dairy"},
	{"butter", "Dairy"},
	{"cream", "Dairy"},

	// Grains & Pasta
	{"rice", "Grains & Pasta"},
	{"oats", "Grains & Pasta"},
	{"quinoa", "Grains & Pasta"},
	{"pasta", "Grains & Pasta"},
	{"spaghetti", "Grains & Pasta"},
	{"noodles", "Grains & Pasta"},
	{"bread", "Grains & Pasta"},
	{"tortilla", "Grains & Pasta"},
	{"granola", "Grains & Pasta"},

	// Legumes & Beans
	{"lentils", "Legumes & Beans"},
	{"chickpeas", "Legumes & Beans"},
	{"beans", "Legumes & Beans"},

	// Nuts & Seeds
	{"almond", "Nuts & Seeds"},
	{"chia", "Nuts & Seeds"},
	{"tahini", "Nuts & Seeds"},
	{"sesame", "Nuts & Seeds"},
	{"coconut", "Nuts & Seeds"},
	{"walnut", "Nuts & Seeds"},
	{"seeds", "Nuts & Seeds"},
	{"nuts", "Nuts & Seeds"},

	// Pantry Staples
	{"olive oil", "Pantry Staples"},
	{"soy sauce", "Pantry Staples"},
	{"honey", "Pantry Staples"},
	{"vinegar", "Pantry Staples"},
	{"salsa", "Pantry Staples"},
	{"marinara", "Pantry Staples"},
	{"mayonnaise", "Pantry Staples"},
	{"pesto", "Pantry Staples"},
	{"oil", "Pantry Staples"},

	// Spices & Seasonings
	{"cinnamon", "Spices & Seasonings"},
	{"turmeric", "Spices & Seasonings"},
	{"curry", "Spices & Seasonings"},
	{"spices", "Spices & Seasonings"},
	{"herbs", "Spices & Seasonings"},
	{"salt", "Spices & Seasonings"},
	{"pepper flakes", "Spices & Seasonings"},
	{"seasoning", "Spices & Seasonings"},
}

// quantityRe strips a leading amount: digits, fractions, decimals.
var quantityRe = regexp.MustCompile(`^[\d/.\s]+`)

// unitRe strips a leading measurement unit left over after the amount.
var unitRe = regexp.MustCompile(`(?i)^(cups?|tbsp|tsp|tablespoons?|teaspoons?|g|kg|oz|lbs?|ml|l|cans?|cloves?|slices?|stalks?|fillets?|pieces?|bunch(es)?|pinch(es)?|handfuls?|knobs?|squeezes?|leaves|sprigs?)\s+`)

// descriptors removed from the front of an ingredient name before
// aggregation, so "Fresh Basil" and "Basil" merge into one line.
var descriptors = []string{"fresh ", "dried ", "organic "}

// spaceRe collapses runs of whitespace left by the strips above.
var spaceRe = regexp.MustCompile(`\s+`)

// Normalize reduces a recipe ingredient line to its aggregation key:
// quantity and unit stripped, leading descriptors removed, whitespace
// collapsed. The remaining wording is kept verbatim, so "Basmati Rice" and
// "Jasmine Rice" stay separate lines.
func Normalize(ingredient string) string {
	s := strings.TrimSpace(ingredient)
	s = quantityRe.ReplaceAllString(s, "")
	s = unitRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
	for stripped := true; stripped; {
		stripped = false
		lower := strings.ToLower(s)
		for _, d := range descriptors {
			if strings.HasPrefix(lower, d) {
				s = strings.TrimSpace(s[len(d):])
				stripped = true
				break
			}
		}
	}
	return s
}

// Categorize returns the store category for a normalized ingredient name.
func Categorize(name string) string {
	lower := strings.ToLower(name)
	for _, e := range categoryTable {
		if lower == e.term {
			return e.category
		}
	}
	for _, e := range categoryTable {
		if strings.Contains(lower, e.term) || strings.Contains(e.term, lower) {
			return e.category
		}
	}
	return "Other"
}

// quantityLabel buckets an aggregated servings count into a coarse purchase
// amount.
func quantityLabel(count int) string {
	switch {
	case count <= 1:
		return "1 serving"
	case count <= 3:
		return strconv.Itoa(count) + " servings"
	case count <= 7:
		return "1 package"
	default:
		return "2+ packages"
	}
}

// Build aggregates the ingredients of the given meals into a shopping list.
// Each ingredient accumulates the meal's servings count, so a two-serving
// recipe weighs twice as much as a single portion. Placeholder meals
// contribute nothing. Ingredients already covered by the fridge inventory are
// dropped before aggregation.
func Build(meals []meal.Meal, fridge []string) []Item {
	counts := make(map[string]int)
	for _, m := range meals {
		if m.IsPlaceholder() {
			continue
		}
		servings := m.Servings
		if servings <= 0 {
			servings = 1
		}
		for _, ing := range m.Ingredients {
			name := Normalize(ing)
			if name == "" {
				continue
			}
			if inFridge(name, fridge) {
				continue
			}
			counts[name] += servings
		}
	}

	items := make([]Item, 0, len(counts))
	for name, count := range counts {
		items = append(items, Item{
			Name:     name,
			Quantity: quantityLabel(count),
			Category: Categorize(name),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		pi, pj := priority(items[i].Category), priority(items[j].Category)
		if pi != pj {
			return pi < pj
		}
		return items[i].Name < items[j].Name
	})
	return items
}

func inFridge(name string, fridge []string) bool {
	for _, f := range fridge {
		if match.Fuzzy(name, f) {
			return true
		}
	}
	return false
}

func priority(category string) int {
	for i, c := range categoryPriority {
		if c == category {
			return i
		}
	}
	return len(categoryPriority)
}
