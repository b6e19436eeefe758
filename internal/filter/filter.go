// Package filter narrows the meal catalog to candidates that are safe and
// acceptable for a user, then ranks the survivors by how well they match the
// softer preferences. Safety rules (allergies, medical conditions, medication
// interactions, dietary restrictions) are hard filters; taste rules (sources,
// cuisine, inventory) only affect ordering.
package filter

import (
	"sort"
	"strings"

	"fine-ill-eat/internal/match"
	"fine-ill-eat/internal/meal"
	"fine-ill-eat/internal/prefs"
)

// medicationInteractions maps a medication to food terms that interact with
// it. A meal containing any of these terms in its ingredient list is unsafe
// for a user on that medication.
var medicationInteractions = map[string][]string{
	"Warfarin":                    {"Leafy Greens", "Cranberry", "Grapefruit", "Vitamin K"},
	"Statins":                     {"Grapefruit"},
	"MAO Inhibitors":              {"Aged Cheese", "Cured Meats", "Fermented Foods", "Soy Sauce"},
	"Lisinopril (ACE Inhibitors)": {"Bananas", "Oranges", "Potatoes", "High Potassium"},
	"Levothyroxine":               {"Soy", "High-Fiber Foods", "Calcium"},
	"Methotrexate":                {"Alcohol"},
	"Blood Thinners (Aspirin)":    {"Vitamin E", "Fish Oil", "Garlic"},
	"Calcium Channel Blockers":    {"Grapefruit"},
	"Antibiotics (Tetracycline)":  {"Dairy Products"},
	"Potassium-Sparing Diuretics": {"Bananas", "Oranges", "Potatoes", "High Potassium"},
	"Lithium":                     {},
}

// medicationAvoidTags maps a medication to allergen-style tags that flag a
// whole food family rather than a single ingredient name.
var medicationAvoidTags = map[string][]string{
	"Warfarin":                    {"Leafy Greens"},
	"Statins":                     {"Grapefruit"},
	"Lisinopril (ACE Inhibitors)": {"Bananas", "Potatoes"},
}

// highSodiumMarkers are ingredient substrings treated as high-sodium proxies
// for the Low-Sodium restriction. Matching is exact-case on purpose: the
// catalog and generated meals use title-cased ingredient names.
var highSodiumMarkers = []string{"Soy Sauce", "Cured Meats", "Cheese", "Processed"}

// pescatarianProteins are protein sources acceptable under a pescatarian
// restriction even when the meal carries no explicit tag.
var pescatarianProteins = []string{"Fish", "Salmon", "Tuna", "Shrimp"}

// Score weights. Protein matches dominate among the source preferences;
// inventory matches dominate overall so that meals the user can already cook
// rise to the top.
const (
	scoreProtein = 10
	scoreCarb    = 5
	scoreFat     = 5
	scoreCuisine = 8
	scoreFridge  = 15
	scoreRecipe  = 20
)

// Pool returns the catalog meals of the given type that pass every hard
// filter, ranked best-match first. excludeNames removes meals already used in
// the plan so repeated selections stay distinct.
func Pool(t meal.Type, p *prefs.Preferences, excludeNames []string) []meal.Meal {
	var pool []meal.Meal
	for _, m := range meal.CatalogByType(t) {
		if nameExcluded(m.Name, excludeNames) {
			continue
		}
		if !isAllergySafe(&m, p.Allergies) {
			continue
		}
		if !meetsRestrictions(&m, p.Restrictions) {
			continue
		}
		if !isMedicalFriendly(&m, p.MedicalConditions) {
			continue
		}
		if !isMedicationSafe(&m, p.Medications) {
			continue
		}
		if len(p.ProteinSources) > 0 && !match.AnyFuzzy(m.ProteinSources, p.ProteinSources) {
			continue
		}
		pool = append(pool, m)
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return scoreMeal(&pool[i], p) > scoreMeal(&pool[j], p)
	})
	return pool
}

func nameExcluded(name string, excludeNames []string) bool {
	for _, n := range excludeNames {
		if strings.EqualFold(name, n) {
			return true
		}
	}
	return false
}

// isAllergySafe checks the declared allergen tags. Ingredient names are not
// screened; the catalog tags every allergen a meal contains.
func isAllergySafe(m *meal.Meal, allergies []string) bool {
	if len(allergies) == 0 {
		return true
	}
	return !match.AnyFuzzy(m.ContainsAllergens, allergies)
}

// isMedicalFriendly requires the meal to be tagged friendly for at least one
// of the user's conditions. A user with several conditions still gets meals
// that help any of them; requiring all would empty the pool too often.
func isMedicalFriendly(m *meal.Meal, conditions []string) bool {
	if len(conditions) == 0 {
		return true
	}
	return match.AnyFuzzy(m.MedicalFriendly, conditions)
}

func isMedicationSafe(m *meal.Meal, medications []string) bool {
	for _, med := range medications {
		for name, foods := range medicationInteractions {
			if !match.Fuzzy(med, name) {
				continue
			}
			for _, food := range foods {
				for _, ing := range m.Ingredients {
					if match.Fuzzy(ing, food) {
						return false
					}
				}
			}
		}
		for name, tags := range medicationAvoidTags {
			if !match.Fuzzy(med, name) {
				continue
			}
			if match.AnyFuzzy(m.ContainsAllergens, tags) || match.AnyFuzzy(m.Tags, tags) {
				return false
			}
		}
	}
	return true
}

// meetsRestrictions applies every selected dietary restriction; a meal must
// satisfy all of them. Macro-based rules use the ratio of estimated grams to
// estimated calories, so they work for any portion size.
func meetsRestrictions(m *meal.Meal, restrictions []string) bool {
	for _, r := range restrictions {
		switch r {
		case "Vegan":
			if !hasTag(m.DietaryRestrictions, "Vegan") {
				return false
			}
		case "Vegetarian":
			if !hasTag(m.DietaryRestrictions, "Vegetarian") && !hasTag(m.DietaryRestrictions, "Vegan") {
				return false
			}
		case "Pescatarian":
			ok := hasTag(m.DietaryRestrictions, "Pescatarian") ||
				hasTag(m.DietaryRestrictions, "Vegetarian") ||
				hasTag(m.DietaryRestrictions, "Vegan") ||
				match.AnyFuzzy(m.ProteinSources, pescatarianProteins)
			if !ok {
				return false
			}
		case "Keto":
			if macroRatio(m.EstimatedCarbs, m.EstimatedCalories) > 0.10 {
				return false
			}
		case "Low-Carb":
			if macroRatio(m.EstimatedCarbs, m.EstimatedCalories) > 0.25 {
				return false
			}
		case "Low-Fat":
			if macroRatio(m.EstimatedFats, m.EstimatedCalories) > 0.20 {
				return false
			}
		case "Low-Sodium":
			for _, ing := range m.Ingredients {
				for _, marker := range highSodiumMarkers {
					if strings.Contains(ing, marker) {
						return false
					}
				}
			}
		case "Diabetic-Friendly":
			if !hasTag(m.MedicalFriendly, "Type 2 Diabetes") {
				return false
			}
		default:
			if !hasTag(m.DietaryRestrictions, r) {
				return false
			}
		}
	}
	return true
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}

func macroRatio(grams, calories float64) float64 {
	if calories <= 0 {
		return 0
	}
	return grams / calories
}

// scoreMeal ranks a meal against the soft preferences. Each category
// contributes at most once.
func scoreMeal(m *meal.Meal, p *prefs.Preferences) int {
	score := 0
	if match.AnyFuzzy(m.ProteinSources, p.ProteinSources) {
		score += scoreProtein
	}
	if match.AnyFuzzy(m.CarbSources, p.CarbSources) {
		score += scoreCarb
	}
	if match.AnyFuzzy(m.FatSources, p.FatSources) {
		score += scoreFat
	}
	if match.AnyFuzzy(m.Cuisine, p.Cuisines) {
		score += scoreCuisine
	}
	if match.AnyFuzzy(m.Ingredients, p.FridgeInventory) {
		score += scoreFridge
	}
	for _, recipe := range p.RecipeInventory {
		if match.Fuzzy(m.Name, recipe) {
			score += scoreRecipe
			break
		}
	}
	return score
}
