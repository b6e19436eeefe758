package shopping

import (
	"testing"

	"fine-ill-eat/internal/meal"
)

func mealWith(name string, ingredients ...string) meal.Meal {
	return meal.Meal{Name: name, MealType: meal.Dinner, Ingredients: ingredients}
}

func TestNormalizeStripsQuantityAndDescriptors(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"2 Eggs", "Eggs"},
		{"1 cup Spinach", "Spinach"},
		{"1/2 Avocado", "Avocado"},
		{"200g Tofu", "Tofu"},
		{"2 tbsp Fresh Basil", "Basil"},
		{"1 tsp Dried Oregano", "Oregano"},
		{"1 can Organic Chickpeas", "Chickpeas"},
		{"2 tbsp Fresh Organic Basil", "Basil"},
		{"1 cup  Basmati   Rice", "Basmati Rice"},
		{"1 cup Basmati Rice", "Basmati Rice"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCategorize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Spinach", "Produce"},
		{"Chicken Breast", "Protein"},
		{"Greek Yogurt", "Dairy"},
		{"Coconut Milk", "Pantry Staples"},
		{"Peanut Butter", "Nuts & Seeds"},
		{"Basmati Rice", "Grains & Pasta"},
		{"Chickpeas", "Legumes & Beans"},
		{"Turmeric", "Spices & Seasonings"},
		{"Greens", "Produce"}, // contained in the "mixed greens" key
		{"Dragonfruit Syrup", "Other"},
	}
	for _, c := range cases {
		if got := Categorize(c.in); got != c.want {
			t.Errorf("Categorize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBuildAggregatesAcrossMeals(t *testing.T) {
	meals := []meal.Meal{
		mealWith("A", "2 Eggs", "1 cup Spinach"),
		mealWith("B", "3 Eggs"),
	}
	items := Build(meals, nil)

	var eggs *Item
	for i := range items {
		if items[i].Name == "Eggs" {
			eggs = &items[i]
		}
	}
	if eggs == nil {
		t.Fatal("expected an Eggs line")
	}
	if eggs.Quantity != "2 servings" {
		t.Errorf("two occurrences should read '2 servings', got %q", eggs.Quantity)
	}
}

func TestBuildQuantityBuckets(t *testing.T) {
	var meals []meal.Meal
	for i := 0; i < 4; i++ {
		meals = append(meals, mealWith("M", "1 cup Spinach"))
	}
	items := Build(meals, nil)
	if len(items) != 1 || items[0].Quantity != "1 package" {
		t.Fatalf("4 occurrences should read '1 package', got %+v", items)
	}

	for i := 0; i < 4; i++ {
		meals = append(meals, mealWith("M", "1 cup Spinach"))
	}
	items = Build(meals, nil)
	if len(items) != 1 || items[0].Quantity != "2+ packages" {
		t.Fatalf("8 occurrences should read '2+ packages', got %+v", items)
	}
}

func TestBuildAggregatesByServings(t *testing.T) {
	family := mealWith("Family Stew", "2 cups Lentils")
	family.Servings = 4
	items := Build([]meal.Meal{family}, nil)
	if len(items) != 1 || items[0].Quantity != "1 package" {
		t.Fatalf("one 4-serving meal should read '1 package', got %+v", items)
	}

	second := mealWith("Family Stew Again", "2 cups Lentils")
	second.Servings = 4
	items = Build([]meal.Meal{family, second}, nil)
	if len(items) != 1 || items[0].Quantity != "2+ packages" {
		t.Fatalf("8 accumulated servings should read '2+ packages', got %+v", items)
	}
}

func TestBuildKeepsDistinctWordingSeparate(t *testing.T) {
	meals := []meal.Meal{
		mealWith("A", "1 cup Basmati Rice"),
		mealWith("B", "1 cup Rice"),
	}
	items := Build(meals, nil)
	if len(items) != 2 {
		t.Fatalf("Basmati Rice and Rice must stay separate lines, got %+v", items)
	}
}

func TestBuildExcludesFridgeInventory(t *testing.T) {
	meals := []meal.Meal{
		mealWith("A", "2 Eggs", "1 cup Spinach"),
	}
	items := Build(meals, []string{"egg"})
	for _, it := range items {
		if it.Name == "Eggs" {
			t.Error("fridge inventory should remove eggs from the list")
		}
	}
	if len(items) != 1 {
		t.Fatalf("expected only spinach to remain, got %+v", items)
	}
}

func TestBuildSkipsPlaceholderMeals(t *testing.T) {
	meals := []meal.Meal{
		meal.Placeholder(meal.Dinner),
		mealWith("A", "1 cup Spinach"),
	}
	items := Build(meals, nil)
	if len(items) != 1 || items[0].Name != "Spinach" {
		t.Fatalf("placeholder meals must not contribute, got %+v", items)
	}
}

func TestBuildSortsByCategoryPriorityThenName(t *testing.T) {
	meals := []meal.Meal{
		mealWith("A", "1 tsp Turmeric", "100g Chicken Breast", "1 cup Spinach", "1 Avocado"),
	}
	items := Build(meals, nil)
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %+v", items)
	}
	wantOrder := []string{"Avocado", "Spinach", "Chicken Breast", "Turmeric"}
	for i, want := range wantOrder {
		if items[i].Name != want {
			t.Errorf("position %d: got %q, want %q", i, items[i].Name, want)
		}
	}
}
