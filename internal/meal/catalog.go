package meal

// The static catalog backing the deterministic planning path. Entries are
// immutable after process start; selection always hands out clones.

var catalog = []Meal{
	// Breakfasts
	{
		ID: "br-01", Name: "Veggie Scramble with Spinach", Description: "Fluffy eggs scrambled with spinach, mushrooms and bell peppers.",
		PrepTime: "15 mins", Servings: 1, Tags: []string{"High Protein", "Quick"},
		Ingredients: []string{"3 Eggs", "1 cup Spinach", "1/2 cup Mushrooms", "1/2 Bell Peppers", "1 tbsp Olive Oil"},
		MealType:    Breakfast, Cuisine: []string{"American"},
		ProteinSources: []string{"Eggs"}, CarbSources: []string{}, FatSources: []string{"Olive Oil"},
		EstimatedCalories: 340, EstimatedProtein: 22, EstimatedCarbs: 7, EstimatedFats: 24,
		ContainsAllergens:   []string{"Eggs"},
		DietaryRestrictions: []string{"Vegetarian", "Keto", "Low-Carb"},
		MedicalFriendly:     []string{"Type 2 Diabetes", "Hypertension", "PCOS"},
		MedicationSafe:      []string{},
	},
	{
		ID: "br-02", Name: "Greek Yogurt Parfait", Description: "Greek yogurt layered with berries and granola.",
		PrepTime: "5 mins", Servings: 1, Tags: []string{"Quick", "High Protein"},
		Ingredients: []string{"1 cup Greek Yogurt", "1/2 cup Berries", "1/4 cup Granola", "1 tsp Honey"},
		MealType:    Breakfast, Cuisine: []string{"Mediterranean"},
		ProteinSources: []string{"Greek Yogurt"}, CarbSources: []string{"Oats", "Fruit"}, FatSources: []string{},
		EstimatedCalories: 320, EstimatedProtein: 20, EstimatedCarbs: 42, EstimatedFats: 8,
		ContainsAllergens:   []string{"Milk/Dairy"},
		DietaryRestrictions: []string{"Vegetarian"},
		MedicalFriendly:     []string{"Osteoporosis"},
		MedicationSafe:      []string{},
	},
	{
		ID: "br-03", Name: "Peanut Butter Banana Oatmeal", Description: "Creamy oats topped with peanut butter and banana slices.",
		PrepTime: "10 mins", Servings: 1, Tags: []string{"Comfort Food", "High Fiber"},
		Ingredients: []string{"1/2 cup Oats", "1 tbsp Peanut Butter", "1 Banana", "1 cup Almond Milk", "1 pinch Cinnamon"},
		MealType:    Breakfast, Cuisine: []string{"American"},
		ProteinSources: []string{"Nut Butters"}, CarbSources: []string{"Oats", "Fruit"}, FatSources: []string{"Nut Butters"},
		EstimatedCalories: 430, EstimatedProtein: 13, EstimatedCarbs: 62, EstimatedFats: 15,
		ContainsAllergens:   []string{"Peanuts", "Tree Nuts"},
		DietaryRestrictions: []string{"Vegan", "Vegetarian"},
		MedicalFriendly:     []string{"High Cholesterol"},
		MedicationSafe:      []string{},
	},
	{
		ID: "br-04", Name: "Tofu Scramble with Kale", Description: "Turmeric tofu scramble with sautéed kale and onions.",
		PrepTime: "15 mins", Servings: 1, Tags: []string{"High Protein", "Plant-Based"},
		Ingredients: []string{"200g Tofu", "1 cup Kale", "1/2 Onions", "1 tsp Turmeric", "1 tbsp Olive Oil", "1 pinch Black Salt"},
		MealType:    Breakfast, Cuisine: []string{"American"},
		ProteinSources: []string{"Tofu"}, CarbSources: []string{}, FatSources: []string{"Olive Oil"},
		EstimatedCalories: 300, EstimatedProtein: 21, EstimatedCarbs: 11, EstimatedFats: 19,
		ContainsAllergens:   []string{"Soy"},
		DietaryRestrictions: []string{"Vegan", "Vegetarian", "Low-Carb"},
		MedicalFriendly:     []string{"Type 2 Diabetes", "High Cholesterol", "PCOS"},
		MedicationSafe:      []string{},
	},
	{
		ID: "br-05", Name: "Smoked Salmon Avocado Toast", Description: "Sourdough toast with smashed avocado and smoked salmon.",
		PrepTime: "10 mins", Servings: 1, Tags: []string{"Omega-3", "Quick"},
		Ingredients: []string{"1 slice Sourdough Bread", "1/2 Avocado", "60g Salmon", "1 squeeze Lemon", "1 pinch Red Pepper Flakes"},
		MealType:    Breakfast, Cuisine: []string{"American"},
		ProteinSources: []string{"Salmon", "Fish"}, CarbSources: []string{"Bread"}, FatSources: []string{"Avocado"},
		EstimatedCalories: 380, EstimatedProtein: 18, EstimatedCarbs: 30, EstimatedFats: 21,
		ContainsAllergens:   []string{"Fish", "Wheat/Gluten"},
		DietaryRestrictions: []string{"Pescatarian"},
		MedicalFriendly:     []string{"Heart Disease", "Anemia"},
		MedicationSafe:      []string{},
	},
	{
		ID: "br-06", Name: "Overnight Chia Pudding", Description: "Chia seeds soaked in coconut milk with fresh fruit.",
		PrepTime: "5 mins + overnight", Servings: 1, Tags: []string{"Make-Ahead", "High Fiber"},
		Ingredients: []string{"3 tbsp Chia Seeds", "1 cup Coconut Milk", "1/2 cup Berries", "1 tbsp Coconut Flakes"},
		MealType:    Breakfast, Cuisine: []string{"American"},
		ProteinSources: []string{"Seeds"}, CarbSources: []string{"Fruit"}, FatSources: []string{"Seeds", "Coconut Oil"},
		EstimatedCalories: 350, EstimatedProtein: 10, EstimatedCarbs: 28, EstimatedFats: 23,
		ContainsAllergens:   []string{},
		DietaryRestrictions: []string{"Vegan", "Vegetarian"},
		MedicalFriendly:     []string{"Type 2 Diabetes", "High Cholesterol"},
		MedicationSafe:      []string{},
	},
	{
		ID: "br-07", Name: "Shakshuka", Description: "Eggs poached in a spiced tomato and pepper sauce.",
		PrepTime: "25 mins", Servings: 2, Tags: []string{"Comfort Food", "One-Pan"},
		Ingredients: []string{"4 Eggs", "2 cups Tomatoes", "1 Bell Peppers", "1 Onions", "2 cloves Garlic", "1 tsp Spices"},
		MealType:    Breakfast, Cuisine: []string{"Middle Eastern", "Mediterranean"},
		ProteinSources: []string{"Eggs"}, CarbSources: []string{}, FatSources: []string{"Olive Oil"},
		EstimatedCalories: 310, EstimatedProtein: 16, EstimatedCarbs: 16, EstimatedFats: 20,
		ContainsAllergens:   []string{"Eggs"},
		DietaryRestrictions: []string{"Vegetarian", "Low-Carb"},
		MedicalFriendly:     []string{"Type 2 Diabetes", "PCOS"},
		MedicationSafe:      []string{},
	},
	{
		ID: "br-08", Name: "Banana Protein Pancakes", Description: "Blender pancakes from oats, banana and eggs.",
		PrepTime: "20 mins", Servings: 2, Tags: []string{"High Protein", "Comfort Food"},
		Ingredients: []string{"1 cup Oats", "2 Eggs", "1 Banana", "1/2 cup Milk", "1 tsp Cinnamon"},
		MealType:    Breakfast, Cuisine: []string{"American"},
		ProteinSources: []string{"Eggs"}, CarbSources: []string{"Oats", "Fruit"}, FatSources: []string{},
		EstimatedCalories: 390, EstimatedProtein: 18, EstimatedCarbs: 58, EstimatedFats: 8,
		ContainsAllergens:   []string{"Eggs", "Milk/Dairy"},
		DietaryRestrictions: []string{"Vegetarian", "Low-Fat"},
		MedicalFriendly:     []string{"Anemia"},
		MedicationSafe:      []string{},
	},

	// Lunches
	{
		ID: "lu-01", Name: "Grilled Chicken Salad", Description: "Grilled chicken breast over mixed greens with a lemon vinaigrette.",
		PrepTime: "20 mins", Servings: 1, Tags: []string{"High Protein", "Light"},
		Ingredients: []string{"150g Chicken Breast", "2 cups Mixed Greens", "1/2 cup Cherry Tomatoes", "1/4 Cucumbers", "1 tbsp Olive Oil", "1 squeeze Lemon"},
		MealType:    Lunch, Cuisine: []string{"American", "Mediterranean"},
		ProteinSources: []string{"Chicken"}, CarbSources: []string{}, FatSources: []string{"Olive Oil"},
		EstimatedCalories: 380, EstimatedProtein: 38, EstimatedCarbs: 9, EstimatedFats: 21,
		ContainsAllergens:   []string{},
		DietaryRestrictions: []string{"Keto", "Low-Carb"},
		MedicalFriendly:     []string{"Type 2 Diabetes", "Hypertension", "High Cholesterol", "PCOS"},
		MedicationSafe:      []string{},
	},
	{
		ID: "lu-02", Name: "Quinoa Buddha Bowl", Description: "Quinoa with roasted chickpeas, avocado and tahini drizzle.",
		PrepTime: "30 mins", Servings: 2, Tags: []string{"Plant-Based", "Meal-Prep"},
		Ingredients: []string{"1 cup Quinoa", "1 can Chickpeas", "1 Avocado", "2 cups Kale", "2 tbsp Tahini", "1 squeeze Lemon"},
		MealType:    Lunch, Cuisine: []string{"Mediterranean"},
		ProteinSources: []string{"Legumes"}, CarbSources: []string{"Quinoa", "Beans"}, FatSources: []string{"Avocado", "Tahini"},
		EstimatedCalories: 520, EstimatedProtein: 18, EstimatedCarbs: 60, EstimatedFats: 24,
		ContainsAllergens:   []string{"Sesame"},
		DietaryRestrictions: []string{"Vegan", "Vegetarian"},
		MedicalFriendly:     []string{"Type 2 Diabetes", "High Cholesterol"},
		MedicationSafe:      []string{},
	},
	{
		ID: "lu-03", Name: "Tuna Nicoise Salad", Description: "Seared tuna with green beans, olives and a soft egg.",
		PrepTime: "25 mins", Servings: 1, Tags: []string{"High Protein", "Omega-3"},
		Ingredients: []string{"120g Tuna", "1 Eggs", "1 cup Green Beans", "6 Olives", "1 tbsp Olive Oil"},
		MealType:    Lunch, Cuisine: []string{"French"},
		ProteinSources: []string{"Tuna", "Fish", "Eggs"}, CarbSources: []string{}, FatSources: []string{"Olive Oil"},
		EstimatedCalories: 420, EstimatedProtein: 35, EstimatedCarbs: 10, EstimatedFats: 26,
		ContainsAllergens:   []string{"Fish", "Eggs"},
		DietaryRestrictions: []string{"Pescatarian", "Keto", "Low-Carb"},
		MedicalFriendly:     []string{"Heart Disease", "Type 2 Diabetes"},
		MedicationSafe:      []string{},
	},
	{
		ID: "lu-04", Name: "Turkey Avocado Wrap", Description: "Sliced turkey with avocado and greens in a whole wheat tortilla.",
		PrepTime: "10 mins", Servings: 1, Tags: []string{"Quick", "Portable"},
		Ingredients: []string{"1 Whole Wheat Tortilla", "100g Turkey", "1/2 Avocado", "1 cup Lettuce", "1 tbsp Mayonnaise"},
		MealType:    Lunch, Cuisine: []string{"American"},
		ProteinSources: []string{"Turkey"}, CarbSources: []string{"Bread"}, FatSources: []string{"Avocado"},
		EstimatedCalories: 450, EstimatedProtein: 30, EstimatedCarbs: 35, EstimatedFats: 22,
		ContainsAllergens:   []string{"Wheat/Gluten", "Eggs"},
		DietaryRestrictions: []string{},
		MedicalFriendly:     []string{"Anemia"},
		MedicationSafe:      []string{},
	},
	{
		ID: "lu-05", Name: "Thai Peanut Noodle Bowl", Description: "Rice noodles tossed in a spicy peanut sauce with crisp vegetables.",
		PrepTime: "20 mins", Servings: 2, Tags: []string{"Spicy", "Comfort Food"},
		Ingredients: []string{"200g Rice Noodles", "3 tbsp Peanut Butter", "1 cup Bean Sprouts", "1 Carrots", "2 tbsp Soy Sauce", "1 Lime"},
		MealType:    Lunch, Cuisine: []string{"Thai", "Asian"},
		ProteinSources: []string{"Nut Butters"}, CarbSources: []string{"Rice"}, FatSources: []string{"Nut Butters"},
		EstimatedCalories: 540, EstimatedProtein: 16, EstimatedCarbs: 70, EstimatedFats: 22,
		ContainsAllergens:   []string{"Peanuts", "Soy"},
		DietaryRestrictions: []string{"Vegan", "Vegetarian"},
		MedicalFriendly:     []string{},
		MedicationSafe:      []string{},
	},
	{
		ID: "lu-06", Name: "Lentil Soup", Description: "Hearty lentil soup with carrots, celery and cumin.",
		PrepTime: "40 mins", Servings: 4, Tags: []string{"Meal-Prep", "High Fiber"},
		Ingredients: []string{"2 cups Lentils", "2 Carrots", "2 stalks Celery", "1 Onions", "2 cloves Garlic", "1 tsp Spices"},
		MealType:    Lunch, Cuisine: []string{"Mediterranean", "Middle Eastern"},
		ProteinSources: []string{"Legumes"}, CarbSources: []string{"Lentils"}, FatSources: []string{"Olive Oil"},
		EstimatedCalories: 340, EstimatedProtein: 18, EstimatedCarbs: 52, EstimatedFats: 6,
		ContainsAllergens:   []string{"Celery"},
		DietaryRestrictions: []string{"Vegan", "Vegetarian", "Low-Fat"},
		MedicalFriendly:     []string{"Type 2 Diabetes", "High Cholesterol", "Anemia"},
		MedicationSafe:      []string{},
	},
	{
		ID: "lu-07", Name: "Shrimp Taco Bowl", Description: "Chili-lime shrimp over rice with salsa and avocado.",
		PrepTime: "25 mins", Servings: 2, Tags: []string{"High Protein", "Fresh"},
		Ingredients: []string{"200g Shrimp", "1 cup Brown Rice", "1/2 cup Salsa", "1 Avocado", "1 Lime", "2 Corn Tortillas"},
		MealType:    Lunch, Cuisine: []string{"Mexican"},
		ProteinSources: []string{"Shrimp"}, CarbSources: []string{"Rice", "Corn"}, FatSources: []string{"Avocado"},
		EstimatedCalories: 480, EstimatedProtein: 30, EstimatedCarbs: 50, EstimatedFats: 18,
		ContainsAllergens:   []string{"Shellfish"},
		DietaryRestrictions: []string{"Pescatarian"},
		MedicalFriendly:     []string{"Type 2 Diabetes"},
		MedicationSafe:      []string{},
	},
	{
		ID: "lu-08", Name: "Caprese Sandwich", Description: "Mozzarella, tomato and basil on ciabatta with balsamic.",
		PrepTime: "10 mins", Servings: 1, Tags: []string{"Quick", "Comfort Food"},
		Ingredients: []string{"1 Bread roll", "100g Cheese", "1 Tomatoes", "6 leaves Basil", "1 tbsp Balsamic Vinegar"},
		MealType:    Lunch, Cuisine: []string{"Italian"},
		ProteinSources: []string{"Cheese"}, CarbSources: []string{"Bread"}, FatSources: []string{"Cheese"},
		EstimatedCalories: 470, EstimatedProtein: 22, EstimatedCarbs: 44, EstimatedFats: 23,
		ContainsAllergens:   []string{"Milk/Dairy", "Wheat/Gluten"},
		DietaryRestrictions: []string{"Vegetarian"},
		MedicalFriendly:     []string{},
		MedicationSafe:      []string{},
	},

	// Dinners
	{
		ID: "di-01", Name: "Baked Salmon with Asparagus", Description: "Oven-baked salmon fillet with roasted asparagus and lemon.",
		PrepTime: "25 mins", Servings: 2, Tags: []string{"Omega-3", "One-Pan"},
		Ingredients: []string{"2 fillets Salmon", "1 bunch Asparagus", "2 tbsp Olive Oil", "1 Lemon", "2 cloves Garlic"},
		MealType:    Dinner, Cuisine: []string{"American", "Mediterranean"},
		ProteinSources: []string{"Salmon", "Fish"}, CarbSources: []string{}, FatSources: []string{"Olive Oil", "Fatty Fish"},
		EstimatedCalories: 440, EstimatedProtein: 36, EstimatedCarbs: 8, EstimatedFats: 29,
		ContainsAllergens:   []string{"Fish"},
		DietaryRestrictions: []string{"Pescatarian", "Keto", "Low-Carb"},
		MedicalFriendly:     []string{"Heart Disease", "Type 2 Diabetes", "Hypertension"},
		MedicationSafe:      []string{},
	},
	{
		ID: "di-02", Name: "Grilled Chicken with Sweet Potatoes", Description: "Herb-marinated chicken with roasted sweet potatoes and broccoli.",
		PrepTime: "35 mins", Servings: 2, Tags: []string{"High Protein", "Balanced"},
		Ingredients: []string{"300g Chicken Breast", "2 Sweet Potatoes", "2 cups Broccoli", "2 tbsp Olive Oil", "1 tsp Herbs"},
		MealType:    Dinner, Cuisine: []string{"American"},
		ProteinSources: []string{"Chicken"}, CarbSources: []string{"Sweet Potatoes"}, FatSources: []string{"Olive Oil"},
		EstimatedCalories: 520, EstimatedProtein: 40, EstimatedCarbs: 45, EstimatedFats: 19,
		ContainsAllergens:   []string{},
		DietaryRestrictions: []string{},
		MedicalFriendly:     []string{"Type 2 Diabetes", "High Cholesterol", "Anemia"},
		MedicationSafe:      []string{},
	},
	{
		ID: "di-03", Name: "Vegetable Stir-Fry with Tofu", Description: "Crispy tofu and vegetables in a ginger-soy glaze over rice.",
		PrepTime: "25 mins", Servings: 2, Tags: []string{"Plant-Based", "Quick"},
		Ingredients: []string{"200g Tofu", "2 cups Broccoli", "1 Bell Peppers", "2 tbsp Soy Sauce", "1 tbsp Sesame Oil", "1 cup Jasmine Rice", "1 knob Ginger"},
		MealType:    Dinner, Cuisine: []string{"Asian"},
		ProteinSources: []string{"Tofu"}, CarbSources: []string{"Rice"}, FatSources: []string{"Seeds"},
		EstimatedCalories: 490, EstimatedProtein: 22, EstimatedCarbs: 58, EstimatedFats: 18,
		ContainsAllergens:   []string{"Soy", "Sesame"},
		DietaryRestrictions: []string{"Vegan", "Vegetarian"},
		MedicalFriendly:     []string{},
		MedicationSafe:      []string{},
	},
	{
		ID: "di-04", Name: "Beef and Broccoli", Description: "Seared beef strips with broccoli in a savory garlic sauce.",
		PrepTime: "30 mins", Servings: 2, Tags: []string{"High Protein", "Comfort Food"},
		Ingredients: []string{"300g Beef", "3 cups Broccoli", "2 tbsp Soy Sauce", "2 cloves Garlic", "1 cup Jasmine Rice"},
		MealType:    Dinner, Cuisine: []string{"Asian"},
		ProteinSources: []string{"Beef"}, CarbSources: []string{"Rice"}, FatSources: []string{},
		EstimatedCalories: 560, EstimatedProtein: 38, EstimatedCarbs: 52, EstimatedFats: 21,
		ContainsAllergens:   []string{"Soy"},
		DietaryRestrictions: []string{},
		MedicalFriendly:     []string{"Anemia"},
		MedicationSafe:      []string{},
	},
	{
		ID: "di-05", Name: "Chickpea Coconut Curry", Description: "Chickpeas simmered in spiced coconut milk with spinach.",
		PrepTime: "30 mins", Servings: 4, Tags: []string{"Plant-Based", "Meal-Prep"},
		Ingredients: []string{"2 cans Chickpeas", "1 can Coconut Milk", "2 cups Spinach", "1 Onions", "2 tbsp Curry Spices", "1 cup Basmati Rice"},
		MealType:    Dinner, Cuisine: []string{"Indian"},
		ProteinSources: []string{"Legumes"}, CarbSources: []string{"Beans", "Rice"}, FatSources: []string{"Coconut Oil"},
		EstimatedCalories: 510, EstimatedProtein: 16, EstimatedCarbs: 62, EstimatedFats: 22,
		ContainsAllergens:   []string{},
		DietaryRestrictions: []string{"Vegan", "Vegetarian"},
		MedicalFriendly:     []string{"Type 2 Diabetes", "High Cholesterol"},
		MedicationSafe:      []string{},
	},
	{
		ID: "di-06", Name: "Zucchini Noodles with Turkey Meatballs", Description: "Spiralized zucchini with lean turkey meatballs in marinara.",
		PrepTime: "35 mins", Servings: 2, Tags: []string{"Low-Carb", "High Protein"},
		Ingredients: []string{"300g Ground Turkey", "3 Zucchini", "1 cup Marinara Sauce", "1 Eggs", "2 cloves Garlic"},
		MealType:    Dinner, Cuisine: []string{"Italian"},
		ProteinSources: []string{"Turkey"}, CarbSources: []string{}, FatSources: []string{"Olive Oil"},
		EstimatedCalories: 420, EstimatedProtein: 38, EstimatedCarbs: 18, EstimatedFats: 22,
		ContainsAllergens:   []string{"Eggs"},
		DietaryRestrictions: []string{"Low-Carb"},
		MedicalFriendly:     []string{"Type 2 Diabetes", "Hypertension", "PCOS"},
		MedicationSafe:      []string{},
	},
	{
		ID: "di-07", Name: "Stuffed Bell Peppers", Description: "Bell peppers stuffed with quinoa, black beans and vegetables.",
		PrepTime: "45 mins", Servings: 4, Tags: []string{"Meal-Prep", "High Fiber"},
		Ingredients: []string{"4 Bell Peppers", "1 cup Quinoa", "1 can Black Beans", "1 cup Tomatoes", "1 Onions", "1 tsp Spices"},
		MealType:    Dinner, Cuisine: []string{"Mexican", "American"},
		ProteinSources: []string{"Legumes"}, CarbSources: []string{"Quinoa", "Beans"}, FatSources: []string{},
		EstimatedCalories: 380, EstimatedProtein: 14, EstimatedCarbs: 58, EstimatedFats: 8,
		ContainsAllergens:   []string{},
		DietaryRestrictions: []string{"Vegan", "Vegetarian", "Low-Fat"},
		MedicalFriendly:     []string{"Type 2 Diabetes", "Hypertension", "High Cholesterol"},
		MedicationSafe:      []string{},
	},
	{
		ID: "di-08", Name: "Pesto Pasta with Cherry Tomatoes", Description: "Spaghetti tossed with basil pesto, cherry tomatoes and parmesan.",
		PrepTime: "20 mins", Servings: 2, Tags: []string{"Comfort Food", "Quick"},
		Ingredients: []string{"200g Spaghetti", "3 tbsp Pesto", "1 cup Cherry Tomatoes", "30g Parmesan Cheese", "1 handful Basil"},
		MealType:    Dinner, Cuisine: []string{"Italian"},
		ProteinSources: []string{"Cheese"}, CarbSources: []string{"Pasta"}, FatSources: []string{"Nuts", "Olive Oil"},
		EstimatedCalories: 580, EstimatedProtein: 18, EstimatedCarbs: 72, EstimatedFats: 24,
		ContainsAllergens:   []string{"Wheat/Gluten", "Milk/Dairy", "Tree Nuts"},
		DietaryRestrictions: []string{"Vegetarian"},
		MedicalFriendly:     []string{},
		MedicationSafe:      []string{},
	},
}

// Catalog returns the full static catalog. Callers must not mutate entries.
func Catalog() []Meal {
	return catalog
}

// CatalogByType returns the catalog meals of the requested type, in catalog order.
func CatalogByType(t Type) []Meal {
	var out []Meal
	for _, m := range catalog {
		if m.MealType == t {
			out = append(out, m)
		}
	}
	return out
}
