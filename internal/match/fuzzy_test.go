package match

import "testing"

func TestFuzzy(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Peanuts", "peanut", true},
		{"Peanut Butter", "Peanuts", false},
		{"Peanut", "Peanut Butter", true},
		{"Fish", "Shellfish", true},
		{"Chicken", "Beef", false},
		{"", "Beef", true}, // empty string is contained in everything
	}
	for _, c := range cases {
		if got := Fuzzy(c.a, c.b); got != c.want {
			t.Errorf("Fuzzy(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestAnyFuzzy(t *testing.T) {
	allergens := []string{"Eggs", "Milk/Dairy"}
	if !AnyFuzzy(allergens, []string{"milk"}) {
		t.Error("expected milk to match Milk/Dairy")
	}
	if AnyFuzzy(allergens, []string{"Shellfish"}) {
		t.Error("did not expect Shellfish to match")
	}
	if AnyFuzzy(nil, []string{"Eggs"}) {
		t.Error("empty candidates must never match")
	}
}

func TestContainsFold(t *testing.T) {
	if !ContainsFold("2 tbsp Soy Sauce", "soy sauce") {
		t.Error("expected ingredient text to contain soy sauce")
	}
	if ContainsFold("soy", "Soy Sauce") {
		t.Error("ContainsFold must be one-directional")
	}
}
