package meal

import (
	"strings"
	"testing"
)

func TestParseType(t *testing.T) {
	for _, raw := range []string{"breakfast", "lunch", "dinner"} {
		typ, err := ParseType(raw)
		if err != nil {
			t.Errorf("ParseType(%q) failed: %v", raw, err)
		}
		if string(typ) != raw {
			t.Errorf("ParseType(%q) = %q", raw, typ)
		}
	}
	if _, err := ParseType("brunch"); err == nil {
		t.Error("expected an error for an unknown meal type")
	}
}

func TestNewIDPrefix(t *testing.T) {
	cases := map[Type]string{Breakfast: "br-", Lunch: "lu-", Dinner: "di-"}
	for typ, prefix := range cases {
		if id := NewID(typ); !strings.HasPrefix(id, prefix) {
			t.Errorf("NewID(%s) = %q, want prefix %q", typ, id, prefix)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := CatalogByType(Breakfast)[0]
	c := orig.Clone()

	if c.ID == orig.ID {
		t.Error("clone must get a fresh identifier")
	}
	if c.Name != orig.Name {
		t.Error("clone must keep the meal content")
	}

	c.Ingredients[0] = "tampered"
	if orig.Ingredients[0] == "tampered" {
		t.Error("mutating the clone changed the original")
	}
}

func TestPlaceholder(t *testing.T) {
	p := Placeholder(Dinner)
	if !p.IsPlaceholder() {
		t.Error("placeholder must report itself as such")
	}
	if p.Name != PlaceholderName {
		t.Errorf("placeholder named %q", p.Name)
	}
	if len(p.Ingredients) != 0 || p.EstimatedCalories != 0 {
		t.Error("placeholder must carry no ingredients or nutrition")
	}
	if p.MealType != Dinner {
		t.Errorf("placeholder type %q", p.MealType)
	}
}

func TestCatalogCoversAllTypes(t *testing.T) {
	for _, typ := range []Type{Breakfast, Lunch, Dinner} {
		if len(CatalogByType(typ)) < 5 {
			t.Errorf("catalog has too few %s entries", typ)
		}
	}
	for _, m := range Catalog() {
		if m.ID == "" || m.Name == "" || len(m.Ingredients) == 0 {
			t.Errorf("catalog entry %q is incomplete", m.Name)
		}
		if m.EstimatedCalories <= 0 {
			t.Errorf("catalog entry %q has no calorie estimate", m.Name)
		}
	}
}
