package foods

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jubyaid123/hemovita/internal/model"
)

func result(marker string, status model.Status) model.ClassificationResult {
	return model.ClassificationResult{MarkerID: marker, Status: status}
}

func TestLoad(t *testing.T) {
	content := `Food,Category,Bundle,Typical_serve_g,Diet_tag
Beef liver,meat,iron,85,omnivore
"Lentils, cooked",legume,iron,100,vegan
Mystery row without bundle,meat,,85,omnivore
No serving size,meat,iron,,omnivore
`
	path := filepath.Join(t.TempDir(), "foods.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	items, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3 (bundle-less row dropped)", len(items))
	}

	// Quoted names with embedded commas are real CSV here, unlike the
	// relationship table.
	if items[1].Name != "Lentils, cooked" {
		t.Errorf("quoted name = %q", items[1].Name)
	}
	if items[0].ServingGrams == nil || *items[0].ServingGrams != 85 {
		t.Errorf("serving = %v, want 85", items[0].ServingGrams)
	}
	if items[2].ServingGrams != nil {
		t.Errorf("missing serving must be nil, got %v", *items[2].ServingGrams)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func suggesterFixture() *Suggester {
	items := []Item{
		{Name: "Beef liver", Category: "meat", Bundle: "iron", DietTag: "omnivore"},
		{Name: "Lentils", Category: "legume", Bundle: "iron", DietTag: "vegan"},
		{Name: "Spinach", Category: "vegetable", Bundle: "iron", DietTag: "vegan"},
		{Name: "Beef liver", Category: "meat", Bundle: "iron", DietTag: "omnivore"}, // duplicate
		{Name: "Clams", Category: "seafood", Bundle: "vitamin_B12", DietTag: "omnivore"},
		{Name: "Nutritional yeast", Category: "condiment", Bundle: "vitamin_B12", DietTag: "vegan"},
		{Name: "Salmon", Category: "seafood", Bundle: "vitamin_D", DietTag: "omnivore"},
	}
	return NewSuggester(items, DefaultBundleMap())
}

func TestSuggestTriggers(t *testing.T) {
	s := suggesterFixture()

	suggestions, order := s.Suggest([]model.ClassificationResult{
		result("ferritin", model.StatusLow),
		result("vitamin_D", model.StatusNormal),   // normal, no suggestion
		result("homocysteine", model.StatusHigh),  // high homocysteine maps to B12
		result("vitamin_B12", model.StatusHigh),   // high B12 itself is not a trigger
		result("Hemoglobin", model.StatusLow),     // same iron bundle, no duplicate
	}, 5, "")

	if !reflect.DeepEqual(order, []string{"iron", "vitamin_B12"}) {
		t.Fatalf("bundle order = %v", order)
	}
	if len(suggestions["iron"]) != 3 {
		t.Errorf("iron suggestions = %d items, want 3 (duplicate name dropped)", len(suggestions["iron"]))
	}
	if len(suggestions["vitamin_B12"]) != 2 {
		t.Errorf("B12 suggestions = %d items, want 2", len(suggestions["vitamin_B12"]))
	}
}

func TestSuggestTopN(t *testing.T) {
	s := suggesterFixture()
	suggestions, _ := s.Suggest([]model.ClassificationResult{
		result("ferritin", model.StatusLow),
	}, 2, "")
	if len(suggestions["iron"]) != 2 {
		t.Errorf("topN=2 gave %d items", len(suggestions["iron"]))
	}
}

func TestSuggestDietFilter(t *testing.T) {
	s := suggesterFixture()
	suggestions, order := s.Suggest([]model.ClassificationResult{
		result("ferritin", model.StatusLow),
		result("vitamin_B12", model.StatusLow),
	}, 5, "vegan")

	wantIron := []string{"Lentils", "Spinach"}
	var gotIron []string
	for _, item := range suggestions["iron"] {
		gotIron = append(gotIron, item.Name)
	}
	if !reflect.DeepEqual(gotIron, wantIron) {
		t.Errorf("vegan iron = %v, want %v", gotIron, wantIron)
	}
	if len(suggestions["vitamin_B12"]) != 1 || suggestions["vitamin_B12"][0].Name != "Nutritional yeast" {
		t.Errorf("vegan B12 = %v", suggestions["vitamin_B12"])
	}
	if !reflect.DeepEqual(order, []string{"iron", "vitamin_B12"}) {
		t.Errorf("order = %v", order)
	}
}

func TestSuggestBundleWithNoMatchesIsOmitted(t *testing.T) {
	s := suggesterFixture()
	suggestions, order := s.Suggest([]model.ClassificationResult{
		result("zinc", model.StatusLow),
	}, 5, "")
	if len(suggestions) != 0 || len(order) != 0 {
		t.Errorf("zinc has no foods in the fixture, got %v / %v", suggestions, order)
	}
}
