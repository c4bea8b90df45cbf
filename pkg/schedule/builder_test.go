package schedule

import (
	"reflect"
	"testing"

	"github.com/jubyaid123/hemovita/internal/model"
)

func result(marker string, status model.Status) model.ClassificationResult {
	return model.ClassificationResult{MarkerID: marker, Status: status}
}

func titles(items []model.ScheduleItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Title)
	}
	return out
}

func TestBuildAllNormal(t *testing.T) {
	b := NewBuilder(DefaultConfig())

	items := b.Build([]model.ClassificationResult{
		result("Hemoglobin", model.StatusNormal),
		result("vitamin_D", model.StatusNormal),
	})

	want := []string{"Lifestyle Check-In", "Practitioner Review"}
	if !reflect.DeepEqual(titles(items), want) {
		t.Errorf("titles = %v, want %v", titles(items), want)
	}
	if items[1].Timeframe != "Within 6 months" {
		t.Errorf("review timeframe = %q, want relaxed 6 months when nothing is flagged", items[1].Timeframe)
	}
}

func TestBuildReviewTightensOnAnyFollowUp(t *testing.T) {
	b := NewBuilder(DefaultConfig())

	items := b.Build([]model.ClassificationResult{
		result("zinc", model.StatusLow),
	})
	if items[1].Timeframe != "Within 2 weeks" {
		t.Errorf("review timeframe = %q, want Within 2 weeks", items[1].Timeframe)
	}
}

func TestBuildConditionalItems(t *testing.T) {
	b := NewBuilder(DefaultConfig())

	tests := []struct {
		name    string
		results []model.ClassificationResult
		want    []string
	}{
		{
			name:    "low ferritin adds iron item",
			results: []model.ClassificationResult{result("ferritin", model.StatusLow)},
			want:    []string{"Lifestyle Check-In", "Practitioner Review", "Iron Re-evaluation"},
		},
		{
			name:    "high iron marker does not trigger iron item",
			results: []model.ClassificationResult{result("MCV", model.StatusHigh)},
			want:    []string{"Lifestyle Check-In", "Practitioner Review"},
		},
		{
			name:    "low B12 adds b-complex item",
			results: []model.ClassificationResult{result("vitamin_B12", model.StatusLow)},
			want:    []string{"Lifestyle Check-In", "Practitioner Review", "B-Complex Recheck"},
		},
		{
			name:    "high homocysteine also triggers b-complex",
			results: []model.ClassificationResult{result("homocysteine", model.StatusHigh)},
			want:    []string{"Lifestyle Check-In", "Practitioner Review", "B-Complex Recheck"},
		},
		{
			name:    "low vitamin D adds follow-up",
			results: []model.ClassificationResult{result("vitamin_D", model.StatusLow)},
			want:    []string{"Lifestyle Check-In", "Practitioner Review", "Vitamin D Follow-Up"},
		},
		{
			name:    "unknown vitamin D still flags a follow-up",
			results: []model.ClassificationResult{result("vitamin_D", model.StatusUnknown)},
			want:    []string{"Lifestyle Check-In", "Practitioner Review", "Vitamin D Follow-Up"},
		},
		{
			name: "all three in fixed order",
			results: []model.ClassificationResult{
				result("vitamin_D", model.StatusLow),
				result("homocysteine", model.StatusHigh),
				result("Hemoglobin", model.StatusLow),
			},
			want: []string{"Lifestyle Check-In", "Practitioner Review", "Iron Re-evaluation", "B-Complex Recheck", "Vitamin D Follow-Up"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(b.Build(tt.results))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("titles = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	b := NewBuilder(DefaultConfig())
	input := []model.ClassificationResult{
		result("ferritin", model.StatusLow),
		result("vitamin_D", model.StatusLow),
	}

	first := b.Build(input)
	second := b.Build(input)
	if !reflect.DeepEqual(first, second) {
		t.Error("Build must return identical output for identical input")
	}

	seen := map[string]struct{}{}
	for _, item := range first {
		if _, dup := seen[item.Title]; dup {
			t.Errorf("duplicate title %q", item.Title)
		}
		seen[item.Title] = struct{}{}
	}
}
