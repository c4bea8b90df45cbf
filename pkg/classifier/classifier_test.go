package classifier

import (
	"math"
	"testing"

	"github.com/jubyaid123/hemovita/internal/model"
	"github.com/jubyaid123/hemovita/pkg/reference"
)

func fp(v float64) *float64 { return &v }

func testTable(t *testing.T) *reference.Table {
	t.Helper()
	table, err := reference.NewTable(map[string]Range{
		"ferritin":     {Low: fp(15)},
		"MCV":          {Low: fp(80), High: fp(100)},
		"homocysteine": {High: fp(15)},
	})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return table
}

type Range = reference.Range

func TestClassifyBoundaries(t *testing.T) {
	c := New(testTable(t))

	tests := []struct {
		name   string
		marker string
		value  *float64
		want   model.Status
	}{
		{"exactly at low is normal", "MCV", fp(80), model.StatusNormal},
		{"just below low", "MCV", fp(79.999), model.StatusLow},
		{"exactly at high is normal", "MCV", fp(100), model.StatusNormal},
		{"just above high", "MCV", fp(100.001), model.StatusHigh},
		{"inside range", "MCV", fp(90), model.StatusNormal},
		{"open high side never flags high", "ferritin", fp(5000), model.StatusNormal},
		{"open low side never flags low", "homocysteine", fp(0.1), model.StatusNormal},
		{"above open-low marker high", "homocysteine", fp(16), model.StatusHigh},
		{"below open-high marker low", "ferritin", fp(8), model.StatusLow},
		{"nil value", "MCV", nil, model.StatusUnknown},
		{"NaN", "MCV", fp(math.NaN()), model.StatusUnknown},
		{"positive infinity", "MCV", fp(math.Inf(1)), model.StatusUnknown},
		{"negative infinity", "MCV", fp(math.Inf(-1)), model.StatusUnknown},
		{"unknown marker", "selenium", fp(50), model.StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.marker, tt.value); got != tt.want {
				t.Errorf("Classify(%s) = %s, want %s", tt.marker, got, tt.want)
			}
		})
	}
}

func TestClassifyPanel(t *testing.T) {
	c := New(testTable(t))

	labels := c.ClassifyPanel(map[string]*float64{
		"ferritin":     fp(8),
		"MCV":          fp(90),
		"homocysteine": fp(22),
		"selenium":     fp(1),
	})

	want := map[string]model.Status{
		"ferritin":     model.StatusLow,
		"MCV":          model.StatusNormal,
		"homocysteine": model.StatusHigh,
		"selenium":     model.StatusUnknown,
	}
	if len(labels) != len(want) {
		t.Fatalf("got %d labels, want %d", len(labels), len(want))
	}
	for marker, status := range want {
		if labels[marker] != status {
			t.Errorf("labels[%s] = %s, want %s", marker, labels[marker], status)
		}
	}
}

func TestClassifyAllPreservesOrderAndNotes(t *testing.T) {
	c := New(testTable(t))

	results := c.ClassifyAll([]model.MarkerReading{
		{MarkerID: "homocysteine", Value: fp(22)},
		{MarkerID: "ferritin", Value: fp(8)},
		{MarkerID: "MCV", Value: nil},
		{MarkerID: "selenium", Value: fp(1)},
	})

	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	wantOrder := []string{"homocysteine", "ferritin", "MCV", "selenium"}
	for i, marker := range wantOrder {
		if results[i].MarkerID != marker {
			t.Fatalf("results[%d] = %s, want %s", i, results[i].MarkerID, marker)
		}
	}

	if results[0].Note != "above reference high 15" {
		t.Errorf("high note = %q", results[0].Note)
	}
	if results[1].Note != "below reference low 15" {
		t.Errorf("low note = %q", results[1].Note)
	}
	if results[2].Note != "value not measured" {
		t.Errorf("unmeasured note = %q", results[2].Note)
	}
	if results[3].Note != "no reference range for this marker" {
		t.Errorf("missing-range note = %q", results[3].Note)
	}
}
