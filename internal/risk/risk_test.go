package risk

import (
	"testing"

	"github.com/Zachdehooge/wildfire-dashboard/internal/model"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		in   model.Risk
		want Color
	}{
		{"High", ColorHigh},
		{"Moderate", ColorModerate},
		{"Low", ColorLow},
		{"", ColorFallback},
		{"high", ColorFallback},
		{"Extreme", ColorFallback},
	}
	for _, c := range cases {
		if got := Classify(c.in); got != c.want {
			t.Errorf("Classify(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestFallbackIsDistinct(t *testing.T) {
	for _, c := range []Color{ColorHigh, ColorModerate, ColorLow} {
		if c == ColorFallback {
			t.Fatalf("fallback color collides with %s", c)
		}
	}
}

func TestIsHighRisk(t *testing.T) {
	for _, r := range []model.Risk{"Low", "Moderate", "", "HIGH", "Unknown"} {
		if IsHighRisk(r) {
			t.Errorf("IsHighRisk(%q) = true", r)
		}
	}
	if !IsHighRisk("High") {
		t.Error("IsHighRisk(High) = false")
	}
}

func TestLevel(t *testing.T) {
	if Level("Moderate") != model.RiskModerate {
		t.Error("Moderate should stay Moderate")
	}
	if Level("Severe") != model.RiskUnknown {
		t.Error("unrecognised label should become Unknown")
	}
}
