package alert

import (
	"testing"

	"github.com/Zachdehooge/wildfire-dashboard/internal/model"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name  string
		fires []model.FireRecord
		want  bool
	}{
		{"nil", nil, false},
		{"empty", []model.FireRecord{}, false},
		{"low only", []model.FireRecord{{Risk: "Low"}}, false},
		{"high and low", []model.FireRecord{{Risk: "High"}, {Risk: "Low"}}, true},
		{"unknown label", []model.FireRecord{{Risk: "Extreme"}, {Risk: ""}}, false},
	}
	for _, c := range cases {
		if got := Evaluate(c.fires); got != c.want {
			t.Errorf("%s: Evaluate = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestEvaluateClearsImmediately(t *testing.T) {
	if !Evaluate([]model.FireRecord{{Risk: "High"}}) {
		t.Fatal("expected alert")
	}
	if Evaluate([]model.FireRecord{{Risk: "Moderate"}}) {
		t.Fatal("alert should clear on the next list without high risk")
	}
}

func TestCountHighRisk(t *testing.T) {
	fires := []model.FireRecord{{Risk: "High"}, {Risk: "High"}, {Risk: "Low"}, {Risk: "Catastrophic"}}
	if got := CountHighRisk(fires); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestHeatWarning(t *testing.T) {
	if HeatWarning(model.UnknownTemperature()) {
		t.Error("unknown reading must not warn")
	}
	if HeatWarning(model.Temperature{Value: 35, Known: true}) {
		t.Error("threshold itself must not warn")
	}
	if !HeatWarning(model.Temperature{Value: 35.5, Known: true}) {
		t.Error("reading above threshold should warn")
	}
}
