package main

import (
	"testing"

	"github.com/fatih/color"

	"github.com/Zachdehooge/wildfire-dashboard/internal/model"
)

func TestLocalURL(t *testing.T) {
	cases := map[string]string{
		":8080":          "http://localhost:8080/",
		"127.0.0.1:9000": "http://127.0.0.1:9000/",
	}
	for in, want := range cases {
		if got := localURL(in); got != want {
			t.Errorf("localURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRiskColorDistinguishesFallback(t *testing.T) {
	if riskColor(model.RiskHigh).Equals(riskColor("Extreme")) {
		t.Fatal("unknown risk shares the High terminal color")
	}
	if !riskColor("").Equals(color.New(color.FgMagenta)) {
		t.Fatal("empty risk should use the fallback color")
	}
}
