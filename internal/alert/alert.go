// Package alert decides when the dashboard raises its global warnings.
package alert

import (
	"github.com/Zachdehooge/wildfire-dashboard/internal/model"
	"github.com/Zachdehooge/wildfire-dashboard/internal/risk"
)

// HeatThreshold is the reading above which the sensor heat warning shows.
const HeatThreshold = 35.0

// Evaluate reports whether any fire in the latest list is high risk.
// There is no hysteresis: an empty or all-low list clears the alert.
func Evaluate(fires []model.FireRecord) bool {
	for _, f := range fires {
		if risk.IsHighRisk(f.Risk) {
			return true
		}
	}
	return false
}

// CountHighRisk counts high-risk fires. Unrecognised labels never count.
func CountHighRisk(fires []model.FireRecord) int {
	n := 0
	for _, f := range fires {
		if risk.IsHighRisk(f.Risk) {
			n++
		}
	}
	return n
}

// HeatWarning reports whether a known reading exceeds HeatThreshold.
func HeatWarning(t model.Temperature) bool {
	return t.Known && t.Value > HeatThreshold
}
