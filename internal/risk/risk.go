// Package risk maps fire risk labels to display treatment.
package risk

import "github.com/Zachdehooge/wildfire-dashboard/internal/model"

// Color is a CSS hex color.
type Color string

const (
	ColorHigh     Color = "#DC2626"
	ColorModerate Color = "#FF7A00"
	ColorLow      Color = "#FCD34D"
	// ColorFallback marks labels outside the known set.
	ColorFallback Color = "#B22222"
)

// Marker geometry in pixels.
const (
	MarkerSize  = 16
	HaloSize    = 80
	HaloOpacity = 0.3
)

// Level normalises a label to the closed set, mapping anything unrecognised
// (including the empty label) to model.RiskUnknown.
func Level(r model.Risk) model.Risk {
	switch r {
	case model.RiskHigh, model.RiskModerate, model.RiskLow:
		return r
	default:
		return model.RiskUnknown
	}
}

// Classify returns the marker color for a risk label.
func Classify(r model.Risk) Color {
	switch r {
	case model.RiskHigh:
		return ColorHigh
	case model.RiskModerate:
		return ColorModerate
	case model.RiskLow:
		return ColorLow
	default:
		return ColorFallback
	}
}

// IsHighRisk is true exactly for "High". It gates the predicted-zone halo
// and the global alert banner.
func IsHighRisk(r model.Risk) bool {
	return r == model.RiskHigh
}

// Rank orders levels for sorting, highest first.
func Rank(r model.Risk) int {
	switch r {
	case model.RiskHigh:
		return 3
	case model.RiskModerate:
		return 2
	case model.RiskLow:
		return 1
	default:
		return 0
	}
}
