package dashboard

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/Zachdehooge/wildfire-dashboard/internal/alert"
	"github.com/Zachdehooge/wildfire-dashboard/internal/model"
	"github.com/Zachdehooge/wildfire-dashboard/internal/projection"
	"github.com/Zachdehooge/wildfire-dashboard/internal/risk"
)

const (
	HighRiskMessage = "HIGH RISK WILDFIRE DETECTED - IMMEDIATE ATTENTION REQUIRED"
	HeatMessage     = "FIRE WARNING - HIGH TEMP"

	placeholder = "--"
	// lastUpdatedLayout is a local wall-clock time, e.g. 3:04:05 PM.
	lastUpdatedLayout = "3:04:05 PM"
)

// View is everything the render surfaces show for one moment. Digest
// identifies the rendered content and ignores UpdatedAt.
type View struct {
	Map       MapView    `json:"map"`
	Panel     PanelView  `json:"panel"`
	Banner    BannerView `json:"banner"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Digest    string     `json:"digest"`
}

// Marker is one fire plotted on the map.
type Marker struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Risk      model.Risk `json:"risk"`
	Level     model.Risk `json:"level"`
	X         float64    `json:"x"`
	Y         float64    `json:"y"`
	Color     risk.Color `json:"color"`
	Halo      bool       `json:"halo"`
	Title     string     `json:"title"`
	OffCanvas bool       `json:"offCanvas"`
}

// MapView is the plotted fire list.
type MapView struct {
	Width      float64  `json:"width"`
	Height     float64  `json:"height"`
	MarkerSize int      `json:"markerSize"`
	HaloSize   int      `json:"haloSize"`
	Markers    []Marker `json:"markers"`
}

// PanelView is the live data panel.
type PanelView struct {
	Temperature        string `json:"temperature"`
	TemperatureKnown   bool   `json:"temperatureKnown"`
	SensorID           string `json:"sensorId,omitempty"`
	Location           string `json:"location,omitempty"`
	AverageTemperature string `json:"averageTemperature"`
	HighRiskCount      int    `json:"highRiskCount"`
	HighRiskHighlight  bool   `json:"highRiskHighlight"`
	LastUpdated        string `json:"lastUpdated"`
}

// BannerView is the global alert banner.
type BannerView struct {
	Visible     bool   `json:"visible"`
	Message     string `json:"message,omitempty"`
	HeatWarning bool   `json:"heatWarning"`
	HeatMessage string `json:"heatMessage,omitempty"`
}

// RenderMap projects and colors every fire. Fires outside the projector's
// bounds are kept and flagged rather than clamped.
func RenderMap(fires []model.FireRecord, p *projection.Projector) MapView {
	c := p.Canvas()
	mv := MapView{
		Width:      c.Width,
		Height:     c.Height,
		MarkerSize: risk.MarkerSize,
		HaloSize:   risk.HaloSize,
		Markers:    make([]Marker, 0, len(fires)),
	}
	for _, f := range fires {
		pt := p.Project(f.Lat, f.Lng)
		mv.Markers = append(mv.Markers, Marker{
			ID:        string(f.ID),
			Name:      f.Name,
			Risk:      f.Risk,
			Level:     risk.Level(f.Risk),
			X:         pt.X,
			Y:         pt.Y,
			Color:     risk.Classify(f.Risk),
			Halo:      risk.IsHighRisk(f.Risk),
			Title:     fmt.Sprintf("%s - Risk: %s", f.Name, f.Risk),
			OffCanvas: !p.Contains(f.Lat, f.Lng),
		})
	}
	return mv
}

// RenderPanel formats the temperature and summary stats, using "--"
// placeholders for unknown values.
func RenderPanel(temp model.Temperature, summary model.SummaryStats) PanelView {
	pv := PanelView{
		Temperature:        temp.String(),
		TemperatureKnown:   temp.Known,
		SensorID:           temp.SensorID,
		Location:           temp.Location,
		AverageTemperature: model.FormatCelsius(summary.AverageTemperature),
		HighRiskCount:      summary.HighRiskCount,
		HighRiskHighlight:  summary.HighRiskCount > 0,
		LastUpdated:        placeholder,
	}
	if !summary.Timestamp.IsZero() {
		pv.LastUpdated = summary.Timestamp.Local().Format(lastUpdatedLayout)
	}
	return pv
}

// RenderBanner decides which alert messages show.
func RenderBanner(fires []model.FireRecord, temp model.Temperature) BannerView {
	var bv BannerView
	if alert.Evaluate(fires) {
		bv.Visible = true
		bv.Message = HighRiskMessage
	}
	if alert.HeatWarning(temp) {
		bv.HeatWarning = true
		bv.HeatMessage = HeatMessage
	}
	return bv
}

// BuildView renders all surfaces from the last-known values.
func BuildView(fires []model.FireRecord, temp model.Temperature, summary model.SummaryStats, p *projection.Projector, now time.Time) View {
	v := View{
		Map:       RenderMap(fires, p),
		Panel:     RenderPanel(temp, summary),
		Banner:    RenderBanner(fires, temp),
		UpdatedAt: now,
	}
	v.Digest = digest(v)
	return v
}

func digest(v View) string {
	b, _ := json.Marshal(struct {
		Map    MapView
		Panel  PanelView
		Banner BannerView
	}{v.Map, v.Panel, v.Banner})
	h := fnv.New64a()
	h.Write(b)
	return fmt.Sprintf("%016x", h.Sum64())
}
