package generator

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Zachdehooge/wildfire-dashboard/internal/dashboard"
	"github.com/Zachdehooge/wildfire-dashboard/internal/model"
	"github.com/Zachdehooge/wildfire-dashboard/internal/projection"
)

func sampleView() dashboard.View {
	fires := []model.FireRecord{
		{ID: "1", Name: "Kananaskis", Lat: 50.9, Lng: -115.1, Risk: model.RiskHigh},
		{ID: "2", Name: "Jasper East", Lat: 52.9, Lng: -118.0, Risk: model.RiskLow},
		{ID: "3", Name: "Slave Lake", Lat: 53.2, Lng: -114.7, Risk: model.RiskModerate},
	}
	return dashboard.BuildView(
		fires,
		model.Temperature{Value: 31.2, Known: true, SensorID: "sensor01"},
		model.SummaryStats{AverageTemperature: 27.4, HighRiskCount: 1, Timestamp: time.Now()},
		projection.Default(),
		time.Date(2024, 7, 1, 18, 0, 0, 0, time.UTC),
	)
}

func TestRenderHTMLMarkers(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, sampleView(), PageOptions{}); err != nil {
		t.Fatal(err)
	}
	html := buf.String()

	if n := strings.Count(html, `class="marker"`); n != 3 {
		t.Errorf("markers = %d, want 3", n)
	}
	if n := strings.Count(html, `class="halo"`); n != 1 {
		t.Errorf("halos = %d, want 1 (high risk only)", n)
	}
	if !strings.Contains(html, `id="alert-banner"`) {
		t.Error("alert banner missing for high-risk fire")
	}
	if !strings.Contains(html, "31.2°C") {
		t.Error("temperature missing")
	}
	if !strings.Contains(html, "Jul 1, 2024 at 18:00:00 UTC") {
		t.Error("render time not in 24-hour UTC")
	}
	if strings.Contains(html, "http-equiv") || strings.Contains(html, "WebSocket") {
		t.Error("refresh hooks rendered without options")
	}
}

func TestRenderHTMLEmptyView(t *testing.T) {
	v := dashboard.BuildView(nil, model.UnknownTemperature(), model.SummaryStats{}, projection.Default(), time.Now())

	var buf bytes.Buffer
	if err := RenderHTML(&buf, v, PageOptions{RefreshSeconds: 10, LiveURL: "/ws"}); err != nil {
		t.Fatal(err)
	}
	html := buf.String()

	if strings.Contains(html, `class="marker"`) || strings.Contains(html, `id="alert-banner"`) {
		t.Error("empty view rendered markers or banner")
	}
	if !strings.Contains(html, "--°C") || !strings.Contains(html, `<span id="last-updated">--</span>`) {
		t.Error("placeholders missing")
	}
	if !strings.Contains(html, `content="10"`) || !strings.Contains(html, "WebSocket") {
		t.Error("refresh hooks missing")
	}
	if !strings.Contains(html, `var rendered = "`+v.Digest+`"`) {
		t.Error("live reload not keyed on the view digest")
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "dashboard.html")
	jsonPath := filepath.Join(dir, "dashboard.json")

	if err := WriteFiles(sampleView(), htmlPath, jsonPath, PageOptions{RefreshSeconds: 10}); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(htmlPath); err != nil {
		t.Fatalf("html not written: %v", err)
	}
	b, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("json not written: %v", err)
	}
	var got dashboard.View
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("json snapshot invalid: %v", err)
	}
	if len(got.Map.Markers) != 3 || !got.Banner.Visible {
		t.Fatalf("unexpected snapshot %+v", got)
	}
}

func TestWriteFilesSkipsJSON(t *testing.T) {
	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "dashboard.html")
	if err := WriteFiles(sampleView(), htmlPath, "", PageOptions{}); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the html file, got %d entries", len(entries))
	}
}
