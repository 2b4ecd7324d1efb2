// Package generator renders the dashboard page and JSON snapshot.
package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"

	"github.com/natefinch/atomic"

	"github.com/Zachdehooge/wildfire-dashboard/internal/dashboard"
	"github.com/Zachdehooge/wildfire-dashboard/internal/risk"
)

// PageOptions controls how the page refreshes itself.
type PageOptions struct {
	// RefreshSeconds adds a meta refresh when > 0 (static file output).
	RefreshSeconds int
	// LiveURL, when set, is a websocket path the page listens on and reloads
	// from whenever a new view arrives.
	LiveURL string
}

var pageTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"toJSON": toJSON,
	"half":   func(n int) float64 { return float64(n) / 2 },
}).Parse(pageHTML))

type pageData struct {
	dashboard.View
	Options      PageOptions
	HaloOpacity  float64
	LegendHigh   risk.Color
	LegendMod    risk.Color
	LegendLow    risk.Color
	LastRendered string
}

// RenderHTML writes the dashboard page for v to w.
func RenderHTML(w io.Writer, v dashboard.View, opts PageOptions) error {
	data := pageData{
		View:         v,
		Options:      opts,
		HaloOpacity:  risk.HaloOpacity,
		LegendHigh:   risk.ColorHigh,
		LegendMod:    risk.ColorModerate,
		LegendLow:    risk.ColorLow,
		LastRendered: v.UpdatedAt.UTC().Format("Jan 2, 2006 at 15:04:05 UTC"),
	}
	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render dashboard: %w", err)
	}
	return nil
}

// MarshalView encodes v as the JSON snapshot served to browsers.
func MarshalView(v dashboard.View) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal view: %w", err)
	}
	return b, nil
}

// WriteFiles renders v to htmlPath and, if jsonPath is non-empty, its JSON
// snapshot to jsonPath. Both files are replaced atomically so a browser
// never reads a partial file.
func WriteFiles(v dashboard.View, htmlPath, jsonPath string, opts PageOptions) error {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, v, opts); err != nil {
		return err
	}
	if err := atomic.WriteFile(htmlPath, &buf); err != nil {
		return fmt.Errorf("write %s failed: %w", htmlPath, err)
	}

	if jsonPath != "" {
		b, err := MarshalView(v)
		if err != nil {
			return err
		}
		if err := atomic.WriteFile(jsonPath, bytes.NewReader(b)); err != nil {
			return fmt.Errorf("write %s failed: %w", jsonPath, err)
		}
	}

	log.Printf("[generator] %d fires written to %s", len(v.Map.Markers), htmlPath)
	return nil
}

func toJSON(v interface{}) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}
