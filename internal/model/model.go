// Package model holds the telemetry records exchanged with the wildfire backend.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Risk is the severity label reported for a fire.
type Risk string

const (
	RiskLow      Risk = "Low"
	RiskModerate Risk = "Moderate"
	RiskHigh     Risk = "High"
	RiskUnknown  Risk = "Unknown"
)

// UnmarshalJSON keeps string labels as sent. Any other JSON value becomes
// its raw text so one malformed record cannot fail the whole list.
func (r *Risk) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*r = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("risk: %w", err)
		}
		*r = Risk(s)
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return fmt.Errorf("risk: %w", err)
	}
	*r = Risk(buf.String())
	return nil
}

// FireID accepts both string and numeric identifiers from the backend.
type FireID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *FireID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = FireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("fire id: %w", err)
	}
	*id = FireID(n.String())
	return nil
}

// FireRecord is one reported wildfire.
type FireRecord struct {
	ID   FireID  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Risk Risk    `json:"risk"`
}

// SummaryStats are the aggregate metrics computed by the backend.
// Timestamp is when the backend computed them; zero means unknown.
type SummaryStats struct {
	AverageTemperature float64   `json:"averageTemperature"`
	HighRiskCount      int       `json:"highRiskCount"`
	Timestamp          time.Time `json:"timestamp"`
}

// UnmarshalJSON implements json.Unmarshaler with a lenient timestamp.
func (s *SummaryStats) UnmarshalJSON(b []byte) error {
	var raw struct {
		AverageTemperature float64 `json:"averageTemperature"`
		HighRiskCount      int     `json:"highRiskCount"`
		Timestamp          string  `json:"timestamp"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.HighRiskCount < 0 {
		raw.HighRiskCount = 0
	}
	s.AverageTemperature = raw.AverageTemperature
	s.HighRiskCount = raw.HighRiskCount
	s.Timestamp = ParseTimestamp(raw.Timestamp)
	return nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp parses an ISO-8601 timestamp. Values without a zone are
// taken as UTC. Unparseable input yields the zero time.
func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Temperature is a single reading; Known is false when the value is unavailable.
type Temperature struct {
	Value    float64 `json:"value"`
	Known    bool    `json:"known"`
	SensorID string  `json:"sensorId,omitempty"`
	Location string  `json:"location,omitempty"`
}

// UnknownTemperature is returned whenever no reading is available.
func UnknownTemperature() Temperature {
	return Temperature{}
}

// String formats the reading the way the panel displays it.
func (t Temperature) String() string {
	if !t.Known {
		return "--°C"
	}
	return FormatCelsius(t.Value)
}

// FormatCelsius renders the value exactly as reported, e.g. 21.37°C.
func FormatCelsius(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "°C"
}

// PixelPoint is a position on the map canvas.
type PixelPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
