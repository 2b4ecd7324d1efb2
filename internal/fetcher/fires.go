// Package fetcher reads wildfire telemetry from the dashboard backend.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"

	"github.com/Zachdehooge/wildfire-dashboard/internal/model"
)

// DefaultBaseURL is the backend address used when none is configured.
const DefaultBaseURL = "http://localhost:5001/api"

const userAgent = "wildfire-dashboard/1.0 (github.com/Zachdehooge/wildfire-dashboard)"

// Client reads fire telemetry from the backend. Every read absorbs its own
// failures and returns a displayable default, so callers never see an error.
// A Client holds no mutable state and is safe for concurrent use.
type Client struct {
	baseURL string
	http    *resty.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// New creates a Client for baseURL (e.g. http://localhost:5001/api).
func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	// No retries: a failed read waits for the next poll.
	h := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15*time.Second).
		SetRetryCount(0).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	c := &Client{baseURL: baseURL, http: h}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend address.
func (c *Client) BaseURL() string { return c.baseURL }

// FetchFires retrieves the active fire list. On failure it logs and returns
// an empty list.
func (c *Client) FetchFires(ctx context.Context) []model.FireRecord {
	var fires []model.FireRecord
	if err := c.get(ctx, "/fires", &fires); err != nil {
		log.Printf("[fetcher] error fetching fires: %v", err)
		return []model.FireRecord{}
	}
	if fires == nil {
		fires = []model.FireRecord{}
	}
	return fires
}

// FetchSummary retrieves the summary statistics. On failure it returns zeroed
// stats stamped with the current time.
func (c *Client) FetchSummary(ctx context.Context) model.SummaryStats {
	var summary model.SummaryStats
	if err := c.get(ctx, "/summary", &summary); err != nil {
		log.Printf("[fetcher] error fetching summary: %v", err)
		return model.SummaryStats{
			AverageTemperature: 0,
			HighRiskCount:      0,
			Timestamp:          time.Now(),
		}
	}
	return summary
}

// FetchTemperature retrieves the current reading. On failure, or when the
// backend has no reading yet, it returns an unknown temperature.
func (c *Client) FetchTemperature(ctx context.Context) model.Temperature {
	var body struct {
		Temperature *float64 `json:"temperature"`
		SensorID    *string  `json:"sensor_id"`
		Location    *string  `json:"location"`
	}
	if err := c.get(ctx, "/temperature", &body); err != nil {
		log.Printf("[fetcher] error fetching temperature: %v", err)
		return model.UnknownTemperature()
	}

	t := model.UnknownTemperature()
	if body.Temperature != nil {
		t.Value = *body.Temperature
		t.Known = true
	}
	if body.SensorID != nil {
		t.SensorID = *body.SensorID
	}
	if body.Location != nil {
		t.Location = *body.Location
	}
	return t
}

// Snapshot is one reading of every data source.
type Snapshot struct {
	Fires       []model.FireRecord `json:"fires"`
	Summary     model.SummaryStats `json:"summary"`
	Temperature model.Temperature  `json:"temperature"`
}

// FetchAll reads all three sources concurrently.
func (c *Client) FetchAll(ctx context.Context) Snapshot {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap.Fires = c.FetchFires(gctx)
		return nil
	})
	g.Go(func() error {
		snap.Summary = c.FetchSummary(gctx)
		return nil
	})
	g.Go(func() error {
		snap.Temperature = c.FetchTemperature(gctx)
		return nil
	})
	_ = g.Wait()
	return snap
}

// get performs one GET and decodes a successful JSON body into out.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return fmt.Errorf("request %s failed: %w", path, err)
	}

	if !resp.IsSuccess() {
		body := resp.String()
		if len(body) > 200 {
			body = body[:200]
		}
		return fmt.Errorf("API returned non-2xx status %d for %s: %s", resp.StatusCode(), path, body)
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to parse %s JSON: %w", path, err)
	}
	return nil
}
