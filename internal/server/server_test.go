package server_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Zachdehooge/wildfire-dashboard/internal/dashboard"
	"github.com/Zachdehooge/wildfire-dashboard/internal/model"
	srvpkg "github.com/Zachdehooge/wildfire-dashboard/internal/server"
)

type stubSource struct {
	mu    sync.Mutex
	fires []model.FireRecord
}

func (s *stubSource) FetchFires(context.Context) []model.FireRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fires
}

func (s *stubSource) FetchSummary(context.Context) model.SummaryStats {
	return model.SummaryStats{AverageTemperature: 25, HighRiskCount: 1, Timestamp: time.Now()}
}

func (s *stubSource) FetchTemperature(context.Context) model.Temperature {
	return model.Temperature{Value: 26, Known: true}
}

func setup(t *testing.T) (*dashboard.Dashboard, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	src := &stubSource{fires: []model.FireRecord{{ID: "1", Name: "Kananaskis", Lat: 51, Lng: -115, Risk: model.RiskHigh}}}
	d := dashboard.New(src, dashboard.WithInterval(time.Hour))
	srv := srvpkg.New(d)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(func() {
		ts.Close()
		srv.Close()
		d.Close()
	})
	return d, ts
}

func TestHealth(t *testing.T) {
	_, ts := setup(t)
	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
}

func TestGetViewAfterPoll(t *testing.T) {
	d, ts := setup(t)
	if err := d.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(ts.URL + "/api/view")
		if err != nil {
			t.Fatal(err)
		}
		var v dashboard.View
		err = json.NewDecoder(resp.Body).Decode(&v)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if v.Banner.Visible && len(v.Map.Markers) == 1 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("view never reflected the polled fire list")
}

func TestIndexServesPage(t *testing.T) {
	_, ts := setup(t)
	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "Live Data") || !strings.Contains(string(body), "WebSocket") {
		t.Fatal("page missing panel or live hook")
	}
}

func TestWebSocketPushesViews(t *testing.T) {
	d, ts := setup(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// First message is the current (empty) view.
	var v dashboard.View
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&v); err != nil {
		t.Fatalf("initial read: %v", err)
	}

	if err := d.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	for {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		if err := conn.ReadJSON(&v); err != nil {
			t.Fatalf("no pushed view with the high-risk fire: %v", err)
		}
		if v.Banner.Visible {
			return
		}
	}
}
