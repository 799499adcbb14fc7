package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nola/internal/client"
	"nola/pkg/models"
)

func jsonHandler(t *testing.T, v interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			t.Errorf("encode: %v", err)
		}
	}
}

func waitFor(t *testing.T, o *Orchestrator, cond func(Snapshot) bool) Snapshot {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		snap := o.Snapshot()
		if cond(snap) {
			return snap
		}
		select {
		case <-o.Updates():
		case <-deadline:
			t.Fatalf("timed out waiting for condition, last snapshot: loading=%v err=%v", snap.Loading, snap.Err)
		}
	}
}

// happyServers serves all four resources with fixed payloads
func happyServers(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/metrics/general", jsonHandler(t, models.MetricSnapshot{TotalRevenue: 15000, TotalSales: 300, AvgTicket: 50}))
	mux.HandleFunc("/api/metrics/revenue_period", jsonHandler(t, []models.RevenuePoint{{Name: "MON", Revenue: 1200}, {Name: "SUN", Revenue: 800}}))
	mux.HandleFunc("/api/products/top", jsonHandler(t, []models.ProductEntry{{Name: "X-Burger", Sales: 120, Revenue: 3400}}))
	mux.HandleFunc("/api/sales/hourly", jsonHandler(t, []models.HourlyEntry{{Hour: 12, Orders: 10}, {Hour: 19, Orders: 45}}))
	return httptest.NewServer(mux)
}

func TestLoadResolvesAllResources(t *testing.T) {
	srv := happyServers(t)
	defer srv.Close()

	orch := NewOrchestrator(client.New(client.Config{BaseURL: srv.URL}), models.Period7Days)
	orch.Load(context.Background())

	snap := waitFor(t, orch, func(s Snapshot) bool { return !s.Loading })

	if snap.Err != nil {
		t.Fatalf("unexpected aggregate error: %v", snap.Err)
	}
	if snap.General.Data == nil || snap.General.Data.TotalRevenue != 15000 {
		t.Errorf("unexpected general data: %+v", snap.General.Data)
	}
	if len(snap.Products.Data) != 1 {
		t.Errorf("unexpected products data: %+v", snap.Products.Data)
	}
	if snap.PeakHour != "19:00" {
		t.Errorf("peak hour = %q, expected %q", snap.PeakHour, "19:00")
	}
	if len(snap.OrderedRevenue) != 2 || snap.OrderedRevenue[0].Name != "Seg" || snap.OrderedRevenue[1].Name != "Dom" {
		t.Errorf("unexpected ordered revenue: %+v", snap.OrderedRevenue)
	}
}

func TestSingleFailureKeepsPartialData(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/metrics/general", jsonHandler(t, models.MetricSnapshot{TotalRevenue: 15000, TotalSales: 300, AvgTicket: 50}))
	mux.HandleFunc("/api/metrics/revenue_period", jsonHandler(t, []models.RevenuePoint{}))
	mux.HandleFunc("/api/products/top", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/api/sales/hourly", jsonHandler(t, []models.HourlyEntry{{Hour: 12, Orders: 10}}))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	orch := NewOrchestrator(client.New(client.Config{BaseURL: srv.URL}), models.Period7Days)
	orch.Load(context.Background())

	snap := waitFor(t, orch, func(s Snapshot) bool { return !s.Loading })

	if snap.Err == nil {
		t.Fatal("expected aggregate error")
	}
	var fetchErr *client.FetchError
	if !errors.As(snap.Err, &fetchErr) || fetchErr.Resource != client.ResourceProducts {
		t.Errorf("aggregate error should name the failing resource, got %v", snap.Err)
	}

	// The other resources' data survives alongside the error
	if snap.General.Data == nil {
		t.Error("general data should still be present")
	}
	if snap.Hourly.Data == nil || snap.PeakHour != "12:00" {
		t.Errorf("hourly data should still be present, peak = %q", snap.PeakHour)
	}
	if snap.Products.Data != nil {
		t.Errorf("failed resource must not carry data, got %+v", snap.Products.Data)
	}
}

func TestErrorPriorityOrder(t *testing.T) {
	// Everything fails; the aggregate error must be general's
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	orch := NewOrchestrator(client.New(client.Config{BaseURL: srv.URL}), models.Period7Days)
	orch.Load(context.Background())

	snap := waitFor(t, orch, func(s Snapshot) bool { return !s.Loading })

	var fetchErr *client.FetchError
	if !errors.As(snap.Err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %v", snap.Err)
	}
	if fetchErr.Resource != client.ResourceGeneral {
		t.Errorf("aggregate error resource = %q, expected %q", fetchErr.Resource, client.ResourceGeneral)
	}
}

func TestLateResponseForOldPeriodIsDropped(t *testing.T) {
	release6m := make(chan struct{})
	reached6m := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("/api/metrics/general", jsonHandler(t, models.MetricSnapshot{}))
	mux.HandleFunc("/api/products/top", jsonHandler(t, []models.ProductEntry{}))
	mux.HandleFunc("/api/sales/hourly", jsonHandler(t, []models.HourlyEntry{}))
	mux.HandleFunc("/api/metrics/revenue_period", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("period") {
		case "6m":
			close(reached6m)
			<-release6m // the 6m response arrives after the 7d one
			json.NewEncoder(w).Encode([]models.RevenuePoint{{Name: "MON", Revenue: 600}})
		default:
			json.NewEncoder(w).Encode([]models.RevenuePoint{{Name: "MON", Revenue: 7}})
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	defer close(release6m)

	orch := NewOrchestrator(client.New(client.Config{BaseURL: srv.URL}), models.Period6Months)
	ctx := context.Background()
	orch.Load(ctx)

	// Make sure the 6m request is actually in flight before switching
	select {
	case <-reached6m:
	case <-time.After(5 * time.Second):
		t.Fatal("6m request never reached the server")
	}

	orch.SetPeriod(ctx, models.Period7Days)

	snap := waitFor(t, orch, func(s Snapshot) bool {
		return !s.Revenue.Loading && len(s.Revenue.Data) > 0
	})
	if snap.Revenue.Data[0].Revenue != 7 {
		t.Fatalf("expected 7d data, got %+v", snap.Revenue.Data)
	}

	// Let the stale 6m response land, then confirm it did not overwrite
	release6m <- struct{}{}
	time.Sleep(150 * time.Millisecond)

	snap = orch.Snapshot()
	if snap.Revenue.Data[0].Revenue != 7 {
		t.Errorf("stale 6m response overwrote newer state: %+v", snap.Revenue.Data)
	}
	if snap.Period != models.Period7Days {
		t.Errorf("period = %q, expected %q", snap.Period, models.Period7Days)
	}
}

func TestReloadReplacesState(t *testing.T) {
	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/api/metrics/general", func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(models.MetricSnapshot{TotalRevenue: 42})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := client.New(client.Config{
		BaseURL:   "http://127.0.0.1:1",
		Endpoints: client.Endpoints{General: srv.URL},
	})
	orch := NewOrchestrator(c, models.Period7Days)
	ctx := context.Background()

	orch.Reload(ctx, client.ResourceGeneral)
	snap := waitFor(t, orch, func(s Snapshot) bool { return !s.General.Loading })
	if snap.General.Err == nil {
		t.Fatal("first attempt should have failed")
	}

	orch.Reload(ctx, client.ResourceGeneral)
	snap = waitFor(t, orch, func(s Snapshot) bool { return !s.General.Loading && s.General.Err == nil })
	if snap.General.Data == nil || snap.General.Data.TotalRevenue != 42 {
		t.Errorf("reload did not replace the error state: %+v", snap.General)
	}
}

func TestLoadingStateInvariant(t *testing.T) {
	block := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		<-block
		json.NewEncoder(w).Encode(models.MetricSnapshot{})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	defer close(block)

	orch := NewOrchestrator(client.New(client.Config{BaseURL: srv.URL}), models.Period7Days)
	orch.Load(context.Background())

	snap := orch.Snapshot()
	if !snap.Loading {
		t.Error("aggregate loading should be true while fetches are in flight")
	}
	if snap.General.Data != nil || snap.General.Err != nil {
		t.Errorf("loading resource must carry neither data nor error: %+v", snap.General)
	}
	if snap.PeakHour != PeakHourEmpty {
		t.Errorf("peak hour without data = %q, expected %q", snap.PeakHour, PeakHourEmpty)
	}
	if len(snap.OrderedRevenue) != 0 {
		t.Errorf("ordered revenue without data should be empty, got %+v", snap.OrderedRevenue)
	}
}
