package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ridelink/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// fakeHybridBusRepo serves a fixed bus list with per-bus booked-seat counts.
type fakeHybridBusRepo struct {
	buses  []models.Bus
	booked map[string]int
	down   bool
}

func (r *fakeHybridBusRepo) Upsert(bus *models.Bus) error { return nil }

func (r *fakeHybridBusRepo) GetByID(id string) (*models.Bus, error) {
	for _, b := range r.buses {
		if b.ID == id {
			b := b
			return &b, nil
		}
	}
	return nil, nil
}

func (r *fakeHybridBusRepo) GetByRouteNo(routeNo string) (*models.Bus, error) { return nil, nil }

func (r *fakeHybridBusRepo) ListByRoute(source, destination string) ([]models.Bus, error) {
	if r.down {
		return nil, errors.New("store unreachable")
	}
	out := make([]models.Bus, len(r.buses))
	copy(out, r.buses)
	return out, nil
}

func (r *fakeHybridBusRepo) ListByOperator(operatorEmail string) ([]models.Bus, error) {
	return nil, nil
}

func (r *fakeHybridBusRepo) CountBookedSeats(busID string) (int, error) {
	if r.down {
		return 0, errors.New("store unreachable")
	}
	return r.booked[busID], nil
}

func (r *fakeHybridBusRepo) ListBookedSeats(busID string) ([]models.Seat, error) { return nil, nil }

func (r *fakeHybridBusRepo) ReserveSeats(ctx context.Context, bus *models.Bus, seats []string, userID string, booking *models.Booking) ([]string, error) {
	return nil, nil
}

type recommendationResponse struct {
	Success bool                  `json:"success"`
	Data    models.Recommendation `json:"data"`
}

func postRecommendation(t *testing.T, h *HybridHandler, source, destination string) recommendationResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/api/hybrid/recommendation", h.Recommend)

	body, _ := json.Marshal(gin.H{"source": source, "destination": destination})
	req := httptest.NewRequest(http.MethodPost, "/api/hybrid/recommendation", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp recommendationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestRecommendSkipsFullyBookedBus(t *testing.T) {
	repo := &fakeHybridBusRepo{
		buses: []models.Bus{
			{ID: "bus-b15", RouteNo: "B15", Source: "Downtown", Destination: "Airport", FarePerSeat: 20, ETAMinutes: 28, TotalSeats: 40},
			{ID: "bus-b12", RouteNo: "B12", Source: "Downtown", Destination: "Airport", FarePerSeat: 25, ETAMinutes: 35, TotalSeats: 40},
		},
		// The cheaper bus has no seats left.
		booked: map[string]int{"bus-b15": 40, "bus-b12": 10},
	}
	h := NewHybridHandler(repo, nil, zap.NewNop())

	resp := postRecommendation(t, h, "Downtown", "Airport")
	if !resp.Data.BusOnly.Available {
		t.Fatal("B12 still has seats; busOnly should be available")
	}
	if resp.Data.BusOnly.Bus == nil || resp.Data.BusOnly.Bus.RouteNo != "B12" {
		t.Fatalf("busOnly picked %+v, want B12 (B15 is sold out)", resp.Data.BusOnly.Bus)
	}
}

func TestRecommendAllBusesSoldOut(t *testing.T) {
	repo := &fakeHybridBusRepo{
		buses: []models.Bus{
			{ID: "bus-b15", RouteNo: "B15", Source: "Downtown", Destination: "Airport", FarePerSeat: 20, ETAMinutes: 28, TotalSeats: 40},
		},
		booked: map[string]int{"bus-b15": 40},
	}
	h := NewHybridHandler(repo, nil, zap.NewNop())

	resp := postRecommendation(t, h, "Downtown", "Airport")
	if resp.Data.BusOnly.Available {
		t.Fatal("a fully booked bus must not be offered")
	}
	if resp.Data.Hybrid.Available {
		t.Fatal("hybrid needs a bus leg")
	}
	if resp.Data.RecommendedOption != models.StrategyTaxi {
		t.Fatalf("recommendedOption = %q, want Taxi when no bus has seats", resp.Data.RecommendedOption)
	}
}

func TestRecommendStoreDownFallsBackToCatalog(t *testing.T) {
	repo := &fakeHybridBusRepo{down: true}
	h := NewHybridHandler(repo, nil, zap.NewNop())

	resp := postRecommendation(t, h, "Downtown", "Airport")
	if !resp.Data.BusOnly.Available {
		t.Fatal("catalog fallback should still offer a bus")
	}
	if resp.Data.BusOnly.Fare != 20 {
		t.Fatalf("busOnly fare = %v, want the catalog's cheapest (20)", resp.Data.BusOnly.Fare)
	}
}
