package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ridelink/catalog"
	busRepo "ridelink/database/repository/bus"
	"ridelink/models"
	"ridelink/services/recommend"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// recommendationCacheTTL bounds how stale a cached recommendation can be;
// seat availability shifts as bookings land.
const recommendationCacheTTL = 2 * time.Minute

// HybridHandler serves hybrid route recommendations, cached per route pair.
type HybridHandler struct {
	repo   busRepo.BusRepository
	cache  *redis.Client
	logger *zap.Logger
}

// NewHybridHandler creates a HybridHandler. The cache client may be nil.
func NewHybridHandler(repo busRepo.BusRepository, cache *redis.Client, logger *zap.Logger) *HybridHandler {
	return &HybridHandler{repo: repo, cache: cache, logger: logger}
}

// Recommend handles POST /api/hybrid/recommendation.
func (h *HybridHandler) Recommend(c *gin.Context) {
	var req struct {
		Source      string `json:"source"`
		Destination string `json:"destination"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Source == "" || req.Destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Source and destination are required"})
		return
	}

	cacheKey := fmt.Sprintf("hybridrec:%s:%s",
		strings.ToLower(req.Source), strings.ToLower(req.Destination))
	if cached, ok := h.fromCache(c.Request.Context(), cacheKey); ok {
		c.Data(http.StatusOK, "application/json", cached)
		return
	}

	route, ok := catalog.LookupRoute(req.Source, req.Destination)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No route found between source and destination"})
		return
	}

	// Exact-match buses for the pair; any seat-available bus as fallback set.
	buses := h.routeBuses(req.Source, req.Destination)

	rec, err := recommend.Recommend(buses, catalog.AvailableTaxis(), route.DistanceKm)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error generating hybrid recommendation", "details": err.Error()})
		return
	}

	body := gin.H{
		"success":     true,
		"data":        rec,
		"source":      req.Source,
		"destination": req.Destination,
	}
	h.toCache(c.Request.Context(), cacheKey, body)
	c.JSON(http.StatusOK, body)
}

// routeBuses resolves the candidate buses for the pair with availability
// derived from booked-seat counts. With the store unreachable the static
// catalog totals are the only signal left.
func (h *HybridHandler) routeBuses(source, destination string) []models.Bus {
	buses, err := h.repo.ListByRoute(source, destination)
	if err != nil || len(buses) == 0 {
		buses = catalog.BusesForRoute(source, destination)
		if len(buses) == 0 {
			buses = catalog.Buses()
		}
		if err != nil {
			for i := range buses {
				buses[i].SeatsAvailable = buses[i].TotalSeats
			}
			return buses
		}
	}

	for i := range buses {
		booked, cerr := h.repo.CountBookedSeats(buses[i].ID)
		if cerr != nil {
			buses[i].SeatsAvailable = buses[i].TotalSeats
			continue
		}
		available := buses[i].TotalSeats - booked
		if available < 0 {
			available = 0
		}
		buses[i].SeatsAvailable = available
	}
	return buses
}

func (h *HybridHandler) fromCache(ctx context.Context, key string) ([]byte, bool) {
	if h.cache == nil {
		return nil, false
	}
	data, err := h.cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (h *HybridHandler) toCache(ctx context.Context, key string, body gin.H) {
	if h.cache == nil {
		return
	}
	data, err := json.Marshal(body)
	if err != nil {
		return
	}
	if err := h.cache.Set(ctx, key, data, recommendationCacheTTL).Err(); err != nil {
		h.logger.Debug("failed to cache recommendation", zap.String("key", key), zap.Error(err))
	}
}
