package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ridelink/services/booking"

	"github.com/gin-gonic/gin"
)

func serviceErrorResponse(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondServiceError(c, err)

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return w.Code, body
}

func TestRespondServiceErrorMapping(t *testing.T) {
	status, body := serviceErrorResponse(t, &booking.ConflictError{Seats: []string{"A2"}})
	if status != http.StatusConflict {
		t.Fatalf("conflict status = %d", status)
	}
	seats, ok := body["unavailableSeats"].([]interface{})
	if !ok || len(seats) != 1 || seats[0] != "A2" {
		t.Fatalf("unavailableSeats = %v", body["unavailableSeats"])
	}

	status, _ = serviceErrorResponse(t, &booking.NotFoundError{Entity: "booking", ID: "bk-1"})
	if status != http.StatusNotFound {
		t.Fatalf("not-found status = %d", status)
	}

	status, _ = serviceErrorResponse(t, &booking.ValidationError{Field: "seats", Message: "required"})
	if status != http.StatusBadRequest {
		t.Fatalf("validation status = %d", status)
	}

	status, body = serviceErrorResponse(t, &booking.FareMismatchError{Claimed: 250, Expected: 300})
	if status != http.StatusBadRequest {
		t.Fatalf("mismatch status = %d", status)
	}
	if body["expectedTotal"] != float64(300) {
		t.Fatalf("expectedTotal = %v", body["expectedTotal"])
	}
}

func TestRespondServiceErrorFallback(t *testing.T) {
	status, body := serviceErrorResponse(t, errors.New("mongo blew up"))
	if status != http.StatusInternalServerError {
		t.Fatalf("fallback status = %d", status)
	}
	if body["success"] != false || body["message"] != "internal error" {
		t.Fatalf("fallback body = %v", body)
	}
	if body["details"] != "mongo blew up" {
		t.Fatalf("details = %v", body["details"])
	}
}
