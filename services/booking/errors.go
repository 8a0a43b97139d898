package booking

import (
	"fmt"
	"strings"
)

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports an unknown entity by type.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// ConflictError reports seats that are already booked, named individually so
// the client can mark only those seats unavailable.
type ConflictError struct {
	Seats []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("seat(s) already booked: %s", strings.Join(e.Seats, ", "))
}

// FareMismatchError rejects a client-asserted total that deviates from the
// server-derived one.
type FareMismatchError struct {
	Claimed  float64
	Expected float64
}

func (e *FareMismatchError) Error() string {
	return fmt.Sprintf("claimed total fare %.2f does not match expected %.2f", e.Claimed, e.Expected)
}
