package busRepo

import (
	"reflect"
	"testing"

	"ridelink/models"
)

func TestBookedConflicts(t *testing.T) {
	booked := []models.Seat{
		{BusID: "bus-b15", SeatNumber: "A2", IsBooked: true},
		{BusID: "bus-b15", SeatNumber: "B1", IsBooked: true},
		{BusID: "bus-b15", SeatNumber: "C3", IsBooked: false},
	}

	cases := []struct {
		name      string
		requested []string
		want      []string
	}{
		{"one seat taken", []string{"A1", "A2"}, []string{"A2"}},
		{"request order preserved", []string{"B1", "A2"}, []string{"B1", "A2"}},
		{"no overlap", []string{"D1", "D2"}, nil},
		{"unbooked document ignored", []string{"C3"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := bookedConflicts(booked, tc.requested)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("bookedConflicts(%v) = %v, want %v", tc.requested, got, tc.want)
			}
		})
	}
}
