package booking

import "testing"

func TestAmountInCents(t *testing.T) {
	cases := []struct {
		total float64
		want  int64
	}{
		{19.99, 1999},
		{0.1 + 0.2, 30},
		{100, 10000},
		{275.5, 27550},
		{0, 0},
	}
	for _, tc := range cases {
		if got := amountInCents(tc.total); got != tc.want {
			t.Fatalf("amountInCents(%v) = %d, want %d", tc.total, got, tc.want)
		}
	}
}
