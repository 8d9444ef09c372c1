package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", ErrNotFound},
		{"missing order id", ErrMissingOrderID},
		{"unknown status", ErrUnknownStatus},
		{"invalid transition", ErrInvalidTransition},
		{"invalid order", ErrInvalidOrder},
		{"order claimed", ErrOrderClaimed},
		{"no offer", ErrNoOffer},
		{"driver offline", ErrDriverOffline},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("tracking: %w", tc.err)
			if !stdErrors.Is(wrapped, tc.err) {
				t.Fatalf("expected wrapped error to match %v", tc.err)
			}
		})
	}
}
