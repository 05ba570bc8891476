package models

import "testing"

func TestProgressIndex(t *testing.T) {
	tests := []struct {
		status OrderStatus
		want   int
	}{
		{StatusOrderPlaced, 0},
		{StatusProcessing, 1},
		{StatusShipped, 2},
		{StatusDelivered, 3},
		{StatusCancelled, -1},
		{OrderStatus("Refunded"), -1},
	}
	for _, tt := range tests {
		if got := tt.status.ProgressIndex(); got != tt.want {
			t.Fatalf("ProgressIndex(%q) = %d, want %d", tt.status, got, tt.want)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	if !StatusDelivered.Terminal() || !StatusCancelled.Terminal() {
		t.Fatal("Delivered and Cancelled are terminal")
	}
	if StatusOrderPlaced.Terminal() || StatusProcessing.Terminal() || StatusShipped.Terminal() {
		t.Fatal("in-flight statuses are not terminal")
	}
}

func TestKnownStatuses(t *testing.T) {
	if !StatusCancelled.Known() {
		t.Fatal("Cancelled is a known status")
	}
	if OrderStatus("Archived").Known() {
		t.Fatal("Archived is not a known status")
	}
}
