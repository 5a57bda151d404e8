package todo

import "testing"

func TestNormalizeKnownValues(t *testing.T) {
	tests := []struct {
		in   Status
		want Status
	}{
		{StatusNotStarted, StatusNotStarted},
		{StatusInProgress, StatusInProgress},
		{StatusCompleted, StatusCompleted},
	}
	for _, tt := range tests {
		if got := tt.in.Normalize(); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeUnrecognized(t *testing.T) {
	for _, in := range []Status{"", "done", "blocked", "IN PROGRESS", "pending"} {
		if got := in.Normalize(); got != StatusNotStarted {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, StatusNotStarted)
		}
	}
}

func TestNormalizeTrimsAndLowercases(t *testing.T) {
	if got := Status("  Completed ").Normalize(); got != StatusCompleted {
		t.Errorf("Normalize(%q) = %q, want %q", "  Completed ", got, StatusCompleted)
	}
	if got := Status("IN-PROGRESS").Normalize(); got != StatusInProgress {
		t.Errorf("Normalize(%q) = %q, want %q", "IN-PROGRESS", got, StatusInProgress)
	}
}
