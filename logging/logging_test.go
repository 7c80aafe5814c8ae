package logging

import "testing"

func TestNew(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		logger, err := New(level, false)
		if err != nil {
			t.Errorf("Expected no error for level %q, got: %v", level, err)
		}
		if logger == nil {
			t.Errorf("Expected logger for level %q", level)
		}
	}
}

func TestNew_Verbose(t *testing.T) {
	logger, err := New("debug", true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if logger == nil {
		t.Fatal("Expected logger")
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("noisy", false); err == nil {
		t.Error("Expected error for invalid level")
	}
}
