package models

import (
	"strings"
	"testing"
)

func TestKeyFrameValidate(t *testing.T) {
	tests := []struct {
		name          string
		frame         KeyFrame
		WantError     bool
		ErrorContains string
	}{
		{name: "Valid keyframe", frame: KeyFrame{TimeSeconds: 200, ByteOffset: 123456}, WantError: false},
		{name: "Zero timestamp", frame: KeyFrame{TimeSeconds: 0, ByteOffset: 0}, WantError: false},
		{name: "Negative timestamp", frame: KeyFrame{TimeSeconds: -1, ByteOffset: 0}, WantError: true, ErrorContains: "time_seconds cannot be negative"},
		{name: "Negative byte offset", frame: KeyFrame{TimeSeconds: 10, ByteOffset: -5}, WantError: true, ErrorContains: "byte_offset cannot be negative"},
		{name: "Large values", frame: KeyFrame{TimeSeconds: 86400, ByteOffset: 1 << 40}, WantError: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.frame.Validate()
			if tt.WantError {
				if err == nil {
					t.Errorf("Expected error but got nil")
				} else if !strings.Contains(err.Error(), tt.ErrorContains) {
					t.Errorf("Expected error to contain '%s', but got '%s'", tt.ErrorContains, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("Expected no error but got: %v", err)
				}
			}
		})
	}
}

func TestNewKeyFrame(t *testing.T) {
	frame, err := NewKeyFrame(200, 123456)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if frame.TimeSeconds != 200 {
		t.Errorf("Expected TimeSeconds 200, got %d", frame.TimeSeconds)
	}
	if frame.ByteOffset != 123456 {
		t.Errorf("Expected ByteOffset 123456, got %d", frame.ByteOffset)
	}

	if _, err := NewKeyFrame(-1, 0); err == nil {
		t.Error("Expected error for negative timestamp")
	}
}
