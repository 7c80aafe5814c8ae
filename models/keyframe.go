// Package models provides core data structures for the chapterizer system.
package models

import "fmt"

// KeyFrame represents one keyframe discovered in a video stream.
//
// KeyFrames are produced by the collector from the frame descriptors the
// analysis process emits, in presentation order. A KeyFrame is never
// mutated after creation.
//
// TimeSeconds is the presentation timestamp as a whole-second count. The
// boundary selection downstream compares whole seconds, so the fractional
// part of the descriptor's timestamp field is dropped at parse time on
// purpose, not by accident.
type KeyFrame struct {
	TimeSeconds int64 `json:"time_seconds"`
	ByteOffset  int64 `json:"byte_offset"` // informational only, not used downstream
}

// NewKeyFrame creates a KeyFrame with validation.
//
// Returns an error if either field is negative.
func NewKeyFrame(timeSeconds, byteOffset int64) (KeyFrame, error) {
	k := KeyFrame{
		TimeSeconds: timeSeconds,
		ByteOffset:  byteOffset,
	}
	if err := k.Validate(); err != nil {
		return KeyFrame{}, fmt.Errorf("invalid keyframe: %w", err)
	}
	return k, nil
}

// Validate checks if the KeyFrame has valid data.
//
// Returns an error if:
//   - TimeSeconds is negative
//   - ByteOffset is negative
func (k KeyFrame) Validate() error {
	if k.TimeSeconds < 0 {
		return fmt.Errorf("time_seconds cannot be negative")
	}
	if k.ByteOffset < 0 {
		return fmt.Errorf("byte_offset cannot be negative")
	}
	return nil
}
