package models

import (
	"fmt"
	"strings"
)

// Chapter represents one chapter of the generated chapter table.
//
// Chapters are contiguous: a chapter's EndSeconds equals the next chapter's
// StartSeconds, and the first chapter always starts at zero regardless of
// where the first keyframe sits. The last chapter's true end (the file
// duration) is left to the muxer's own defaulting and never stored here.
//
// Use NewChapter to create a validated Chapter instance.
type Chapter struct {
	Index        int    `json:"index"` // 1-based ordinal
	StartSeconds int64  `json:"start_seconds"`
	EndSeconds   int64  `json:"end_seconds"`
	Title        string `json:"title"`
}

// NewChapter creates a new Chapter with validation.
//
// Returns an error if the chapter parameters are invalid:
//   - Index must be at least 1
//   - StartSeconds must be non-negative and less than EndSeconds
//   - Title cannot be empty or whitespace-only
func NewChapter(index int, startSeconds, endSeconds int64, title string) (Chapter, error) {
	c := Chapter{
		Index:        index,
		StartSeconds: startSeconds,
		EndSeconds:   endSeconds,
		Title:        title,
	}
	if err := c.Validate(); err != nil {
		return Chapter{}, fmt.Errorf("invalid chapter: %w", err)
	}
	return c, nil
}

// Validate checks if the Chapter has valid data.
//
// Returns an error if:
//   - Index is less than 1
//   - StartSeconds is negative
//   - StartSeconds >= EndSeconds (invalid time range)
//   - Title is empty or whitespace-only
func (c Chapter) Validate() error {
	if c.Index < 1 {
		return fmt.Errorf("index must be at least 1")
	}
	if c.StartSeconds < 0 {
		return fmt.Errorf("start_seconds cannot be negative")
	}
	if c.StartSeconds >= c.EndSeconds {
		return fmt.Errorf("start_seconds must be less than end_seconds")
	}
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	return nil
}
