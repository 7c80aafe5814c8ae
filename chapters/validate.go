package chapters

import (
	"fmt"

	"chapterizer/models"
)

// ValidateChapters validates a chapter table for completeness and correctness.
//
// An empty table is valid (it renders as a header-only document). For a
// non-empty table it checks that:
//   - each chapter individually validates
//   - chapter indices are sequential starting at 1
//   - the first chapter starts at zero
//   - chapters are contiguous (each end equals the next start)
func ValidateChapters(chs []models.Chapter) error {
	if len(chs) == 0 {
		return nil
	}

	for i, ch := range chs {
		if err := ch.Validate(); err != nil {
			return fmt.Errorf("chapter %d is invalid: %w", i+1, err)
		}
	}

	for i, ch := range chs {
		expected := i + 1
		if ch.Index != expected {
			return fmt.Errorf("chapter %d has incorrect index: expected %d, got %d",
				i+1, expected, ch.Index)
		}
	}

	if chs[0].StartSeconds != 0 {
		return fmt.Errorf("first chapter must start at 0, got %d", chs[0].StartSeconds)
	}

	for i := 0; i < len(chs)-1; i++ {
		if chs[i].EndSeconds != chs[i+1].StartSeconds {
			return fmt.Errorf("chapters %d and %d are not contiguous: chapter %d ends at %d, chapter %d starts at %d",
				i+1, i+2, i+1, chs[i].EndSeconds, i+2, chs[i+1].StartSeconds)
		}
	}

	return nil
}
