// Package chapters turns a keyframe sequence into a chapter table: it
// selects minimum-spaced chapter boundaries and renders them as an
// FFMETADATA document for the muxer.
package chapters

import "chapterizer/models"

// DefaultMinGap is the minimum spacing between consecutive chapter
// boundaries, in seconds.
const DefaultMinGap = 180

// SelectBoundaries reduces a keyframe sequence to the subsequence that
// becomes the chapter boundaries.
//
// The first keyframe only seeds the gap baseline and is never itself
// selected; chapters implicitly start at time zero, not at the first
// keyframe. A keyframe is selected when its timestamp exceeds the last
// accepted timestamp by more than minGap seconds, and then becomes the new
// baseline.
//
// An empty or single-element sequence yields no boundaries. The input is
// expected in presentation order (non-decreasing timestamps); it is not
// re-sorted here.
func SelectBoundaries(frames []models.KeyFrame, minGap int64) []models.KeyFrame {
	if len(frames) == 0 {
		return nil
	}

	var selected []models.KeyFrame
	last := frames[0]
	for _, frame := range frames[1:] {
		if frame.TimeSeconds-last.TimeSeconds > minGap {
			selected = append(selected, frame)
			last = frame
		}
	}
	return selected
}
