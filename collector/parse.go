package collector

import (
	"regexp"
	"strconv"
	"strings"

	"chapterizer/models"
)

// Field patterns for one frame-descriptor block. The analysis process emits
// key=value lines; pts_time may carry a fractional part, but downstream
// selection works in whole seconds, so only the integer prefix is captured.
// Fields may appear in any order within the block.
var (
	keyFrameFlagRegex = regexp.MustCompile(`(?m)^key_frame=1\s*$`)
	ptsTimeRegex      = regexp.MustCompile(`(?m)^pts_time=(\d+)`)
	pktPosRegex       = regexp.MustCompile(`(?m)^pkt_pos=(\d+)`)
)

// ParseFrameRecord extracts a KeyFrame from the body of one frame-descriptor
// block (the text between the block markers).
//
// Returns a *MalformedRecordError if either required field is absent. The
// transform is pure: no state is read or written.
func ParseFrameRecord(block string) (models.KeyFrame, error) {
	pts := ptsTimeRegex.FindStringSubmatch(block)
	if pts == nil {
		return models.KeyFrame{}, &MalformedRecordError{Missing: "pts_time", Block: strings.TrimSpace(block)}
	}
	pos := pktPosRegex.FindStringSubmatch(block)
	if pos == nil {
		return models.KeyFrame{}, &MalformedRecordError{Missing: "pkt_pos", Block: strings.TrimSpace(block)}
	}

	timeSeconds, err := strconv.ParseInt(pts[1], 10, 64)
	if err != nil {
		return models.KeyFrame{}, &MalformedRecordError{Missing: "pts_time", Block: strings.TrimSpace(block)}
	}
	byteOffset, err := strconv.ParseInt(pos[1], 10, 64)
	if err != nil {
		return models.KeyFrame{}, &MalformedRecordError{Missing: "pkt_pos", Block: strings.TrimSpace(block)}
	}

	return models.KeyFrame{TimeSeconds: timeSeconds, ByteOffset: byteOffset}, nil
}

// isKeyFrame reports whether a block body carries the keyframe flag.
func isKeyFrame(block string) bool {
	return keyFrameFlagRegex.MatchString(block)
}
