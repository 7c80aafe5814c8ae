// Package ffprobe drives the external analysis process: a JSON probe for
// stream and chapter metadata, and a frame scan that streams keyframe
// descriptors into a collector.
package ffprobe

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
)

// Chapter represents a chapter marker already present in a media file.
type Chapter struct {
	ID        int    `json:"id"`
	TimeBase  string `json:"time_base"`
	Start     int64  `json:"start"`
	StartTime string `json:"start_time"`
	End       int64  `json:"end"`
	EndTime   string `json:"end_time"`
	Title     string `json:"title,omitempty"`
}

// Stream represents a media stream (audio, video, subtitle, etc.)
type Stream struct {
	Index         int    `json:"index"`
	CodecName     string `json:"codec_name"`
	CodecType     string `json:"codec_type"`
	CodecLongName string `json:"codec_long_name"`
	Width         int    `json:"width,omitempty"`
	Height        int    `json:"height,omitempty"`
	Duration      string `json:"duration,omitempty"`
}

// Format represents the container format information.
type Format struct {
	Filename       string `json:"filename"`
	FormatName     string `json:"format_name"`
	FormatLongName string `json:"format_long_name"`
	Duration       string `json:"duration"`
	Size           string `json:"size"`
	BitRate        string `json:"bit_rate"`
}

// ProbeResult holds the metadata extracted from a media file: format
// information, stream details, and any chapter markers already embedded.
type ProbeResult struct {
	Chapters []Chapter `json:"chapters"`
	Streams  []Stream  `json:"streams"`
	Format   Format    `json:"format"`
}

// GetDuration returns the duration of the media file in seconds.
//
// Returns an error if the duration cannot be parsed.
func (pr *ProbeResult) GetDuration() (float64, error) {
	if pr.Format.Duration == "" {
		return 0, fmt.Errorf("duration not available in format metadata")
	}

	duration, err := strconv.ParseFloat(pr.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration '%s': %w", pr.Format.Duration, err)
	}

	return duration, nil
}

// HasChapters returns true if the media file already contains chapter markers.
func (pr *ProbeResult) HasChapters() bool {
	return len(pr.Chapters) > 0
}

// GetChapterCount returns the number of chapters already in the media file.
func (pr *ProbeResult) GetChapterCount() int {
	return len(pr.Chapters)
}

// GetVideoStreams returns all video streams from the media file.
func (pr *ProbeResult) GetVideoStreams() []Stream {
	var videoStreams []Stream
	for _, stream := range pr.Streams {
		if stream.CodecType == "video" {
			videoStreams = append(videoStreams, stream)
		}
	}
	return videoStreams
}

// HasVideo returns true if the media file contains at least one video stream.
func (pr *ProbeResult) HasVideo() bool {
	return len(pr.GetVideoStreams()) > 0
}

// probeBin is a variable so tests can substitute the binary.
var probeBin = "ffprobe"

// Probe analyzes a media file and extracts its metadata using ffprobe.
//
// Used before the keyframe scan to skip files without a video stream and to
// report the chapter table being replaced.
func Probe(ctx context.Context, sourcePath string) (*ProbeResult, error) {
	if sourcePath == "" {
		return nil, fmt.Errorf("source path cannot be empty")
	}

	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_chapters",
		"-show_streams",
		"-show_format",
		sourcePath,
	}

	cmd := exec.CommandContext(ctx, probeBin, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w (output: %s)", err, string(output))
	}

	var result ProbeResult
	if err := json.Unmarshal(output, &result); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe JSON output: %w", err)
	}

	return &result, nil
}
