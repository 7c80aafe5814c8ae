package chapters

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"chapterizer/models"
)

// Header is the magic first line of an FFMETADATA document.
const Header = ";FFMETADATA1"

// Build converts boundary keyframes into contiguous chapters.
//
// Each boundary is a chapter *end* marker: chapter i ends at boundary i and
// starts where the previous chapter ended (zero for chapter 1). Titles are
// generated as "Chapter <i>". N boundaries produce N chapters; the stretch
// of the file after the last boundary is left to the muxer's defaulting.
func Build(boundaries []models.KeyFrame) []models.Chapter {
	chs := make([]models.Chapter, 0, len(boundaries))
	var start int64
	for i, b := range boundaries {
		chs = append(chs, models.Chapter{
			Index:        i + 1,
			StartSeconds: start,
			EndSeconds:   b.TimeSeconds,
			Title:        fmt.Sprintf("Chapter %d", i+1),
		})
		start = b.TimeSeconds
	}
	return chs
}

// Render serializes chapters into an FFMETADATA document.
//
// The document starts with the Header line, followed by one [CHAPTER]
// section per chapter with a whole-second time base. Zero chapters produce
// a header-only document, which is still valid muxer input.
func Render(chs []models.Chapter) string {
	var sb strings.Builder
	sb.WriteString(Header)
	sb.WriteByte('\n')
	for _, ch := range chs {
		fmt.Fprintf(&sb, "[CHAPTER]\nTIMEBASE=1/1\nSTART=%d\nEND=%d\ntitle=%s\n",
			ch.StartSeconds, ch.EndSeconds, ch.Title)
	}
	return sb.String()
}

// Parse reads an FFMETADATA chapter document back into chapters.
//
// Only the subset of the format produced by Render is understood; it exists
// so generated documents can be verified round-trip. Returns an error if the
// header line is missing or a chapter field cannot be parsed.
func Parse(r io.Reader) ([]models.Chapter, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, fmt.Errorf("empty chapter document")
	}
	if scanner.Text() != Header {
		return nil, fmt.Errorf("unexpected document header: %q", scanner.Text())
	}

	var chs []models.Chapter
	var cur *models.Chapter

	flush := func() error {
		if cur == nil {
			return nil
		}
		cur.Index = len(chs) + 1
		if err := cur.Validate(); err != nil {
			return fmt.Errorf("chapter %d: %w", cur.Index, err)
		}
		chs = append(chs, *cur)
		cur = nil
		return nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "[CHAPTER]":
			if err := flush(); err != nil {
				return nil, err
			}
			cur = &models.Chapter{}
		case cur == nil || line == "":
			// Ignore anything outside a chapter section.
		case strings.HasPrefix(line, "TIMEBASE="):
			if tb := strings.TrimPrefix(line, "TIMEBASE="); tb != "1/1" {
				return nil, fmt.Errorf("unsupported time base %q", tb)
			}
		case strings.HasPrefix(line, "START="):
			v, err := strconv.ParseInt(strings.TrimPrefix(line, "START="), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("bad START line %q: %w", line, err)
			}
			cur.StartSeconds = v
		case strings.HasPrefix(line, "END="):
			v, err := strconv.ParseInt(strings.TrimPrefix(line, "END="), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("bad END line %q: %w", line, err)
			}
			cur.EndSeconds = v
		case strings.HasPrefix(line, "title="):
			cur.Title = strings.TrimPrefix(line, "title=")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not scan chapter document: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return chs, nil
}
