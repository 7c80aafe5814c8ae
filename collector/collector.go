// Package collector implements the incremental keyframe stream collector:
// a chunk-driven scanner over the frame-descriptor text emitted by the
// analysis process. It extracts complete descriptor blocks as they become
// available, keeps the keyframe records, and resolves a single-fulfillment
// completion value with the boundary-filtered sequence.
package collector

import (
	"context"
	"fmt"
	"strings"

	"chapterizer/chapters"
	"chapterizer/models"
)

// Block markers of the frame-descriptor stream. The analysis process
// guarantees blocks never nest or overlap, so the scanner never has to look
// inside one block for the markers of another.
const (
	openMarker  = "[FRAME]"
	closeMarker = "[/FRAME]"
)

// ProgressFunc receives one call per discovered keyframe. It is cosmetic
// feedback, not part of the correctness contract.
type ProgressFunc func(models.KeyFrame)

type result struct {
	boundaries []models.KeyFrame
	err        error
}

// Collector accumulates arbitrarily-chunked descriptor text for one input
// file and turns it into a chapter-boundary sequence.
//
// A Collector is single-producer: Feed calls must arrive in order from one
// goroutine, and Finish or Abort must be called exactly once after the last
// Feed. Wait may be called from another goroutine. One Collector serves one
// file; instances share no state.
type Collector struct {
	pending  string
	frames   []models.KeyFrame
	minGap   int64
	progress ProgressFunc

	resolved bool
	done     chan result
	cached   *result
}

// New creates a Collector whose completion value is filtered through the
// boundary selector with the given minimum gap in seconds.
func New(minGap int64) *Collector {
	return &Collector{
		minGap: minGap,
		done:   make(chan result, 1),
	}
}

// SetProgressFunc sets the per-keyframe progress callback.
func (c *Collector) SetProgressFunc(fn ProgressFunc) *Collector {
	c.progress = fn
	return c
}

// Discovered returns the number of keyframes collected so far.
func (c *Collector) Discovered() int {
	return len(c.frames)
}

// Feed appends a chunk of descriptor text to the pending buffer, then
// consumes every complete block it now holds.
//
// A block is complete only when both markers are buffered; a partial block
// is left pending until more input arrives (the sole suspension point).
// Complete blocks are removed from the buffer, markers included. Blocks
// flagged as keyframes are parsed and appended to the sequence; the rest
// are discarded. A single chunk may complete several blocks, or none.
//
// A matched block that fails to parse is left at the front of the buffer
// and its error returned; the caller is expected to Abort the collector
// rather than feed more input.
func (c *Collector) Feed(chunk []byte) error {
	if c.resolved {
		return fmt.Errorf("collector: feed after completion")
	}

	c.pending += string(chunk)
	for {
		open := strings.Index(c.pending, openMarker)
		if open < 0 {
			// No block in sight. Keep only a tail short enough to be a
			// split-open marker so junk between blocks cannot pile up.
			if keep := len(openMarker) - 1; len(c.pending) > keep {
				c.pending = c.pending[len(c.pending)-keep:]
			}
			return nil
		}

		rest := c.pending[open+len(openMarker):]
		end := strings.Index(rest, closeMarker)
		if end < 0 {
			// Block opened but not yet closed; wait for more input.
			c.pending = c.pending[open:]
			return nil
		}

		body := rest[:end]
		if isKeyFrame(body) {
			frame, err := ParseFrameRecord(body)
			if err != nil {
				return err
			}
			c.frames = append(c.frames, frame)
			if c.progress != nil {
				c.progress(frame)
			}
		}
		c.pending = rest[end+len(closeMarker):]
	}
}

// Finish signals that no further input will arrive and fulfills the
// completion value with the keyframe sequence passed through the boundary
// selector. An empty stream resolves to zero boundaries.
//
// Panics if the completion value was already resolved.
func (c *Collector) Finish() {
	c.resolve(result{boundaries: chapters.SelectBoundaries(c.frames, c.minGap)})
}

// Abort fails the completion value with err and discards any buffered but
// unprocessed text.
//
// Panics if the completion value was already resolved.
func (c *Collector) Abort(err error) {
	c.pending = ""
	c.frames = nil
	c.resolve(result{err: err})
}

// Wait blocks until the collector completes (or ctx is done) and returns
// the boundary-filtered keyframe sequence. Subsequent calls return the same
// result.
func (c *Collector) Wait(ctx context.Context) ([]models.KeyFrame, error) {
	if c.cached == nil {
		select {
		case r := <-c.done:
			c.cached = &r
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return c.cached.boundaries, c.cached.err
}

// resolve fulfills the completion value exactly once. Resolving twice is a
// programming error, not a recoverable condition.
func (c *Collector) resolve(r result) {
	if c.resolved {
		panic("collector: completion value resolved twice")
	}
	c.resolved = true
	c.done <- r
}
