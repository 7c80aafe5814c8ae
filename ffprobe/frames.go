package ffprobe

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// ScanError reports abnormal termination of the frame-analysis process.
// Stderr carries the process's captured diagnostic output.
type ScanError struct {
	Err    error
	Stderr string
}

func (e *ScanError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("frame analysis failed: %v", e.Err)
	}
	return fmt.Sprintf("frame analysis failed: %v: %s", e.Err, e.Stderr)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// FrameSink is the collector-side contract of the scan: descriptor bytes go
// in via Feed in arrival order, and exactly one of Finish or Abort follows.
type FrameSink interface {
	Feed(chunk []byte) error
	Finish()
	Abort(err error)
}

// scanReadSize is the read buffer for the analysis process's output. The
// sink tolerates arbitrary chunk boundaries, so the size only affects
// syscall count.
const scanReadSize = 32 * 1024

// ScanKeyframes runs the analysis process over the file's video stream and
// streams its frame-descriptor output into sink, chunk by chunk, in arrival
// order.
//
// On clean process exit the sink is finished; on abnormal exit, a read
// failure, or a sink feed error the sink is aborted with the cause (carrying
// the process's stderr where available) and the same error is returned.
func ScanKeyframes(ctx context.Context, sourcePath string, sink FrameSink) error {
	args := []string{
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "frame=key_frame,pts_time,pkt_pos",
		"-show_frames",
		sourcePath,
	}

	cmd := exec.CommandContext(ctx, probeBin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		err = fmt.Errorf("failed to open analysis output pipe: %w", err)
		sink.Abort(err)
		return err
	}

	if err := cmd.Start(); err != nil {
		err = fmt.Errorf("failed to start %s: %w", probeBin, err)
		sink.Abort(err)
		return err
	}

	buf := make([]byte, scanReadSize)
	for {
		n, readErr := stdout.Read(buf)
		if n > 0 {
			if feedErr := sink.Feed(buf[:n]); feedErr != nil {
				_ = cmd.Process.Kill()
				_ = cmd.Wait()
				sink.Abort(feedErr)
				return feedErr
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			_ = cmd.Wait()
			scanErr := &ScanError{Err: readErr, Stderr: strings.TrimSpace(stderr.String())}
			sink.Abort(scanErr)
			return scanErr
		}
	}

	if err := cmd.Wait(); err != nil {
		scanErr := &ScanError{Err: err, Stderr: strings.TrimSpace(stderr.String())}
		sink.Abort(scanErr)
		return scanErr
	}

	sink.Finish()
	return nil
}
