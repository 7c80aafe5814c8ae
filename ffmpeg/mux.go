// Package ffmpeg builds and runs the muxer invocation that stream-copies a
// source file while embedding a generated chapter table.
package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// MuxError reports a muxer run that exited non-zero (or whose input channel
// failed). Stderr carries the muxer's captured diagnostic output verbatim.
type MuxError struct {
	Err    error
	Stderr string
}

func (e *MuxError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("muxer failed: %v", e.Err)
	}
	return fmt.Sprintf("muxer failed: %v: %s", e.Err, e.Stderr)
}

func (e *MuxError) Unwrap() error {
	return e.Err
}

// muxBin is a variable so tests can substitute the binary.
var muxBin = "ffmpeg"

// MuxBuilder constructs the ffmpeg command that copies a source file's
// media streams into a destination while adopting the chapter document
// supplied on standard input. No transcoding takes place.
type MuxBuilder struct {
	sourcePath string
	outputPath string
	overwrite  bool
	extraArgs  []string
}

// NewMuxBuilder creates a new mux builder.
// sourcePath: path to the source media file (required)
// outputPath: path to the destination file (required)
func NewMuxBuilder(sourcePath, outputPath string) *MuxBuilder {
	return &MuxBuilder{
		sourcePath: sourcePath,
		outputPath: outputPath,
		overwrite:  true,
	}
}

// SetOverwrite sets whether an existing destination file is replaced.
func (m *MuxBuilder) SetOverwrite(overwrite bool) *MuxBuilder {
	m.overwrite = overwrite
	return m
}

// AddExtraArgs adds custom ffmpeg arguments before the output path.
func (m *MuxBuilder) AddExtraArgs(args ...string) *MuxBuilder {
	m.extraArgs = append(m.extraArgs, args...)
	return m
}

// BuildArgs constructs the ffmpeg command arguments.
//
// The chapter document arrives as a second input on stdin (the ffmetadata
// demuxer cannot sniff a pipe, hence the explicit -f). All streams and
// global metadata come from the source; only the chapter table is taken
// from the document.
func (m *MuxBuilder) BuildArgs() []string {
	args := []string{}
	if m.overwrite {
		args = append(args, "-y")
	}

	args = append(args,
		"-i", m.sourcePath,
		"-f", "ffmetadata",
		"-i", "-",
		"-map", "0",
		"-map_metadata", "0",
		"-map_chapters", "1",
		"-codec", "copy",
	)

	args = append(args, m.extraArgs...)
	args = append(args, m.outputPath)
	return args
}

// DryRun returns the full command as a string without executing it.
func (m *MuxBuilder) DryRun() (string, error) {
	if m.sourcePath == "" {
		return "", fmt.Errorf("source path cannot be empty")
	}
	if m.outputPath == "" {
		return "", fmt.Errorf("output path cannot be empty")
	}
	return muxBin + " " + strings.Join(m.BuildArgs(), " "), nil
}

// Run executes the muxer, writing doc to its input channel and closing the
// channel to signal end-of-input. It blocks until the muxer exits.
//
// A non-zero exit status (or a failure delivering the document) is returned
// as a *MuxError carrying the muxer's stderr.
func (m *MuxBuilder) Run(ctx context.Context, doc []byte) error {
	if _, err := m.DryRun(); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, muxBin, m.BuildArgs()...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("failed to open muxer input pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", muxBin, err)
	}

	_, writeErr := stdin.Write(doc)
	closeErr := stdin.Close() // end-of-input signal
	if waitErr := cmd.Wait(); waitErr != nil {
		return &MuxError{Err: waitErr, Stderr: strings.TrimSpace(stderr.String())}
	}
	if writeErr != nil {
		return &MuxError{Err: writeErr, Stderr: strings.TrimSpace(stderr.String())}
	}
	if closeErr != nil {
		return &MuxError{Err: closeErr, Stderr: strings.TrimSpace(stderr.String())}
	}
	return nil
}
