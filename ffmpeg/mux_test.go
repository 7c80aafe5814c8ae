package ffmpeg

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestMuxBuilder_BuildArgs(t *testing.T) {
	builder := NewMuxBuilder("/in/movie.mkv", "/out/movie.mkv")

	args := builder.BuildArgs()
	expected := []string{
		"-y",
		"-i", "/in/movie.mkv",
		"-f", "ffmetadata",
		"-i", "-",
		"-map", "0",
		"-map_metadata", "0",
		"-map_chapters", "1",
		"-codec", "copy",
		"/out/movie.mkv",
	}

	if len(args) != len(expected) {
		t.Fatalf("Expected %d args, got %d: %v", len(expected), len(args), args)
	}
	for i := range args {
		if args[i] != expected[i] {
			t.Errorf("Arg %d: expected %q, got %q", i, expected[i], args[i])
		}
	}
}

func TestMuxBuilder_NoOverwrite(t *testing.T) {
	builder := NewMuxBuilder("in.mkv", "out.mkv").SetOverwrite(false)

	for _, arg := range builder.BuildArgs() {
		if arg == "-y" {
			t.Error("Expected no -y flag with overwrite disabled")
		}
	}
}

func TestMuxBuilder_ExtraArgs(t *testing.T) {
	builder := NewMuxBuilder("in.mkv", "out.mkv").AddExtraArgs("-loglevel", "error")

	args := builder.BuildArgs()
	if args[len(args)-1] != "out.mkv" {
		t.Errorf("Expected output path last, got %q", args[len(args)-1])
	}
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "-loglevel error") {
		t.Errorf("Expected extra args in command, got: %s", joined)
	}
}

func TestMuxBuilder_DryRun(t *testing.T) {
	cmd, err := NewMuxBuilder("in.mkv", "out.mkv").DryRun()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasPrefix(cmd, "ffmpeg ") {
		t.Errorf("Expected command to start with 'ffmpeg ', got: %s", cmd)
	}
	if !strings.Contains(cmd, "-map_chapters 1") {
		t.Errorf("Expected chapter mapping in command, got: %s", cmd)
	}
}

func TestMuxBuilder_DryRun_MissingPaths(t *testing.T) {
	if _, err := NewMuxBuilder("", "out.mkv").DryRun(); err == nil {
		t.Error("Expected error for empty source path")
	}
	if _, err := NewMuxBuilder("in.mkv", "").DryRun(); err == nil {
		t.Error("Expected error for empty output path")
	}
}

func TestMuxBuilder_Run_SurfacesDiagnostics(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script substitute not available on windows")
	}

	// Substitute a muxer that fails with a recognizable diagnostic.
	path := filepath.Join(t.TempDir(), "fake-ffmpeg")
	script := "#!/bin/sh\ncat >/dev/null\necho \"chapter table rejected\" >&2\nexit 1\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	orig := muxBin
	muxBin = path
	defer func() { muxBin = orig }()

	err := NewMuxBuilder("in.mkv", "out.mkv").Run(context.Background(), []byte(";FFMETADATA1\n"))
	if err == nil {
		t.Fatal("Expected error from failing muxer")
	}

	muxErr, ok := err.(*MuxError)
	if !ok {
		t.Fatalf("Expected *MuxError, got %T: %v", err, err)
	}
	if !strings.Contains(muxErr.Stderr, "chapter table rejected") {
		t.Errorf("Expected captured diagnostic text, got: %q", muxErr.Stderr)
	}
	if !strings.Contains(err.Error(), "chapter table rejected") {
		t.Errorf("Expected diagnostic in error message, got: %v", err)
	}
}

func TestMuxBuilder_Run_MissingBinary(t *testing.T) {
	orig := muxBin
	muxBin = filepath.Join(t.TempDir(), "does-not-exist")
	defer func() { muxBin = orig }()

	err := NewMuxBuilder("in.mkv", "out.mkv").Run(context.Background(), nil)
	if err == nil {
		t.Error("Expected error for missing muxer binary")
	}
}
