package audio

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"talkbuddy/internal/ports"
)

func TestMicCaptureStartReadAndStop(t *testing.T) {
	t.Parallel()

	script := writeScript(t, "capture.sh", "#!/usr/bin/env bash\nprintf 'pcmbytes'\nsleep 2\n")
	capture := NewMicCapture(script)

	session, err := capture.Start(context.Background(), ports.AudioConfig{})
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	buf := make([]byte, 16)
	n, readErr := session.Read(buf)
	if n <= 0 {
		t.Fatalf("expected audio bytes, got n=%d err=%v", n, readErr)
	}
	if !strings.Contains(string(buf[:n]), "pcmbytes") {
		t.Fatalf("unexpected bytes: %q", string(buf[:n]))
	}

	if err := session.Stop(); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
}

func TestMicCaptureStartEarlyExit(t *testing.T) {
	t.Parallel()

	script := writeScript(t, "fail.sh", "#!/usr/bin/env bash\necho 'no such device' 1>&2\nexit 1\n")
	capture := NewMicCapture(script)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := capture.Start(ctx, ports.AudioConfig{})
	if err == nil {
		t.Fatalf("expected early exit error")
	}
	if !strings.Contains(err.Error(), "exited before starting") {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(err.Error(), "no such device") {
		t.Fatalf("error should carry the process stderr: %v", err)
	}
}

func TestMicCaptureStopIsIdempotent(t *testing.T) {
	t.Parallel()

	script := writeScript(t, "capture.sh", "#!/usr/bin/env bash\nsleep 2\n")
	session, err := NewMicCapture(script).Start(context.Background(), ports.AudioConfig{})
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	first := session.Stop()
	second := session.Stop()
	if first != second {
		t.Fatalf("repeated stop must return the same result: %v vs %v", first, second)
	}
	if err := session.Close(); err != first {
		t.Fatalf("close after stop must return the stop result, got %v", err)
	}
}

func TestCaptureArgs(t *testing.T) {
	t.Parallel()

	args := captureArgs(ports.AudioConfig{
		SampleRate:  44100,
		Channels:    2,
		InputFormat: "pulse",
		InputDevice: "usbmic",
	})
	joined := strings.Join(args, " ")
	for _, want := range []string{
		"-f pulse",
		"-i usbmic",
		"-ac 2",
		"-ar 44100",
		"-f s16le",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("args missing %q: %s", want, joined)
		}
	}
	if args[len(args)-1] != "-" {
		t.Errorf("output must go to stdout, got %q", args[len(args)-1])
	}
}

func TestNormalizeCaptureConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := normalizeCaptureConfig(ports.AudioConfig{})
	if cfg.SampleRate != 16000 || cfg.Channels != 1 {
		t.Fatalf("unexpected PCM defaults: %+v", cfg)
	}
	if cfg.InputFormat != defaultInputFormat() {
		t.Fatalf("expected platform backend %q, got %q", defaultInputFormat(), cfg.InputFormat)
	}
	if cfg.InputDevice == "" {
		t.Fatalf("expected a default device")
	}

	kept := normalizeCaptureConfig(ports.AudioConfig{
		SampleRate:  48000,
		Channels:    2,
		InputFormat: "alsa",
		InputDevice: "hw:1",
	})
	if kept.InputFormat != "alsa" || kept.InputDevice != "hw:1" || kept.SampleRate != 48000 {
		t.Fatalf("explicit settings must be kept: %+v", kept)
	}
}

func TestDefaultInputDevice(t *testing.T) {
	t.Parallel()

	if got := defaultInputDevice("avfoundation"); got != ":0" {
		t.Fatalf("avfoundation should address by index, got %q", got)
	}
	if got := defaultInputDevice("pulse"); got != "default" {
		t.Fatalf("unexpected pulse device: %q", got)
	}
}

func TestNormalizeStopErrExitErrorIsIgnored(t *testing.T) {
	t.Parallel()

	err := exec.Command("bash", "-lc", "exit 1").Run()
	if err == nil {
		t.Fatalf("expected command to fail")
	}
	if got := normalizeStopErr(err); got != nil {
		t.Fatalf("expected nil for exit error, got %v", got)
	}
}

func writeScript(t *testing.T, name string, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o700); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return path
}
