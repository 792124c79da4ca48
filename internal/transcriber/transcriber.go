package transcriber

import (
	"context"
	"strconv"
	"strings"
)

// Transcribe runs whisper.cpp over a 16kHz mono WAV and returns the
// recognized text, "" on any failure. The call is compute-bound; callers
// dispatch it off the paths that handle live message I/O.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) string {
	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", audioPath,
		"-l", t.cfg.Language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"-nt",         // plain text, no timestamps
		"--no-prints", // keep progress noise off stdout
	}

	out, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...)
	if err != nil {
		t.logger.Error(ctx, "whisper transcribe %s: %v", audioPath, err)
		return ""
	}

	text := strings.TrimSpace(out)
	if text == "" {
		t.logger.Warn(ctx, "whisper produced empty transcript for %s", audioPath)
		return ""
	}

	t.logger.Debug(ctx, "transcribed %s: %d chars", audioPath, len(text))
	return text
}
