package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/config"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/logger"
)

type fakeResult struct {
	out string
	err error
}

type fakeExecutor struct {
	results []fakeResult
	calls   [][]string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if len(f.results) == 0 {
		return "", fmt.Errorf("fakeExecutor: no result scripted")
	}
	res := f.results[0]
	f.results = f.results[1:]
	return res.out, res.err
}

func newTestConverter(exec *fakeExecutor) *implConverter {
	return &implConverter{
		cfg:      config.FFmpegConfig{CRF: 32, ScaleFactor: 0.6},
		executor: exec,
		logger:   logger.New("error"),
	}
}

func TestCorrectResolution(t *testing.T) {
	tests := []struct {
		name           string
		width, height  int
		wantW, wantH   int
	}{
		{"both odd", 1921, 1081, 1920, 1080},
		{"both even", 1920, 1080, 1920, 1080},
		{"odd width", 721, 1280, 720, 1280},
		{"odd height", 720, 1281, 720, 1280},
		{"zero", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := CorrectResolution(tt.width, tt.height)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("CorrectResolution(%d, %d) = (%d, %d), want (%d, %d)",
					tt.width, tt.height, w, h, tt.wantW, tt.wantH)
			}
			// Idempotent: correcting a corrected resolution changes nothing.
			w2, h2 := CorrectResolution(w, h)
			if w2 != w || h2 != h {
				t.Errorf("CorrectResolution not idempotent: (%d, %d) -> (%d, %d)", w, h, w2, h2)
			}
			if w%2 != 0 || h%2 != 0 {
				t.Errorf("CorrectResolution returned odd dimensions %dx%d", w, h)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	exec := &fakeExecutor{results: []fakeResult{
		{out: "721x1281\n"}, // ffprobe
		{out: ""},           // ffmpeg
	}}
	c := newTestConverter(exec)

	got := c.Convert(context.Background(), "data/videos/abc123.mp4")
	if want := filepath.Join("data", "videos", "abc123_converted.mp4"); got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}

	if len(exec.calls) != 2 {
		t.Fatalf("calls = %d, want 2 (probe + encode)", len(exec.calls))
	}
	// 721x1281 -> even 720x1280 -> x0.6 = 432x768, already even.
	encode := strings.Join(exec.calls[1], " ")
	if !strings.Contains(encode, "scale=432:768") {
		t.Errorf("encode args missing scaled resolution: %s", encode)
	}
	if !strings.Contains(encode, "-crf 32") {
		t.Errorf("encode args missing crf: %s", encode)
	}
}

func TestConvertProbeFailure(t *testing.T) {
	exec := &fakeExecutor{results: []fakeResult{
		{err: fmt.Errorf("ffprobe: no such file")},
	}}
	c := newTestConverter(exec)

	if got := c.Convert(context.Background(), "missing.mp4"); got != "" {
		t.Errorf("Convert() = %q, want empty on probe failure", got)
	}
	if len(exec.calls) != 1 {
		t.Errorf("encode ran after failed probe: %d calls", len(exec.calls))
	}
}

func TestConvertBadProbeOutput(t *testing.T) {
	exec := &fakeExecutor{results: []fakeResult{
		{out: "N/A"},
	}}
	c := newTestConverter(exec)

	if got := c.Convert(context.Background(), "weird.mp4"); got != "" {
		t.Errorf("Convert() = %q, want empty on unparseable probe", got)
	}
}

func TestExtractAudio(t *testing.T) {
	exec := &fakeExecutor{results: []fakeResult{{out: ""}}}
	c := newTestConverter(exec)
	outDir := t.TempDir()

	got := c.ExtractAudio(context.Background(), "data/videos/abc123_converted.mp4", outDir)
	if want := filepath.Join(outDir, "abc123_converted.wav"); got != want {
		t.Errorf("ExtractAudio() = %q, want %q", got, want)
	}

	args := strings.Join(exec.calls[0], " ")
	for _, flag := range []string{"-vn", "-ar 16000", "-ac 1", "pcm_s16le"} {
		if !strings.Contains(args, flag) {
			t.Errorf("ffmpeg args missing %q: %s", flag, args)
		}
	}
}

func TestExtractAudioFailure(t *testing.T) {
	exec := &fakeExecutor{results: []fakeResult{
		{err: fmt.Errorf("ffmpeg: invalid data")},
	}}
	c := newTestConverter(exec)

	if got := c.ExtractAudio(context.Background(), "broken.mp4", t.TempDir()); got != "" {
		t.Errorf("ExtractAudio() = %q, want empty on failure", got)
	}
}
