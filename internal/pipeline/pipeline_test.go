package pipeline

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/config"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/logger"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/notifier"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/session"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/uploader"
)

type fakeResolver struct {
	path string
	desc string
}

func (f *fakeResolver) Acquire(ctx context.Context, url string) (string, string) {
	return f.path, f.desc
}

type fakeConverter struct {
	converted string
	audio     string
}

func (f *fakeConverter) Convert(ctx context.Context, videoPath string) string {
	return f.converted
}

func (f *fakeConverter) ExtractAudio(ctx context.Context, videoPath, outDir string) string {
	return f.audio
}

type fakeTranscriber struct {
	text string
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audioPath string) string {
	return f.text
}

type fakeExtractor struct {
	title        string
	instructions string
	ingredients  string
}

func (f *fakeExtractor) Extract(ctx context.Context, description, transcript string) (string, string, string) {
	return f.title, f.instructions, f.ingredients
}

type fakeSender struct {
	ref   string
	delay time.Duration

	mu        sync.Mutex
	cancelled bool
}

func (f *fakeSender) SendVideo(ctx context.Context, path string) (string, error) {
	select {
	case <-time.After(f.delay):
		return f.ref, nil
	case <-ctx.Done():
		f.mu.Lock()
		f.cancelled = true
		f.mu.Unlock()
		return "", ctx.Err()
	}
}

func (f *fakeSender) wasCancelled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cancelled
}

type fakeNotifier struct {
	mu       sync.Mutex
	progress []int
	errors   []string
}

func (f *fakeNotifier) Info(ctx context.Context, text string) {}

func (f *fakeNotifier) Progress(ctx context.Context, pct int, text string) {
	f.mu.Lock()
	f.progress = append(f.progress, pct)
	f.mu.Unlock()
}

func (f *fakeNotifier) Error(ctx context.Context, text string) {
	f.mu.Lock()
	f.errors = append(f.errors, text)
	f.mu.Unlock()
}

type fakeRemover struct {
	mu      sync.Mutex
	removed []string
}

func (f *fakeRemover) Remove(ctx context.Context, path string) {
	f.mu.Lock()
	f.removed = append(f.removed, path)
	f.mu.Unlock()
}

func (f *fakeRemover) count(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, p := range f.removed {
		if p == path {
			n++
		}
	}
	return n
}

type harness struct {
	orch     *Orchestrator
	notify   *fakeNotifier
	remover  *fakeRemover
	sessions session.Store
	sender   *fakeSender
}

func newHarness(t *testing.T, deps Deps) *harness {
	t.Helper()

	cfg := &config.Config{}
	cfg.Paths.Audio = t.TempDir()
	cfg.Telegram.UploadWaitSeconds = 1
	cfg.Performance.MaxConcurrent = 2

	h := &harness{
		notify:   &fakeNotifier{},
		remover:  &fakeRemover{},
		sessions: session.NewMemoryStore(),
	}
	log := logger.New("error")

	if deps.Resolver == nil {
		deps.Resolver = &fakeResolver{path: "/tmp/v.mp4", desc: "паста с томатами"}
	}
	if deps.Converter == nil {
		deps.Converter = &fakeConverter{converted: "/tmp/v_converted.mp4", audio: "/tmp/v.wav"}
	}
	if deps.Transcriber == nil {
		deps.Transcriber = &fakeTranscriber{text: "варим пасту"}
	}
	if deps.Extractor == nil {
		deps.Extractor = &fakeExtractor{title: "Паста", instructions: "1. Варить.", ingredients: "- паста"}
	}
	if deps.Uploader == nil {
		h.sender = &fakeSender{ref: "file-id-1"}
		deps.Uploader = uploader.New(h.sender, log)
	}
	deps.Notifier = func(chatID int64) notifier.Notifier { return h.notify }
	deps.Sessions = h.sessions
	deps.Remover = h.remover
	deps.Logger = log

	h.orch = New(cfg, deps)
	return h
}

func TestRunSuccess(t *testing.T) {
	h := newHarness(t, Deps{})

	run := h.orch.Run(context.Background(), "https://www.instagram.com/reel/abc123/", 42)

	if run.Stage != StageDone {
		t.Fatalf("Stage = %v, want %v", run.Stage, StageDone)
	}
	if run.DistributionRef != "file-id-1" {
		t.Errorf("DistributionRef = %q, want %q", run.DistributionRef, "file-id-1")
	}

	draft, ok := h.sessions.Draft(42)
	if !ok {
		t.Fatal("no draft stored for chat 42")
	}
	if draft.Title != "Паста" || draft.DistributionRef != "file-id-1" {
		t.Errorf("draft = %+v", draft)
	}

	// Each artifact is swept exactly once.
	for _, p := range []string{"/tmp/v.mp4", "/tmp/v.wav", "/tmp/v_converted.mp4"} {
		if got := h.remover.count(p); got != 1 {
			t.Errorf("remove count for %s = %d, want 1", p, got)
		}
	}

	if len(h.notify.errors) != 0 {
		t.Errorf("errors reported on success: %v", h.notify.errors)
	}
	last := h.notify.progress[len(h.notify.progress)-1]
	if last != 100 {
		t.Errorf("final progress = %d, want 100", last)
	}
}

func TestRunDownloadFailure(t *testing.T) {
	h := newHarness(t, Deps{Resolver: &fakeResolver{}})

	run := h.orch.Run(context.Background(), "https://www.instagram.com/reel/gone/", 42)

	if run.Stage != StageFailed {
		t.Fatalf("Stage = %v, want %v", run.Stage, StageFailed)
	}
	if len(h.notify.errors) != 1 {
		t.Fatalf("errors = %v, want exactly one", h.notify.errors)
	}
	if len(h.remover.removed) != 0 {
		t.Errorf("removed %v before any artifact existed", h.remover.removed)
	}
	if _, ok := h.sessions.Draft(42); ok {
		t.Error("draft stored for a failed run")
	}
}

func TestRunConvertFailureSweepsSource(t *testing.T) {
	h := newHarness(t, Deps{Converter: &fakeConverter{}})

	run := h.orch.Run(context.Background(), "https://www.tiktok.com/@a/video/1", 42)

	if run.Stage != StageFailed {
		t.Fatalf("Stage = %v, want %v", run.Stage, StageFailed)
	}
	if got := h.remover.count("/tmp/v.mp4"); got != 1 {
		t.Errorf("source removed %d times, want 1", got)
	}
	if len(h.notify.errors) != 1 {
		t.Errorf("errors = %v, want exactly one", h.notify.errors)
	}
}

func TestRunAudioFailureAbortsUpload(t *testing.T) {
	sender := &fakeSender{ref: "file-id-1", delay: time.Minute}
	log := logger.New("error")
	h := newHarness(t, Deps{
		Converter: &fakeConverter{converted: "/tmp/v_converted.mp4"},
		Uploader:  uploader.New(sender, log),
	})

	run := h.orch.Run(context.Background(), "https://www.instagram.com/reel/abc123/", 42)

	if run.Stage != StageFailed {
		t.Fatalf("Stage = %v, want %v", run.Stage, StageFailed)
	}
	if !sender.wasCancelled() {
		t.Error("upload not cancelled after run failure")
	}
	if got := h.remover.count("/tmp/v_converted.mp4"); got != 1 {
		t.Errorf("converted removed %d times, want 1", got)
	}
}

func TestRunUploadTimeoutDegrades(t *testing.T) {
	h := newHarness(t, Deps{})
	h.sender.delay = time.Minute
	h.orch.uploadWait = 50 * time.Millisecond

	run := h.orch.Run(context.Background(), "https://www.instagram.com/reel/abc123/", 42)

	if run.Stage != StageDone {
		t.Fatalf("Stage = %v, want %v", run.Stage, StageDone)
	}
	if run.DistributionRef != "" {
		t.Errorf("DistributionRef = %q, want empty after timeout", run.DistributionRef)
	}

	draft, ok := h.sessions.Draft(42)
	if !ok {
		t.Fatal("no draft stored")
	}
	if draft.DistributionRef != "" {
		t.Errorf("draft ref = %q, want empty", draft.DistributionRef)
	}
}

func TestRunExtractionTransportFailure(t *testing.T) {
	h := newHarness(t, Deps{
		Extractor: &fakeExtractor{title: "Ошибка при отправке запроса"},
	})

	run := h.orch.Run(context.Background(), "https://www.instagram.com/reel/abc123/", 42)

	if run.Stage != StageFailed {
		t.Fatalf("Stage = %v, want %v", run.Stage, StageFailed)
	}
	if len(h.notify.errors) != 1 {
		t.Fatalf("errors = %v, want exactly one", h.notify.errors)
	}
	for _, p := range []string{"/tmp/v.mp4", "/tmp/v.wav", "/tmp/v_converted.mp4"} {
		if got := h.remover.count(p); got != 1 {
			t.Errorf("remove count for %s = %d, want 1", p, got)
		}
	}
}

func TestRunPlaceholderRecipeStillCompletes(t *testing.T) {
	h := newHarness(t, Deps{
		Extractor: &fakeExtractor{
			title:        "Не указано",
			instructions: "Не указан",
			ingredients:  "Не указаны",
		},
	})

	run := h.orch.Run(context.Background(), "https://www.instagram.com/reel/abc123/", 42)

	if run.Stage != StageDone {
		t.Fatalf("Stage = %v, want %v", run.Stage, StageDone)
	}
	draft, ok := h.sessions.Draft(42)
	if !ok {
		t.Fatal("no draft stored")
	}
	if draft.Instructions != "Не указан" {
		t.Errorf("Instructions = %q", draft.Instructions)
	}
}

func TestStartHonorsConcurrencyLimit(t *testing.T) {
	h := newHarness(t, Deps{})

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	// With the semaphore saturated, Start must bail out on a cancelled
	// context instead of blocking forever.
	h.orch.semaphore <- struct{}{}
	h.orch.semaphore <- struct{}{}
	done := make(chan struct{})
	go func() {
		h.orch.Start(cancelled, "https://www.instagram.com/reel/abc123/", 42)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start blocked on a cancelled context")
	}
}
