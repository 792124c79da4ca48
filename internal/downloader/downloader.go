package downloader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/platform"
)

const (
	backoffBase = time.Second
	backoffCap  = 6 * time.Second
)

// Acquire downloads the video behind url and returns the local path plus
// the post description. Up to cfg.MaxAttempts tries of the general yt-dlp
// strategy with human-like pacing; rate-limit errors switch to the
// platform fallback, terminal errors abort immediately.
func (r *implResolver) Acquire(ctx context.Context, url string) (string, string) {
	if err := os.MkdirAll(r.videoDir, 0755); err != nil {
		r.logger.Error(ctx, "create video dir %s: %v", r.videoDir, err)
		return "", ""
	}

	plat := platform.Detect(url)
	var lastErr error

	for attempt := 1; attempt <= r.cfg.MaxAttempts; attempt++ {
		// Small randomized pause so attempt timing doesn't look scripted.
		r.sleep(r.humanDelay())

		path, desc, err := r.tryYtDlp(ctx, url)
		if err == nil {
			r.logger.Debug(ctx, "yt-dlp downloaded %s", path)
			return path, desc
		}
		lastErr = err
		r.logger.Warn(ctx, "yt-dlp attempt %d/%d failed: %v", attempt, r.cfg.MaxAttempts, err)

		switch Classify(err) {
		case KindRateLimit:
			return r.acquireViaFallback(ctx, plat, url)
		case KindTerminal:
			r.logger.Error(ctx, "terminal origin error, not retrying: %v", err)
			return "", ""
		default:
			if attempt < r.cfg.MaxAttempts {
				delay := r.backoff(attempt)
				r.logger.Debug(ctx, "retrying in %s", delay)
				r.sleep(delay)
			}
		}

		if ctx.Err() != nil {
			r.logger.Warn(ctx, "download cancelled: %v", ctx.Err())
			return "", ""
		}
	}

	r.logger.Error(ctx, "failed to download video after %d attempts: %v", r.cfg.MaxAttempts, lastErr)
	return "", ""
}

// acquireViaFallback runs the single-attempt authenticated strategy for
// the platform, if one is registered.
func (r *implResolver) acquireViaFallback(ctx context.Context, plat platform.Platform, url string) (string, string) {
	fb, ok := r.fallbacks[plat]
	if !ok {
		r.logger.Error(ctx, "origin %s rate-limited and no fallback strategy registered", plat)
		return "", ""
	}

	r.logger.Info(ctx, "switching to authenticated fallback for %s", plat)
	path, desc, err := fb.Acquire(ctx, url)
	if err != nil {
		r.logger.Error(ctx, "fallback failed: %v", err)
		return "", ""
	}
	return path, desc
}

// videoInfo is the slice of yt-dlp metadata the pipeline cares about.
type videoInfo struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	Fulltitle   string      `json:"fulltitle"`
	Title       string      `json:"title"`
	Entries     []videoInfo `json:"entries"`
}

func (r *implResolver) tryYtDlp(ctx context.Context, url string) (string, string, error) {
	args := append(r.commonArgs(), url)
	out, err := r.executor.Execute(ctx, r.cfg.BinaryPath, args...)
	if err != nil {
		return "", "", err
	}
	return resolveResult(r.videoDir, out)
}

// commonArgs is the general extraction strategy: best available format
// merged to mp4, limited internal retries, pacing sleeps and a soft rate
// limit so the download traffic resembles a regular viewer.
func (r *implResolver) commonArgs() []string {
	return []string{
		"--dump-single-json",
		"--no-simulate",
		"-f", "bv+ba/best",
		"--merge-output-format", "mp4",
		"--no-progress",
		"--quiet",
		"--no-check-certificates",
		"--retries", "3",
		"--fragment-retries", "3",
		"--sleep-interval", "1",
		"--max-sleep-interval", "3",
		"--limit-rate", r.cfg.RateLimit,
		"-o", filepath.Join(r.videoDir, "%(id)s.%(ext)s"),
	}
}

// resolveResult parses yt-dlp's info JSON into (path, description).
// The output template keys files by content ID, so the final merged file
// is always <dir>/<id>.mp4.
func resolveResult(videoDir, infoJSON string) (string, string, error) {
	var info videoInfo
	if err := json.Unmarshal([]byte(infoJSON), &info); err != nil {
		return "", "", fmt.Errorf("parse yt-dlp info: %w", err)
	}

	item := info
	if item.ID == "" && len(info.Entries) > 0 {
		item = info.Entries[0]
	}
	if item.ID == "" {
		return "", "", fmt.Errorf("yt-dlp info carries no content id")
	}

	path := filepath.Join(videoDir, item.ID+".mp4")
	if _, err := os.Stat(path); err != nil {
		return "", "", fmt.Errorf("downloaded file missing: %w", err)
	}

	return path, description(item), nil
}

// description picks the first non-empty text field, like the post caption
// fallbacks the extractors disagree about.
func description(info videoInfo) string {
	for _, cand := range []string{info.Description, info.Fulltitle, info.Title} {
		if cand != "" {
			return cand
		}
	}
	return ""
}

// humanDelay is the 0.6–1.8s pre-attempt pause.
func (r *implResolver) humanDelay() time.Duration {
	return time.Duration((0.6 + 1.2*r.randFloat()) * float64(time.Second))
}

// backoff is exponential with 0.2–0.8s jitter, capped.
func (r *implResolver) backoff(attempt int) time.Duration {
	d := backoffBase * (1 << (attempt - 1))
	d += time.Duration((0.2 + 0.6*r.randFloat()) * float64(time.Second))
	if d > backoffCap {
		d = backoffCap
	}
	return d
}
