package downloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/config"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/logger"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/platform"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/pkg/executor"
)

// instagramFallback retrieves a reel with stored session cookies once
// anonymous extraction hits the login/rate wall. One attempt, no retries:
// hammering an already suspicious session only makes things worse.
type instagramFallback struct {
	cfg      config.DownloaderConfig
	videoDir string
	executor executor.Executor
	logger   logger.Logger
}

func newInstagramFallback(cfg config.DownloaderConfig, videoDir string, exec executor.Executor, log logger.Logger) Fallback {
	return &instagramFallback{
		cfg:      cfg,
		videoDir: videoDir,
		executor: exec,
		logger:   log,
	}
}

func (f *instagramFallback) Acquire(ctx context.Context, url string) (string, string, error) {
	if f.cfg.CookiesFile == "" {
		return "", "", fmt.Errorf("instagram fallback: no session cookies configured")
	}
	if _, err := os.Stat(f.cfg.CookiesFile); err != nil {
		return "", "", fmt.Errorf("instagram fallback: cookies file unavailable: %w", err)
	}

	shortcode := platform.InstagramShortcode(url)
	if shortcode == "" {
		return "", "", fmt.Errorf("instagram fallback: no shortcode in URL %s", url)
	}

	// Canonical reel URL; share links resolve to the same post.
	canonical := "https://www.instagram.com/reel/" + shortcode + "/"

	args := []string{
		"--dump-single-json",
		"--no-simulate",
		"-f", "bv+ba/best",
		"--merge-output-format", "mp4",
		"--no-progress",
		"--quiet",
		"--no-check-certificates",
		"--cookies", f.cfg.CookiesFile,
		"-o", filepath.Join(f.videoDir, "%(id)s.%(ext)s"),
		canonical,
	}

	out, err := f.executor.Execute(ctx, f.cfg.BinaryPath, args...)
	if err != nil {
		return "", "", fmt.Errorf("instagram fallback: %w", err)
	}

	path, desc, err := resolveResult(f.videoDir, out)
	if err != nil {
		return "", "", fmt.Errorf("instagram fallback: %w", err)
	}

	f.logger.Debug(ctx, "instagram fallback downloaded %s", path)
	return path, desc, nil
}
