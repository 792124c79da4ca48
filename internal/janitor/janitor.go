package janitor

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/config"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/logger"
)

// Janitor guarantees artifact cleanup: explicit idempotent removal at
// the points a file becomes obsolete, plus a periodic sweep that catches
// leftovers from crashed or killed runs.
type Janitor struct {
	dirs     []string
	maxAge   time.Duration
	interval time.Duration
	logger   logger.Logger
}

// New creates a Janitor over the shared working directories.
func New(cfg *config.Config, log logger.Logger) *Janitor {
	return &Janitor{
		dirs:     []string{cfg.Paths.Videos, cfg.Paths.Audio},
		maxAge:   time.Duration(cfg.Cleanup.MaxAgeMinutes) * time.Minute,
		interval: time.Duration(cfg.Cleanup.SweepIntervalMinutes) * time.Minute,
		logger:   log,
	}
}

// Remove deletes an artifact. Idempotent: an empty path or a file that
// is already gone is not an error.
func (j *Janitor) Remove(ctx context.Context, path string) {
	if path == "" {
		return
	}
	err := os.Remove(path)
	switch {
	case err == nil:
		j.logger.Debug(ctx, "removed artifact: %s", path)
	case os.IsNotExist(err):
	default:
		j.logger.Warn(ctx, "remove artifact %s: %v", path, err)
	}
}

// Run executes the orphan sweep on a fixed interval until ctx ends.
func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.Sweep(ctx)
		}
	}
}

// Sweep removes any file whose last access time exceeds the inactivity
// threshold, no matter which run (if any) still tracks it. Live runs
// create and remove files concurrently, so every per-file error here is
// expected and silently skipped.
func (j *Janitor) Sweep(ctx context.Context) {
	now := time.Now()
	for _, dir := range j.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			path := filepath.Join(dir, e.Name())
			at, err := atime(path)
			if err != nil {
				continue
			}
			if now.Sub(at) > j.maxAge {
				if err := os.Remove(path); err == nil {
					j.logger.Debug(ctx, "swept inactive file: %s", path)
				}
			}
		}
	}
}
