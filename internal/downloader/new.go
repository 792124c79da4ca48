package downloader

import (
	"math/rand"
	"time"

	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/config"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/logger"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/platform"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/pkg/executor"
)

type implResolver struct {
	cfg      config.DownloaderConfig
	videoDir string
	executor executor.Executor
	logger   logger.Logger

	fallbacks map[platform.Platform]Fallback

	// injectable for tests
	sleep     func(time.Duration)
	randFloat func() float64
}

// New creates a Resolver downloading into cfg.Paths.Videos via yt-dlp,
// with the Instagram authenticated-session fallback registered.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Resolver {
	return &implResolver{
		cfg:      cfg.Downloader,
		videoDir: cfg.Paths.Videos,
		executor: exec,
		logger:   log,
		fallbacks: map[platform.Platform]Fallback{
			platform.Instagram: newInstagramFallback(cfg.Downloader, cfg.Paths.Videos, exec, log),
		},
		sleep:     time.Sleep,
		randFloat: rand.Float64,
	}
}
