package media

import (
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/config"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/logger"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/pkg/executor"
)

type implConverter struct {
	cfg      config.FFmpegConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Converter running ffmpeg/ffprobe through the executor.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Converter {
	return &implConverter{
		cfg:      cfg.FFmpeg,
		executor: exec,
		logger:   log,
	}
}
