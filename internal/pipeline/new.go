package pipeline

import (
	"context"
	"time"

	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/config"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/downloader"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/logger"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/media"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/notifier"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/recipe"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/session"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/transcriber"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/uploader"
)

// Remover deletes a single artifact path. Missing paths are not errors.
type Remover interface {
	Remove(ctx context.Context, path string)
}

// Deps bundles everything an orchestrator drives.
type Deps struct {
	Resolver    downloader.Resolver
	Converter   media.Converter
	Transcriber transcriber.Transcriber
	Extractor   recipe.Extractor
	Uploader    uploader.Uploader
	Notifier    notifier.Factory
	Sessions    session.Store
	Remover     Remover
	Logger      logger.Logger

	// OnReady is invoked after a successful run, once the draft is in
	// the session store. Optional.
	OnReady func(ctx context.Context, chatID int64, draft session.RecipeDraft)
}

type Orchestrator struct {
	deps       Deps
	audioDir   string
	uploadWait time.Duration
	semaphore  chan struct{}
}

func New(cfg *config.Config, deps Deps) *Orchestrator {
	return &Orchestrator{
		deps:       deps,
		audioDir:   cfg.Paths.Audio,
		uploadWait: time.Duration(cfg.Telegram.UploadWaitSeconds) * time.Second,
		semaphore:  make(chan struct{}, cfg.Performance.MaxConcurrent),
	}
}
