package uploader

import (
	"time"

	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/logger"
)

const defaultPollSlice = 2 * time.Second

type implUploader struct {
	sender VideoSender
	logger logger.Logger
	slice  time.Duration
}

// New creates an Uploader around the given sender.
func New(sender VideoSender, log logger.Logger) Uploader {
	return &implUploader{
		sender: sender,
		logger: log,
		slice:  defaultPollSlice,
	}
}
