package recipe

import (
	"sync"

	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/logger"
)

type implExtractor struct {
	apiKeys []string
	model   string
	logger  logger.Logger

	mu         sync.Mutex
	currentKey int
}

// New creates an Extractor that rotates through the supplied Gemini API
// keys on quota errors.
func New(apiKeys []string, model string, log logger.Logger) Extractor {
	return &implExtractor{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}
