package notifier

import (
	"sync"
	"time"

	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/logger"
)

const defaultMinEditInterval = 900 * time.Millisecond

type implNotifier struct {
	messenger Messenger
	chatID    int64
	logger    logger.Logger

	minEditInterval time.Duration
	now             func() time.Time
	sleep           func(time.Duration)

	mu         sync.Mutex
	messageID  int
	lastText   string
	lastEditAt time.Time
	closed     bool
}

// New creates a Notifier editing a single status message in chatID.
func New(m Messenger, chatID int64, log logger.Logger) Notifier {
	return &implNotifier{
		messenger:       m,
		chatID:          chatID,
		logger:          log,
		minEditInterval: defaultMinEditInterval,
		now:             time.Now,
		sleep:           time.Sleep,
	}
}
