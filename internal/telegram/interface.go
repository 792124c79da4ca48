package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Starter launches a pipeline run for a recognized video link.
type Starter interface {
	Start(ctx context.Context, url string, chatID int64)
}

// API is the slice of the Bot API the package actually calls, kept
// small so tests can stand in for the transport.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}
