package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Messenger adapts the Bot API to the status-message transport the
// notifier edits in place.
type Messenger struct {
	api API
}

func (m *Messenger) SendMessage(ctx context.Context, chatID int64, text string) (int, error) {
	msg, err := m.api.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return 0, err
	}
	return msg.MessageID, nil
}

func (m *Messenger) EditMessage(ctx context.Context, chatID int64, messageID int, text string) error {
	_, err := m.api.Send(tgbotapi.NewEditMessageText(chatID, messageID, text))
	return err
}
