package telegram

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/logger"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/session"
)

// Bot runs the inbound long-poll loop and replies to requesters.
type Bot struct {
	api      API
	updates  tgbotapi.UpdatesChannel
	starter  Starter
	sessions session.Store
	logger   logger.Logger
}

// Connect authorizes against the Bot API. The returned client is shared
// by the bot loop, the channel sender and the status messenger.
func Connect(token string, log logger.Logger) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connect bot api: %w", err)
	}
	log.Info(context.Background(), "authorized as @%s", api.Self.UserName)
	return api, nil
}

// New prepares the update loop over an authorized client.
func New(api *tgbotapi.BotAPI, starter Starter, sessions session.Store, log logger.Logger) *Bot {
	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = 30

	return &Bot{
		api:      api,
		updates:  api.GetUpdatesChan(updateCfg),
		starter:  starter,
		sessions: sessions,
		logger:   log,
	}
}

// NewChannelSender builds the uploader.VideoSender pushing converted
// videos to channelID.
func NewChannelSender(api API, channelID int64, log logger.Logger) *ChannelSender {
	return &ChannelSender{
		api:       api,
		channelID: channelID,
		logger:    log,
		sleep:     time.Sleep,
	}
}

// NewMessenger builds the notifier.Messenger the status messages live on.
func NewMessenger(api API) *Messenger {
	return &Messenger{api: api}
}
