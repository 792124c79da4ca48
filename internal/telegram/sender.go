package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/logger"
)

const sendVideoAttempts = 3

// ChannelSender uploads a converted video to the broadcast channel and
// returns its file reference, with flood-wait aware retries.
type ChannelSender struct {
	api       API
	channelID int64
	logger    logger.Logger
	sleep     func(time.Duration)
}

func (s *ChannelSender) SendVideo(ctx context.Context, path string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= sendVideoAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		msg, err := s.api.Send(tgbotapi.NewVideo(s.channelID, tgbotapi.FilePath(path)))
		if err == nil {
			if msg.Video == nil {
				return "", errors.New("send video: response carries no video")
			}
			return msg.Video.FileID, nil
		}
		lastErr = err

		if attempt == sendVideoAttempts {
			break
		}
		wait := time.Duration(attempt) * time.Second
		var tgErr *tgbotapi.Error
		if errors.As(err, &tgErr) && tgErr.RetryAfter > 0 {
			wait = time.Duration(tgErr.RetryAfter)*time.Second + 500*time.Millisecond
		}
		s.logger.Warn(ctx, "channel upload attempt %d failed, retrying in %s: %v", attempt, wait, err)
		s.sleep(wait)
	}

	return "", fmt.Errorf("send video after %d attempts: %w", sendVideoAttempts, lastErr)
}
