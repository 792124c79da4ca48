package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/platform"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/session"
)

const (
	usageHint   = "Пришлите ссылку на видео из Instagram, TikTok или YouTube, и я извлеку из него рецепт."
	noDraftText = "Пока нет готового рецепта. Пришлите ссылку на видео."
	forgotText  = "Рецепт удалён."
)

// Run consumes the update channel until ctx is cancelled. Each
// recognized video link starts a pipeline run; everything else gets the
// usage hint.
func (b *Bot) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-b.updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch strings.TrimSpace(msg.Text) {
	case "/last":
		draft, ok := b.sessions.Draft(chatID)
		if !ok {
			b.reply(chatID, noDraftText)
			return
		}
		b.SendRecipe(ctx, chatID, draft)
		return
	case "/forget":
		b.sessions.Discard(chatID)
		b.reply(chatID, forgotText)
		return
	}

	url, ok := platform.Recognized(msg.Text)
	if !ok {
		b.reply(chatID, usageHint)
		return
	}

	b.logger.Info(ctx, "chat %d: %s link accepted", chatID, platform.Detect(url))
	b.starter.Start(ctx, url, chatID)
}

// SendRecipe delivers the finished draft to the requester: the channel
// preview first when one exists, then the recipe text.
func (b *Bot) SendRecipe(ctx context.Context, chatID int64, draft session.RecipeDraft) {
	if draft.DistributionRef != "" {
		video := tgbotapi.NewVideo(chatID, tgbotapi.FileID(draft.DistributionRef))
		if _, err := b.api.Send(video); err != nil {
			b.logger.Warn(ctx, "chat %d: preview send failed: %v", chatID, err)
		}
	}
	b.reply(chatID, formatRecipe(draft))
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.logger.Warn(context.Background(), "chat %d: reply failed: %v", chatID, err)
	}
}

func formatRecipe(draft session.RecipeDraft) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🍽 %s\n\n", draft.Title)
	fmt.Fprintf(&sb, "📝 Рецепт:\n%s\n\n", draft.Instructions)
	fmt.Fprintf(&sb, "🧂 Ингредиенты:\n%s", draft.Ingredients)
	return sb.String()
}
