package notifier

import (
	"context"
	"fmt"
	"strings"
)

const barSegments = 10

// Info sends the status message on first call and edits it afterwards.
func (n *implNotifier) Info(ctx context.Context, text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.update(ctx, text, false)
}

// Progress renders a percent bar into the status message. Edits are
// throttled so a chatty run does not hit the transport's rate limits.
func (n *implNotifier) Progress(ctx context.Context, pct int, text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	n.update(ctx, render(pct, text), false)
}

// Error replaces the status message with the failure text and closes the
// notifier; later calls are no-ops.
func (n *implNotifier) Error(ctx context.Context, text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.closed = true
	n.update(ctx, "❌ "+text, true)
}

// update is called with the mutex held.
func (n *implNotifier) update(ctx context.Context, text string, force bool) {
	if text == n.lastText {
		return
	}

	if n.messageID == 0 {
		id, err := n.messenger.SendMessage(ctx, n.chatID, text)
		if err != nil {
			n.logger.Warn(ctx, "send status message: %v", err)
			return
		}
		n.messageID = id
		n.lastText = text
		n.lastEditAt = n.now()
		return
	}

	if !force {
		if since := n.now().Sub(n.lastEditAt); since < n.minEditInterval {
			n.sleep(n.minEditInterval - since)
		}
	}

	err := n.messenger.EditMessage(ctx, n.chatID, n.messageID, text)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not modified") {
			return
		}
		n.logger.Warn(ctx, "edit status message: %v", err)
		// The message may have been deleted by the user; fall back to a
		// fresh one so the run keeps reporting.
		if id, serr := n.messenger.SendMessage(ctx, n.chatID, text); serr == nil {
			n.messageID = id
			n.lastText = text
			n.lastEditAt = n.now()
		}
		return
	}
	n.lastText = text
	n.lastEditAt = n.now()
}

func render(pct int, label string) string {
	filled := (pct*barSegments + 50) / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barSegments-filled)
	if label == "" {
		return fmt.Sprintf("▶️ Прогресс: %d%% [%s]", pct, bar)
	}
	return fmt.Sprintf("▶️ Прогресс: %d%% [%s] — %s", pct, bar, label)
}
