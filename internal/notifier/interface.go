package notifier

import "context"

// Notifier maintains one coalesced status message for a pipeline run.
// Info creates the message on first use; Progress and Error edit it in
// place. Error closes the notifier: a failed run produces exactly one
// explanatory message.
type Notifier interface {
	Info(ctx context.Context, text string)
	Progress(ctx context.Context, pct int, text string)
	Error(ctx context.Context, text string)
}

// Messenger is the transport the status message lives on.
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string) (int, error)
	EditMessage(ctx context.Context, chatID int64, messageID int, text string) error
}

// Factory builds a per-run Notifier bound to one reply target. Each run
// owns exactly one status-message handle, so updates from concurrent
// runs never interleave.
type Factory func(chatID int64) Notifier
