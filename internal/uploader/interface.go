package uploader

import "context"

// Uploader pushes a converted video to the distribution channel in the
// background. The returned Upload handle is joined later with a bounded
// wait; a failed or timed-out upload degrades to "no preview" instead of
// failing the run.
type Uploader interface {
	Start(ctx context.Context, path string) *Upload
}

// VideoSender sends one file to the broadcast destination and returns a
// durable, re-fetchable reference for it.
type VideoSender interface {
	SendVideo(ctx context.Context, path string) (string, error)
}
