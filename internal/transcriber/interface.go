package transcriber

import "context"

// Transcriber converts a waveform into text. Model failure degrades to
// an empty transcript instead of an error; partial recipe data is still
// worth extracting from the description alone.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) string
}
