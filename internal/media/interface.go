package media

import "context"

// Converter re-encodes videos for delivery and demuxes audio for
// transcription. Both operations are blocking external-tool calls and
// report unrecoverable failure as an empty path.
type Converter interface {
	Convert(ctx context.Context, videoPath string) string
	ExtractAudio(ctx context.Context, videoPath, outDir string) string
}
