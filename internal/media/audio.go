package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// ExtractAudio demuxes a video into 16kHz mono PCM WAV, the format the
// transcriber expects. Returns "" on tool failure.
func (c *implConverter) ExtractAudio(ctx context.Context, videoPath, outDir string) string {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		c.logger.Error(ctx, "create audio dir %s: %v", outDir, err)
		return ""
	}

	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	audioPath := filepath.Join(outDir, base+".wav")

	args := []string{
		"-i", videoPath,
		"-vn",
		"-acodec", "pcm_s16le",
		"-ar", "16000",
		"-ac", "1",
		"-y",
		audioPath,
	}

	if _, err := c.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		c.logger.Error(ctx, "ffmpeg extract audio %s: %v", videoPath, err)
		return ""
	}

	c.logger.Debug(ctx, "audio extracted: %s", audioPath)
	return audioPath
}
