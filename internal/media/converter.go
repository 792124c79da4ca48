package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Convert re-encodes a video to delivery-sized H.264 MP4. The probe runs
// first; a probe failure aborts with "". The output resolution is the
// even-corrected source scaled down by cfg.ScaleFactor per dimension and
// even-corrected again (libx264 rejects odd dimensions).
func (c *implConverter) Convert(ctx context.Context, videoPath string) string {
	width, height, err := c.probeResolution(ctx, videoPath)
	if err != nil {
		c.logger.Error(ctx, "probe %s: %v", videoPath, err)
		return ""
	}

	width, height = CorrectResolution(width, height)
	newWidth := int(float64(width) * c.cfg.ScaleFactor)
	newHeight := int(float64(height) * c.cfg.ScaleFactor)
	newWidth, newHeight = CorrectResolution(newWidth, newHeight)

	c.logger.Debug(ctx, "converting %s: %dx%d -> %dx%d", videoPath, width, height, newWidth, newHeight)

	outputPath := strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + "_converted.mp4"
	args := []string{
		"-i", videoPath,
		"-vf", fmt.Sprintf("scale=%d:%d", newWidth, newHeight),
		"-c:v", "libx264",
		"-c:a", "aac",
		"-crf", strconv.Itoa(c.cfg.CRF),
		"-y",
		outputPath,
	}

	if _, err := c.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		c.logger.Error(ctx, "ffmpeg convert %s: %v", videoPath, err)
		return ""
	}

	c.logger.Info(ctx, "converted: %s", outputPath)
	return outputPath
}

// probeResolution reads the first video stream's dimensions via ffprobe.
func (c *implConverter) probeResolution(ctx context.Context, videoPath string) (int, int, error) {
	args := []string{
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height",
		"-of", "csv=s=x:p=0",
		videoPath,
	}

	out, err := c.executor.Execute(ctx, "ffprobe", args...)
	if err != nil {
		return 0, 0, err
	}

	parts := strings.Split(strings.TrimSpace(out), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("unexpected ffprobe output %q", strings.TrimSpace(out))
	}
	width, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("parse width %q: %w", parts[0], err)
	}
	height, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("parse height %q: %w", parts[1], err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("degenerate resolution %dx%d", width, height)
	}

	return width, height, nil
}

// CorrectResolution floors both dimensions to even values. Idempotent.
func CorrectResolution(width, height int) (int, int) {
	if width%2 != 0 {
		width--
	}
	if height%2 != 0 {
		height--
	}
	return width, height
}
