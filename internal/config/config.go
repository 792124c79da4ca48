package config

import "fmt"

type Config struct {
	Telegram    TelegramConfig    `yaml:"telegram"`
	Downloader  DownloaderConfig  `yaml:"downloader"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Paths       PathsConfig       `yaml:"paths"`
	Cleanup     CleanupConfig     `yaml:"cleanup"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type TelegramConfig struct {
	// ChannelID is the broadcast channel converted videos are re-posted to.
	ChannelID int64 `yaml:"channel_id"`
	// UploadWaitSeconds bounds how long a run waits for the channel upload
	// before proceeding without a preview.
	UploadWaitSeconds int `yaml:"upload_wait_seconds"`
}

type DownloaderConfig struct {
	BinaryPath  string `yaml:"binary_path"`
	MaxAttempts int    `yaml:"max_attempts"`
	RateLimit   string `yaml:"rate_limit"`
	// CookiesFile holds an authenticated Instagram session for the
	// rate-limit fallback. Optional; without it the fallback is disabled.
	CookiesFile string `yaml:"cookies_file"`
}

type FFmpegConfig struct {
	CRF         int     `yaml:"crf"`
	ScaleFactor float64 `yaml:"scale_factor"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
}

type PathsConfig struct {
	Videos string `yaml:"videos"`
	Audio  string `yaml:"audio"`
}

type CleanupConfig struct {
	SweepIntervalMinutes int `yaml:"sweep_interval_minutes"`
	MaxAgeMinutes        int `yaml:"max_age_minutes"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

func (c *Config) Validate() error {
	if c.Telegram.ChannelID == 0 {
		return fmt.Errorf("telegram.channel_id is required")
	}
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Paths.Videos == "" {
		return fmt.Errorf("paths.videos is required")
	}

	if c.Paths.Audio == "" {
		c.Paths.Audio = "data/audio"
	}
	if c.Telegram.UploadWaitSeconds == 0 {
		c.Telegram.UploadWaitSeconds = 10
	}
	if c.Downloader.BinaryPath == "" {
		c.Downloader.BinaryPath = "yt-dlp"
	}
	if c.Downloader.MaxAttempts == 0 {
		c.Downloader.MaxAttempts = 3
	}
	if c.Downloader.RateLimit == "" {
		c.Downloader.RateLimit = "2M"
	}
	if c.FFmpeg.CRF == 0 {
		c.FFmpeg.CRF = 32
	}
	if c.FFmpeg.ScaleFactor == 0 {
		c.FFmpeg.ScaleFactor = 0.6
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "ru"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Cleanup.SweepIntervalMinutes == 0 {
		c.Cleanup.SweepIntervalMinutes = 15
	}
	if c.Cleanup.MaxAgeMinutes == 0 {
		c.Cleanup.MaxAgeMinutes = 15
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
