package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/config"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/downloader"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/janitor"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/logger"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/media"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/notifier"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/pipeline"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/recipe"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/session"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/telegram"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/transcriber"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/uploader"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the yaml config")
	flag.Parse()

	ctx := context.Background()

	// Secrets live in .env, everything else in the yaml config.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Recipe Bot")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Channel: %d", cfg.Telegram.ChannelID)
	log.Info(ctx, "Max concurrent runs: %d", cfg.Performance.MaxConcurrent)

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Error(ctx, "TELEGRAM_BOT_TOKEN is not set")
		os.Exit(1)
	}
	apiKeys := splitKeys(os.Getenv("GEMINI_API_KEYS"))
	if len(apiKeys) == 0 {
		log.Error(ctx, "GEMINI_API_KEYS is not set")
		os.Exit(1)
	}

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	api, err := telegram.Connect(token, log)
	if err != nil {
		log.Error(ctx, "Failed to connect to Telegram: %v", err)
		os.Exit(1)
	}

	exec := executor.New()
	sessions := session.NewMemoryStore()
	sweeper := janitor.New(cfg, log)
	messenger := telegram.NewMessenger(api)
	sender := telegram.NewChannelSender(api, cfg.Telegram.ChannelID, log)

	// SendRecipe runs on the bot built below; runs only start once the
	// update loop is up, so the late binding is safe.
	var bot *telegram.Bot
	orch := pipeline.New(cfg, pipeline.Deps{
		Resolver:    downloader.New(cfg, exec, log),
		Converter:   media.New(cfg, exec, log),
		Transcriber: transcriber.New(cfg, exec, log),
		Extractor:   recipe.New(apiKeys, cfg.Gemini.Model, log),
		Uploader:    uploader.New(sender, log),
		Notifier: func(chatID int64) notifier.Notifier {
			return notifier.New(messenger, chatID, log)
		},
		Sessions: sessions,
		Remover:  sweeper,
		Logger:   log,
		OnReady: func(ctx context.Context, chatID int64, draft session.RecipeDraft) {
			bot.SendRecipe(ctx, chatID, draft)
		},
	})

	bot = telegram.New(api, orch, sessions, log)

	go sweeper.Run(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Recipe bot is ready")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Bot error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Recipe bot stopped")
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// ensureDirectories creates the artifact directories if they don't exist.
func ensureDirectories(cfg *config.Config) error {
	for _, dir := range []string{cfg.Paths.Videos, cfg.Paths.Audio} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
