package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pcb-partgraph/config"
	telegram "pcb-partgraph/internal/api"
	"pcb-partgraph/internal/container"
	"pcb-partgraph/internal/logger"
)

func main() {
	fs := config.NewFlagSet("bot")
	fs.String("telegram_token", "", "Telegram bot token (or TELEGRAM_TOKEN)")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	if cfg.TelegramToken == "" {
		log.Fatal().Msg("TELEGRAM_TOKEN is required")
	}

	// Собираем сервисы приложения
	appContainer := container.New(cfg, log)

	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create bot")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("mask_backend", cfg.MaskBackend).Msg("bot is running")
	if err := bot.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("bot stopped")
	}
	log.Info().Msg("bot stopped")
}
