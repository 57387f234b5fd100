package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/rs/zerolog/log"

	"ConflictBot/handler"
	"ConflictBot/quiz"
	"ConflictBot/repo"
)

func main() {
	botToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	if botToken == "" {
		log.Fatal().Msg("TELEGRAM_BOT_TOKEN environment variable not set")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	bank := quiz.DefaultBank()
	flow := quiz.NewFlow(quiz.NewStore(), bank)

	archive := initializeArchive(ctx)

	h := handler.NewQuizBotHandler(flow, bank, archive)

	opts := []bot.Option{
		bot.WithDefaultHandler(h.Handler),
	}

	b, err := bot.New(botToken, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating bot")
	}
	h.Register(b)

	if webhookURL := os.Getenv("WEBHOOK_URL"); webhookURL != "" {
		startWebhook(ctx, b, webhookURL)
	} else {
		// Drop anything queued while the bot was down; the event guard
		// handles redelivered answers, but weeks-old taps are just noise.
		if _, err := b.DeleteWebhook(ctx, &bot.DeleteWebhookParams{DropPendingUpdates: true}); err != nil {
			log.Error().Err(err).Msg("error deleting webhook")
		}
		log.Info().Msg("starting long polling")
		b.Start(ctx)
	}

	log.Info().Msg("bot stopped")
}

func startWebhook(ctx context.Context, b *bot.Bot, webhookURL string) {
	if _, err := b.SetWebhook(ctx, &bot.SetWebhookParams{URL: webhookURL}); err != nil {
		log.Fatal().Err(err).Msg("error setting webhook")
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{Addr: addr, Handler: b.WebhookHandler()}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("webhook server error")
		}
	}()

	log.Info().Str("addr", addr).Str("url", webhookURL).Msg("starting webhook")
	b.StartWebhook(ctx)
}

// initializeArchive connects the optional Firebase result archive. The
// bot runs fine without it; /history is just disabled.
func initializeArchive(ctx context.Context) handler.ResultArchive {
	serviceAccountKeyPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_KEY_PATH")
	databaseURL := os.Getenv("FIREBASE_DATABASE_URL")
	if serviceAccountKeyPath == "" || databaseURL == "" {
		log.Warn().Msg("firebase not configured, result history disabled")
		return nil
	}

	archive, err := repo.NewFirebaseConnector(ctx, serviceAccountKeyPath, databaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing Firebase")
	}
	return archive
}
