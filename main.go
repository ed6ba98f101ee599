package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentry "github.com/getsentry/sentry-go"
	telego "github.com/mymmrac/telego"

	appBot "checkin-bot/bot"
	"checkin-bot/internal/checkin"
	"checkin-bot/internal/clock"
	"checkin-bot/internal/config"
	"checkin-bot/internal/database"
	"checkin-bot/internal/handlers"
	"checkin-bot/internal/locales"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Initialize localization bundle
	locales.Init(cfg.DefaultLanguage)

	// Initialize Sentry (if DSN is provided)
	err = sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		Release:          cfg.Version,
		EnableTracing:    true,
		TracesSampleRate: 1.0,
		Debug:            cfg.Debug,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	defer sentry.Flush(2 * time.Second)

	// Creating context for application lifecycle
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Pick the store: MongoDB when configured, local JSON file otherwise.
	var store checkin.Store
	var actionLogger database.UserActionLogger = database.NoopActionLogger{}
	if cfg.MongoDBURI != "" {
		client, db, err := database.ConnectDB(cfg)
		if err != nil {
			sentry.CaptureException(err)
			log.Fatal(err)
		}
		defer func() {
			if err = client.Disconnect(context.Background()); err != nil {
				log.Printf("Error disconnecting from MongoDB: %v", err)
				sentry.CaptureException(err)
			} else {
				log.Println("Disconnected from MongoDB.")
			}
		}()
		store = database.NewMongoStore(db)
		actionLogger = database.NewMongoActionLogger(db)
	} else {
		store = database.NewFileStore(cfg.DataFile)
	}

	// Reward policy variant comes from configuration.
	var policy checkin.RewardPolicy
	switch cfg.RewardPolicy {
	case config.RewardPolicyRandom:
		policy = checkin.NewRandomRewardPolicy(1, 30, nil)
	default:
		policy = checkin.NewStreakRewardPolicy()
	}

	// The engine loads the persisted data set once and owns it from here on.
	engine := checkin.NewEngine(ctx, store, clock.System(), policy)

	// Create message handler with dependencies
	messageHandler := handlers.NewMessageHandler(engine, actionLogger, cfg.RankLimit)

	// --- Bot Initialization ---
	var tgBot *telego.Bot
	if cfg.Debug {
		tgBot, err = telego.NewBot(cfg.BotToken, telego.WithDefaultDebugLogger())
	} else {
		tgBot, err = telego.NewBot(cfg.BotToken, telego.WithDefaultLogger(false, false))
	}
	if err != nil {
		sentry.CaptureException(err)
		log.Fatalf("Failed to create telego bot: %v", err)
	}

	updatesChan, err := tgBot.UpdatesViaLongPolling(ctx, nil)
	if err != nil {
		sentry.CaptureException(err)
		log.Fatalf("Failed to start long polling: %v", err)
	}

	// Create the bot wrapper
	bot, err := appBot.New(appBot.Deps{
		Bot:         tgBot,
		UpdatesChan: updatesChan,
		Debug:       cfg.Debug,
		Handler:     messageHandler,
	})
	if err != nil {
		sentry.CaptureException(err)
		log.Fatal(err)
	}

	// Start the bot wrapper's processing loop in a separate goroutine
	go bot.Start(ctx)

	// Wait for context cancellation (e.g., SIGINT, SIGTERM)
	<-ctx.Done()

	log.Println("Shutting down bot...")
	bot.Stop()

	log.Println("Bot shutdown complete.")
}
