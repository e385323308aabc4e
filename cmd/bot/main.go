package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/tabletally/internal/common/clock"
	"github.com/KirkDiggler/tabletally/internal/config"
	"github.com/KirkDiggler/tabletally/internal/handlers/discord"
	"github.com/KirkDiggler/tabletally/internal/handlers/web"
	"github.com/KirkDiggler/tabletally/internal/repositories/ledger"
	"github.com/KirkDiggler/tabletally/internal/services/messaging"
	"github.com/KirkDiggler/tabletally/internal/services/notify"
	"github.com/KirkDiggler/tabletally/internal/services/scoring"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize repository
	ledgerRepo, closeRepo, err := openLedgerRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to create ledger repository: %v", err)
	}
	defer closeRepo()

	broker, err := notify.New(&notify.Config{})
	if err != nil {
		log.Fatalf("Failed to create notification broker: %v", err)
	}

	// Initialize services
	scoringSvc, err := scoring.New(&scoring.Config{
		LedgerRepo:       ledgerRepo,
		Notifier:         broker,
		Clock:            clock.New(),
		DefaultAvatarURL: cfg.DefaultAvatarURL,
	})
	if err != nil {
		log.Fatalf("Failed to create scoring service: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	var server *web.Server
	serverErrs := make(chan error, 1)
	if cfg.WebEnabled {
		server, err = web.New(&web.Config{
			Addr:           cfg.WebAddr,
			ScoringService: scoringSvc,
			Events:         broker,
		})
		if err != nil {
			log.Fatalf("Failed to create web server: %v", err)
		}

		go func() {
			if err := server.Start(); err != nil {
				serverErrs <- err
			}
		}()
	}

	var bot *discord.Bot
	if cfg.BotEnabled {
		bot, err = discord.New(&discord.Config{
			Token:            cfg.DiscordToken,
			ApplicationID:    cfg.ApplicationID,
			GuildID:          cfg.GuildID,
			PublicURL:        cfg.PublicURL,
			ScoringService:   scoringSvc,
			MessagingService: messagingSvc,
		})
		if err != nil {
			log.Fatalf("Failed to create Discord bot: %v", err)
		}

		// Start the bot
		if err := bot.Start(); err != nil {
			log.Fatalf("Failed to start Discord bot: %v", err)
		}
	}

	log.Println("Running. Press CTRL-C to exit.")

	// Wait for interrupt signal or a failed web server to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	if err := waitForShutdown(sc, serverErrs); err != nil {
		log.Printf("Shutting down after web server failure: %v", err)
	}

	if server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Error stopping web server: %v", err)
		}
		cancel()
	}

	// Shutdown the bot
	if bot != nil {
		if err := bot.Stop(); err != nil {
			log.Printf("Error stopping bot: %v", err)
		}
	}

	log.Println("Bot has been shut down")
}

// waitForShutdown blocks until a signal arrives or the web server fails.
// It returns the server error, or nil for a signal.
func waitForShutdown(signals <-chan os.Signal, serverErrs <-chan error) error {
	select {
	case sig := <-signals:
		log.Printf("Received %s", sig)
		return nil
	case err := <-serverErrs:
		return err
	}
}

// openLedgerRepository builds the configured storage backend and a function releasing it
func openLedgerRepository(cfg *config.Config) (ledger.Repository, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		repo, err := ledger.NewRedis(&ledger.RedisConfig{
			RedisClient: redisClient,
			Key:         cfg.RedisKey,
		})
		if err != nil {
			_ = redisClient.Close()
			return nil, nil, err
		}

		log.Printf("Using Redis ledger at %s (key %s)", cfg.RedisAddr, cfg.RedisKey)
		return repo, func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Error closing Redis client: %v", err)
			}
		}, nil

	case config.StoreBolt:
		repo, err := ledger.OpenBolt(&ledger.BoltConfig{
			Path: cfg.BoltPath,
		})
		if err != nil {
			return nil, nil, err
		}

		log.Printf("Using bbolt ledger at %s", cfg.BoltPath)
		return repo, func() {
			if err := repo.Close(); err != nil {
				log.Printf("Error closing bbolt ledger: %v", err)
			}
		}, nil

	case config.StoreFile:
		repo, err := ledger.NewFile(&ledger.FileConfig{
			Path: cfg.StatsPath,
		})
		if err != nil {
			return nil, nil, err
		}

		log.Printf("Using JSON ledger at %s", cfg.StatsPath)
		return repo, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.StoreBackend)
	}
}
