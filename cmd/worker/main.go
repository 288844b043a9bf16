// The worker runs the subscription expiry sweep on a fixed interval. It is a
// separate process so a wedged API server never stops expirations, and vice
// versa. The sweep is idempotent; overlapping runs are harmless.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/menuqr-inc/menuqr/internal/application/subscription/usecases"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/config"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/database"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/repository"
	"github.com/menuqr-inc/menuqr/internal/shared/biztime"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
)

func main() {
	configPath := os.Getenv("MENUQR_CONFIG")

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	}); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.App.Timezone); err != nil {
		log.Fatalw("failed to initialize timezone", "error", err)
	}

	interval, err := time.ParseDuration(cfg.Worker.SweepInterval)
	if err != nil || interval <= 0 {
		log.Fatalw("invalid sweep interval", "value", cfg.Worker.SweepInterval, "error", err)
	}

	gormDB, err := database.Connect(cfg.Database, false)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}

	subscriptionRepo := repository.NewSubscriptionRepository(gormDB)
	expireUC := usecases.NewExpireSubscriptionsUseCase(subscriptionRepo, biztime.NewSystemClock(), log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sweep := func() {
		expired, err := expireUC.Execute(ctx)
		if err != nil {
			log.Errorw("expiry sweep failed", "error", err)
			return
		}
		log.Infow("expiry sweep complete", "expired", expired)
	}

	log.Infow("expiry worker started", "interval", interval)
	sweep()

	for {
		select {
		case <-ticker.C:
			sweep()
		case sig := <-sigChan:
			log.Infow("expiry worker stopping", "signal", sig.String())
			return
		}
	}
}
