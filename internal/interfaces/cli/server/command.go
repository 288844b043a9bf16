// Package server implements the "menuqr server" command.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	adminusecases "github.com/menuqr-inc/menuqr/internal/application/admin/usecases"
	authusecases "github.com/menuqr-inc/menuqr/internal/application/auth/usecases"
	menuusecases "github.com/menuqr-inc/menuqr/internal/application/menu/usecases"
	subusecases "github.com/menuqr-inc/menuqr/internal/application/subscription/usecases"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/auth"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/config"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/database"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/email"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/migration"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/payment"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/ratelimit"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/repository"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/seed"
	httprouter "github.com/menuqr-inc/menuqr/internal/interfaces/http"
	"github.com/menuqr-inc/menuqr/internal/interfaces/http/handlers"
	"github.com/menuqr-inc/menuqr/internal/interfaces/http/middleware"
	"github.com/menuqr-inc/menuqr/internal/shared/biztime"
	"github.com/menuqr-inc/menuqr/internal/shared/db"
	"github.com/menuqr-inc/menuqr/internal/shared/lock"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
	"github.com/menuqr-inc/menuqr/internal/shared/services/markdown"
)

var (
	configPath string
	debug      bool
	skipSeed   bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the MenuQR API server: migrations, seeding, and the HTTP listener.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging and SQL tracing")
	cmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "Skip seeding default plans on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
		Debug:      debug,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.App.Timezone); err != nil {
		return fmt.Errorf("failed to initialize timezone: %w", err)
	}

	gin.DefaultWriter = io.Discard

	gormDB, err := database.Connect(cfg.Database, debug)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	strategy, err := migration.NewStrategy(cfg.Database, gormDB, log)
	if err != nil {
		return fmt.Errorf("failed to select migration strategy: %w", err)
	}
	if err := strategy.Migrate(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// Shared infrastructure.
	clock := biztime.NewSystemClock()
	txManager := db.NewTransactionManager(gormDB)
	tenantMu := lock.NewKeyedMutex()
	sanitizer := markdown.NewService()
	hasher := auth.NewBcryptPasswordHasher(0)
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	mailer := email.NewSMTPService(cfg.Email)
	gateway := payment.NewRazorpayGateway(cfg.Razorpay, log)
	rateLimiter := ratelimit.NewRedisRateLimiter(redisClient)

	// Repositories.
	userRepo := repository.NewUserRepository(gormDB)
	restaurantRepo := repository.NewRestaurantRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	itemRepo := repository.NewItemRepository(gormDB)
	subscriptionRepo := repository.NewSubscriptionRepository(gormDB)
	planRepo := repository.NewPlanRepository(gormDB)

	if !skipSeed {
		seeder := seed.NewSeeder(planRepo, userRepo, hasher, log)
		if err := seeder.SeedPlans(context.Background()); err != nil {
			return fmt.Errorf("failed to seed plans: %w", err)
		}
	}

	// Use cases.
	registerUC := authusecases.NewRegisterUseCase(userRepo, restaurantRepo, hasher,
		jwtService, txManager, cfg.App.BaseURL, log)
	loginUC := authusecases.NewLoginUseCase(userRepo, restaurantRepo, hasher, jwtService, log)
	getProfileUC := authusecases.NewGetProfileUseCase(userRepo, restaurantRepo)
	updateProfileUC := authusecases.NewUpdateProfileUseCase(userRepo, restaurantRepo, cfg.App.BaseURL)
	forgotPasswordUC := authusecases.NewForgotPasswordUseCase(userRepo, mailer, clock, cfg.App.BaseURL, log)
	resetPasswordUC := authusecases.NewResetPasswordUseCase(userRepo, hasher, clock, log)
	createAdminUC := authusecases.NewCreateAdminUseCase(userRepo, hasher, log)

	getMenuUC := menuusecases.NewGetMenuUseCase(categoryRepo, itemRepo)
	createCategoryUC := menuusecases.NewCreateCategoryUseCase(categoryRepo, sanitizer, log)
	updateCategoryUC := menuusecases.NewUpdateCategoryUseCase(categoryRepo, sanitizer)
	deleteCategoryUC := menuusecases.NewDeleteCategoryUseCase(categoryRepo, itemRepo, txManager, log)
	createItemUC := menuusecases.NewCreateItemUseCase(categoryRepo, itemRepo, sanitizer, log)
	updateItemUC := menuusecases.NewUpdateItemUseCase(categoryRepo, itemRepo, sanitizer)
	deleteItemUC := menuusecases.NewDeleteItemUseCase(categoryRepo, itemRepo, log)
	getPublicMenuUC := menuusecases.NewGetPublicMenuUseCase(restaurantRepo, subscriptionRepo,
		categoryRepo, itemRepo, clock)

	listPlansUC := subusecases.NewListPlansUseCase(planRepo)
	getSubscriptionUC := subusecases.NewGetSubscriptionUseCase(subscriptionRepo, clock)
	createOrderUC := subusecases.NewCreateOrderUseCase(planRepo, gateway, log)
	verifyPaymentUC := subusecases.NewVerifyPaymentUseCase(subscriptionRepo, planRepo,
		gateway, txManager, tenantMu, clock, log)
	updatePlanUC := subusecases.NewUpdatePlanUseCase(planRepo, log)
	extendUC := subusecases.NewExtendSubscriptionUseCase(subscriptionRepo, restaurantRepo, tenantMu, log)
	grantFreeMonthUC := subusecases.NewGrantFreeMonthUseCase(subscriptionRepo, planRepo,
		restaurantRepo, txManager, tenantMu, clock, log)

	getStatsUC := adminusecases.NewGetStatsUseCase(restaurantRepo, userRepo, subscriptionRepo, clock)
	listRestaurantsUC := adminusecases.NewListRestaurantsUseCase(restaurantRepo, subscriptionRepo)
	listSubscriptionsUC := adminusecases.NewListSubscriptionsUseCase(subscriptionRepo)

	// HTTP layer.
	authMW := middleware.NewAuthMiddleware(jwtService, log)
	subscriptionMW := middleware.NewSubscriptionMiddleware(restaurantRepo, subscriptionRepo, clock, log)

	router := httprouter.NewRouter(
		httprouter.RouterConfig{Mode: cfg.Server.Mode, AllowedOrigins: []string{"*"}},
		authMW,
		subscriptionMW,
		rateLimiter,
		handlers.NewAuthHandler(registerUC, loginUC, getProfileUC, updateProfileUC,
			forgotPasswordUC, resetPasswordUC),
		handlers.NewMenuHandler(getMenuUC, createCategoryUC, updateCategoryUC, deleteCategoryUC,
			createItemUC, updateItemUC, deleteItemUC, restaurantRepo),
		handlers.NewPublicHandler(getPublicMenuUC),
		handlers.NewSubscriptionHandler(listPlansUC, getSubscriptionUC, createOrderUC,
			verifyPaymentUC, restaurantRepo),
		handlers.NewAdminHandler(getStatsUC, listRestaurantsUC, listSubscriptionsUC,
			listPlansUC, updatePlanUC, extendUC, grantFreeMonthUC, createAdminUC),
		log,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "address", srv.Addr, "mode", cfg.Server.Mode,
			"payments_enabled", cfg.Razorpay.Enabled())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Infow("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Infow("server stopped")
	return nil
}
