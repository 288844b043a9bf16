// Package http wires the gin engine: middleware, handlers, and routes.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menuqr-inc/menuqr/internal/infrastructure/ratelimit"
	"github.com/menuqr-inc/menuqr/internal/interfaces/http/handlers"
	"github.com/menuqr-inc/menuqr/internal/interfaces/http/middleware"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
)

type Router struct {
	engine *gin.Engine

	authMiddleware         *middleware.AuthMiddleware
	subscriptionMiddleware *middleware.SubscriptionMiddleware
	rateLimiter            ratelimit.RateLimiter

	authHandler         *handlers.AuthHandler
	menuHandler         *handlers.MenuHandler
	publicHandler       *handlers.PublicHandler
	subscriptionHandler *handlers.SubscriptionHandler
	adminHandler        *handlers.AdminHandler

	logger logger.Interface
}

type RouterConfig struct {
	Mode           string
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	authMiddleware *middleware.AuthMiddleware,
	subscriptionMiddleware *middleware.SubscriptionMiddleware,
	rateLimiter ratelimit.RateLimiter,
	authHandler *handlers.AuthHandler,
	menuHandler *handlers.MenuHandler,
	publicHandler *handlers.PublicHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	adminHandler *handlers.AdminHandler,
	log logger.Interface,
) *Router {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.AllowedOrigins))

	r := &Router{
		engine:                 engine,
		authMiddleware:         authMiddleware,
		subscriptionMiddleware: subscriptionMiddleware,
		rateLimiter:            rateLimiter,
		authHandler:            authHandler,
		menuHandler:            menuHandler,
		publicHandler:          publicHandler,
		subscriptionHandler:    subscriptionHandler,
		adminHandler:           adminHandler,
		logger:                 log,
	}
	r.registerRoutes()
	return r
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) registerRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	// Unauthenticated surface: the diner menu page and the pricing page.
	api.GET("/public/menu/:slug", r.publicHandler.GetMenu)
	api.GET("/subscription/plans", r.subscriptionHandler.ListPlans)

	auth := api.Group("/auth")
	{
		loginLimit := middleware.RateLimit(r.rateLimiter, ratelimit.LoginLimits, r.logger)

		auth.POST("/register", loginLimit, r.authHandler.Register)
		auth.POST("/login", loginLimit, r.authHandler.Login)
		auth.POST("/forgot-password", loginLimit, r.authHandler.ForgotPassword)
		auth.POST("/reset-password", loginLimit, r.authHandler.ResetPassword)

		auth.GET("/profile", r.authMiddleware.RequireAuth(), r.authHandler.GetProfile)
		auth.PUT("/profile", r.authMiddleware.RequireAuth(), r.authHandler.UpdateProfile)
	}

	// Subscription routes stay reachable for lapsed tenants so they can
	// renew. Only authentication is required.
	sub := api.Group("/subscription", r.authMiddleware.RequireAuth())
	{
		sub.GET("", r.subscriptionHandler.GetSubscription)
		sub.POST("/create-order", r.subscriptionHandler.CreateOrder)
		sub.POST("/verify-payment", r.subscriptionHandler.VerifyPayment)
	}

	menu := api.Group("/menu", r.authMiddleware.RequireAuth())
	{
		// Reading the editor view works while lapsed; every mutation is
		// behind the subscription gate.
		menu.GET("", r.menuHandler.GetMenu)

		gated := menu.Group("", r.subscriptionMiddleware.RequireActiveSubscription())
		{
			gated.POST("/categories", r.menuHandler.CreateCategory)
			gated.PUT("/categories/:id", r.menuHandler.UpdateCategory)
			gated.DELETE("/categories/:id", r.menuHandler.DeleteCategory)

			gated.POST("/items", r.menuHandler.CreateItem)
			gated.PUT("/items/:id", r.menuHandler.UpdateItem)
			gated.DELETE("/items/:id", r.menuHandler.DeleteItem)
		}
	}

	admin := api.Group("/admin", r.authMiddleware.RequireAuth(), r.authMiddleware.RequireAdmin())
	{
		admin.GET("/stats", r.adminHandler.GetStats)
		admin.GET("/restaurants", r.adminHandler.ListRestaurants)
		admin.GET("/subscriptions", r.adminHandler.ListSubscriptions)

		admin.GET("/subscription-plans", r.adminHandler.ListPlans)
		admin.PUT("/subscription-plans/:id", r.adminHandler.UpdatePlan)

		admin.POST("/restaurants/:id/extend-subscription", r.adminHandler.ExtendSubscription)
		admin.POST("/restaurants/:id/grant-free-month", r.adminHandler.GrantFreeMonth)

		admin.POST("/create-admin", r.adminHandler.CreateAdmin)
	}
}
