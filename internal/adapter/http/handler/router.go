package handler

import (
	"card-payment-service/config"
	"card-payment-service/internal/adapter/http/middleware"
	redisStore "card-payment-service/internal/adapter/storage/redis"
	"card-payment-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Orchestrator   ports.PaymentOrchestrator
	AdminSvc       ports.WalletAdminService
	TokenSvc       ports.TokenService
	AuthCfg        config.AuthConfig
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.TokenSvc, deps.AuthCfg)
	auth := v1.Group("/auth")
	{
		auth.POST("/token", rl("auth_token"), authHandler.IssueToken)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	paymentHandler := NewPaymentHandler(deps.Orchestrator)
	walletHandler := NewWalletHandler(deps.Orchestrator, deps.AdminSvc)
	webPaymentHandler := NewWebPaymentHandler(deps.Orchestrator, deps.AdminSvc)

	cards := v1.Group("/cards", jwtAuth)
	{
		cards.POST("/validate", rl("validation"), paymentHandler.ValidateCard)
	}

	wallets := v1.Group("/wallets", jwtAuth)
	{
		wallets.POST("", rl("wallets"), walletHandler.CreateWallet)
		wallets.GET("/:wallet_id", rl("wallets"), walletHandler.GetWallet)
		wallets.GET("/:wallet_id/local", rl("wallets"), walletHandler.GetLocalWallet)
		wallets.PUT("/:wallet_id", rl("wallets"), walletHandler.UpdateWallet)
		wallets.DELETE("/:wallet_id", rl("wallets"), walletHandler.DeleteWallet)
		wallets.GET("/:wallet_id/transactions", rl("wallets"), walletHandler.ListTransactions)
		wallets.POST("/:wallet_id/payments", rl("payments"), paymentHandler.PayFromWallet)
	}

	webPayments := v1.Group("/web-payments", jwtAuth)
	{
		webPayments.POST("", rl("payments"), webPaymentHandler.StartWebPayment)
		webPayments.POST("/:token/confirm", rl("payments"), webPaymentHandler.ConfirmWebPayment)
	}

	transactions := v1.Group("/transactions", jwtAuth)
	{
		transactions.GET("/:token", rl("wallets"), webPaymentHandler.GetTransaction)
	}

	return r
}
