package handler

import (
	"digiteen-wallet/internal/adapter/http/middleware"
	redisStore "digiteen-wallet/internal/adapter/storage/redis"
	"digiteen-wallet/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	LedgerSvc      ports.LedgerService
	WorkflowSvc    ports.WorkflowService
	CardSvc        ports.CardService
	InvitationSvc  ports.InvitationService
	ProfileSvc     ports.ProfileService
	TokenSvc       ports.TokenService
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

	// Health check (deep — verifies PostgreSQL + Redis)
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
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	walletHandler := NewWalletHandler(deps.LedgerSvc, deps.WorkflowSvc)
	cardHandler := NewCardHandler(deps.CardSvc)
	invitationHandler := NewInvitationHandler(deps.InvitationSvc)
	teenHandler := NewTeenHandler(deps.ProfileSvc)

	wallet := v1.Group("/wallet", jwtAuth)
	{
		wallet.GET("/balance", rl("wallet_read"), walletHandler.GetBalance)
		wallet.GET("/activities", rl("wallet_read"), walletHandler.ListActivities)
		wallet.GET("/stats", rl("wallet_read"), walletHandler.GetStats)
		wallet.GET("/receipts/:id", rl("wallet_read"), walletHandler.GetReceipt)
		wallet.POST("/charge", rl("wallet_write"), walletHandler.Charge)
		wallet.POST("/deposit-requests", rl("wallet_write"), walletHandler.RequestDeposit)
		wallet.POST("/transfers/saving", rl("wallet_write"), walletHandler.TransferToSaving)
		wallet.POST("/digits/purchase", rl("wallet_write"), walletHandler.PurchaseDigits)
	}

	cards := v1.Group("/cards", jwtAuth)
	{
		cards.GET("", rl("cards"), cardHandler.Get)
		cards.POST("/request", rl("cards"), cardHandler.Request)
		cards.POST("/approve", rl("cards"), cardHandler.Approve)
		cards.POST("/activate", rl("cards"), cardHandler.Activate)
	}

	invitations := v1.Group("/invitations", jwtAuth)
	{
		invitations.GET("", rl("invitations"), invitationHandler.Get)
		invitations.POST("", rl("invitations"), invitationHandler.Send)
	}

	teens := v1.Group("/teens", jwtAuth)
	{
		teens.GET("/me", rl("wallet_read"), teenHandler.Me)
	}

	return r
}
