package routes

import (
	coreport "github.com/tipstream/tip-ledger/internal/domain/port/core"
	"github.com/tipstream/tip-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/tipstream/tip-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	userHandler *handler.UserHandler,
	tipHandler *handler.TipHandler,
	externalHandler *handler.ExternalHandler,
	webhookHandler *handler.WebhookHandler,
	healthHandler *handler.HealthHandler,
) {
	router.GET("/health", healthHandler.Check)

	userRoutes := router.Group("/users")
	{
		// POST /users
		userRoutes.POST("", userHandler.CreateUser)

		// GET /users/:userId/balance
		userRoutes.GET("/:userId/balance", userHandler.GetBalance)

		// PUT /users/:userId/permissions
		userRoutes.PUT("/:userId/permissions", userHandler.SetPermissions)

		// GET /users/:userId/transactions
		userRoutes.GET("/:userId/transactions", userHandler.GetTransactionHistory)

		// POST /users/:userId/tips
		userRoutes.POST("/:userId/tips", tipHandler.SendTip)

		// POST /users/:userId/funding
		userRoutes.POST("/:userId/funding", externalHandler.CreateFunding)

		// POST /users/:userId/withdrawals
		userRoutes.POST("/:userId/withdrawals", externalHandler.CreateWithdrawal)
	}

	// POST /webhooks/payments
	router.POST("/webhooks/payments", webhookHandler.HandlePaymentEvent)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
