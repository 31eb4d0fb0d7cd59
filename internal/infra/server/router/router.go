// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/slaxamine/savvy-gemini-wallet/internal/integration/entrypoint/controller"
	"github.com/slaxamine/savvy-gemini-wallet/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	walletController      *controller.WalletController
	transactionController *controller.TransactionController
	categoryController    *controller.CategoryController
	dashboardController   *controller.DashboardController
	assistantController   *controller.AssistantController
	askRateLimiter        *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	walletController *controller.WalletController,
	transactionController *controller.TransactionController,
	categoryController *controller.CategoryController,
	dashboardController *controller.DashboardController,
	assistantController *controller.AssistantController,
	askRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		walletController:      walletController,
		transactionController: transactionController,
		categoryController:    categoryController,
		dashboardController:   dashboardController,
		assistantController:   assistantController,
		askRateLimiter:        askRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Wallet routes
		if r.walletController != nil {
			wallet := v1.Group("/wallet")
			{
				wallet.GET("/summary", r.walletController.Summary)
				wallet.PUT("/balance", r.walletController.UpdateBalance)
			}
		}

		// Transaction routes
		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Category routes
		if r.categoryController != nil {
			categories := v1.Group("/categories")
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		// Dashboard routes
		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			{
				dashboard.GET("/totals", r.dashboardController.Totals)
				dashboard.GET("/category-breakdown", r.dashboardController.CategoryBreakdown)
				dashboard.GET("/monthly-overview", r.dashboardController.MonthlyOverview)
				dashboard.GET("/expenses-over-time", r.dashboardController.ExpensesOverTime)
			}
		}

		// Assistant routes (rate limited)
		if r.assistantController != nil && r.askRateLimiter != nil {
			assistant := v1.Group("/assistant")
			{
				assistant.POST("/ask", r.askRateLimiter.Middleware(), r.assistantController.Ask)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
