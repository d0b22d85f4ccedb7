package routes

import (
	"pointscontrol/internal/handlers"
	"pointscontrol/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupUniswapV3EventRoutes sets up routes for the LP event log and
// derived balance queries
func SetupUniswapV3EventRoutes(r *gin.Engine) {
	events := r.Group("/uniswapv3-events")
	{
		events.GET("", handlers.ListUniswapV3Events)
		events.GET("/tx/:tx_hash", handlers.GetUniswapV3Event)
		events.POST("/enqueue", handlers.EnqueueUniswapV3Event)
	}

	// The balance query aggregates over the full event history, so keep a
	// rate limit in front of it
	balance := r.Group("/uniswapv3-events/balance-at-time")
	balance.Use(middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: 10,
		Burst:             20,
	}))
	{
		balance.GET("", handlers.GetLPBalanceAtTime)
	}
}
