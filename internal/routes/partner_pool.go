package routes

import (
	"pointscontrol/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPartnerPoolRoutes sets up all routes related to Partner Pool management
func SetupPartnerPoolRoutes(r *gin.Engine) {
	pool := r.Group("/partner-pools")
	{
		pool.GET("", handlers.ListPartnerPools)
		pool.GET("/id/:id", handlers.GetPartnerPool)
		pool.POST("", handlers.CreatePartnerPool)
		pool.DELETE("/id/:id", handlers.DeletePartnerPool)
		pool.GET("/uniswapv3/:slug", handlers.GetPartnerPoolUniswapV3)
		pool.GET("/uniswapv3/:slug/current-tick", handlers.GetCurrentTick)
	}
}
