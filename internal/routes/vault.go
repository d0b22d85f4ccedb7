package routes

import (
	"pointscontrol/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupVaultRoutes sets up routes for vaults and their user positions
func SetupVaultRoutes(r *gin.Engine) {
	vault := r.Group("/vaults")
	{
		vault.GET("", handlers.ListVaults)
		vault.GET("/user-positions", handlers.ListVaultUserPositions)
		vault.GET("/user-position-history", handlers.ListVaultUserPositionHistory)
	}
}
