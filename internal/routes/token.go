package routes

import (
	"pointscontrol/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupTokenRoutes sets up all routes related to Token management
func SetupTokenRoutes(r *gin.Engine) {
	token := r.Group("/tokens")
	{
		token.GET("", handlers.ListTokens)
		token.GET("/:id", handlers.GetToken)
		token.POST("", handlers.CreateToken)
		token.PUT("/:id", handlers.UpdateToken)
		token.DELETE("/:id", handlers.DeleteToken)
	}
}
