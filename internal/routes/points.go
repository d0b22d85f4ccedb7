package routes

import (
	"pointscontrol/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPointsRoutes sets up all routes related to point types, campaigns
// and user point balances
func SetupPointsRoutes(r *gin.Engine) {
	pointType := r.Group("/point-types")
	{
		pointType.GET("", handlers.ListPointTypes)
		pointType.GET("/:slug", handlers.GetPointType)
		pointType.POST("", handlers.CreatePointType)
		pointType.PUT("/:slug", handlers.UpdatePointType)
		pointType.DELETE("/:slug", handlers.DeletePointType)
	}

	campaign := r.Group("/campaigns")
	{
		campaign.GET("", handlers.ListCampaigns)
		campaign.GET("/id/:id", handlers.GetCampaign)
		campaign.POST("", handlers.CreateCampaign)
		campaign.PUT("/id/:id", handlers.UpdateCampaign)
		campaign.DELETE("/id/:id", handlers.DeleteCampaign)
		campaign.GET("/season/:tag/points", handlers.GetSeasonPoints)
	}

	userPoints := r.Group("/user-points")
	{
		userPoints.GET("", handlers.ListUserPoints)
		userPoints.GET("/history", handlers.ListUserPointHistory)
		userPoints.GET("/campaign-points", handlers.ListUserCampaignPoints)
	}
}
