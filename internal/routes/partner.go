package routes

import (
	"pointscontrol/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPartnerRoutes sets up all routes related to Partner management
func SetupPartnerRoutes(r *gin.Engine) {
	partner := r.Group("/partners")
	{
		partner.GET("", handlers.ListPartners)
		partner.GET("/:id", handlers.GetPartner)
		partner.POST("", handlers.CreatePartner)
		partner.PUT("/:id", handlers.UpdatePartner)
		partner.DELETE("/:id", handlers.DeletePartner)
	}
}
