package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pointscontrol/internal/models"
	dbconfig "pointscontrol/pkg/config"
)

// ListUserPoints returns the aggregated point summaries, optionally filtered
// by wallet address or point type
func ListUserPoints(c *gin.Context) {
	var summaries []models.PointsUserPoint
	query := dbconfig.DB.Order("wallet_address, point_type_slug")
	if wallet := c.Query("wallet_address"); wallet != "" {
		query = query.Where("wallet_address = ?", wallet)
	}
	if pointType := c.Query("point_type_slug"); pointType != "" {
		query = query.Where("point_type_slug = ?", pointType)
	}
	if err := query.Find(&summaries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// ListUserPointHistory returns the point change ledger, newest first,
// optionally filtered by wallet address
func ListUserPointHistory(c *gin.Context) {
	var history []models.PointsUserPointHistory
	query := dbconfig.DB.Order("created_at DESC")
	if wallet := c.Query("wallet_address"); wallet != "" {
		query = query.Where("wallet_address = ?", wallet)
	}
	if err := query.Find(&history).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}

// ListUserCampaignPoints returns per-campaign earned points, optionally
// filtered by wallet address
func ListUserCampaignPoints(c *gin.Context) {
	var rows []models.PointsUserCampaignPoints
	query := dbconfig.DB.Order("wallet_address, campaign_id")
	if wallet := c.Query("wallet_address"); wallet != "" {
		query = query.Where("wallet_address = ?", wallet)
	}
	if err := query.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
