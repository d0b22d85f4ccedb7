package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"pointscontrol/internal/models"
	dbconfig "pointscontrol/pkg/config"
)

// CampaignRequest represents the request body for creating a campaign
type CampaignRequest struct {
	Name        string         `json:"name" binding:"required"`
	PartnerSlug string         `json:"partner_slug" binding:"required"`
	Multiplier  *float64       `json:"multiplier"`
	StartDate   time.Time      `json:"start_date" binding:"required"`
	EndDate     *time.Time     `json:"end_date"`
	PoolAddress string         `json:"pool_address"`
	Tags        datatypes.JSON `json:"tags"`
}

// ListCampaigns returns a list of all campaigns
func ListCampaigns(c *gin.Context) {
	var campaigns []models.PointsCampaign
	query := dbconfig.DB
	if partnerSlug := c.Query("partner_slug"); partnerSlug != "" {
		query = query.Where("partner_slug = ?", partnerSlug)
	}
	if err := query.Find(&campaigns).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

// GetCampaign returns a specific campaign by ID
func GetCampaign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var campaign models.PointsCampaign
	if err := dbconfig.DB.Where("id = ?", id).First(&campaign).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// CreateCampaign creates a new campaign
func CreateCampaign(c *gin.Context) {
	var request CampaignRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	multiplier := 1.0
	if request.Multiplier != nil {
		multiplier = *request.Multiplier
	}

	campaign := models.PointsCampaign{
		Name:        request.Name,
		PartnerSlug: request.PartnerSlug,
		Multiplier:  multiplier,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
		PoolAddress: request.PoolAddress,
		Tags:        request.Tags,
	}

	if err := dbconfig.DB.Create(&campaign).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

// UpdateCampaign updates an existing campaign
func UpdateCampaign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var request CampaignRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var campaign models.PointsCampaign
	if err := dbconfig.DB.Where("id = ?", id).First(&campaign).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	campaign.Name = request.Name
	campaign.PartnerSlug = request.PartnerSlug
	if request.Multiplier != nil {
		campaign.Multiplier = *request.Multiplier
	}
	campaign.StartDate = request.StartDate
	campaign.EndDate = request.EndDate
	campaign.PoolAddress = request.PoolAddress
	if request.Tags != nil {
		campaign.Tags = request.Tags
	}

	if err := dbconfig.DB.Save(&campaign).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// DeleteCampaign deletes a campaign by ID
func DeleteCampaign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := dbconfig.DB.Where("id = ?", id).Delete(&models.PointsCampaign{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Campaign deleted successfully"})
}

// CampaignPointsBreakdown is one campaign's share of a season total
type CampaignPointsBreakdown struct {
	CampaignID   uuid.UUID       `json:"campaign_id"`
	CampaignName string          `json:"campaign_name"`
	TotalPoints  decimal.Decimal `json:"total_points"`
}

// SeasonPointsResponse is the aggregate answer to "how many points have been
// distributed for this season"
type SeasonPointsResponse struct {
	SeasonTag   string                    `json:"season_tag"`
	TotalPoints decimal.Decimal           `json:"total_points"`
	Breakdown   []CampaignPointsBreakdown `json:"breakdown"`
}

// GetSeasonPoints returns the total points distributed across all campaigns
// carrying the given season tag, with a per-campaign breakdown
func GetSeasonPoints(c *gin.Context) {
	seasonTag := c.Param("tag")

	var campaigns []models.PointsCampaign
	if err := dbconfig.DB.Find(&campaigns).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Tags are stored as a JSON array; match the season tag in application
	// code so the query stays portable.
	campaignNames := make(map[uuid.UUID]string)
	var campaignIDs []uuid.UUID
	for _, campaign := range campaigns {
		var tags []string
		if len(campaign.Tags) > 0 {
			if err := json.Unmarshal(campaign.Tags, &tags); err != nil {
				continue
			}
		}
		for _, tag := range tags {
			if tag == seasonTag {
				campaignIDs = append(campaignIDs, campaign.ID)
				campaignNames[campaign.ID] = campaign.Name
				break
			}
		}
	}

	response := SeasonPointsResponse{
		SeasonTag:   seasonTag,
		TotalPoints: decimal.Zero,
		Breakdown:   []CampaignPointsBreakdown{},
	}

	if len(campaignIDs) == 0 {
		c.JSON(http.StatusOK, response)
		return
	}

	var rows []struct {
		CampaignID  uuid.UUID       `gorm:"column:campaign_id"`
		TotalPoints decimal.Decimal `gorm:"column:total_points"`
	}
	err := dbconfig.DB.Model(&models.PointsUserCampaignPoints{}).
		Select("campaign_id, SUM(points_earned) AS total_points").
		Where("campaign_id IN ?", campaignIDs).
		Group("campaign_id").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	for _, row := range rows {
		response.TotalPoints = response.TotalPoints.Add(row.TotalPoints)
		response.Breakdown = append(response.Breakdown, CampaignPointsBreakdown{
			CampaignID:   row.CampaignID,
			CampaignName: campaignNames[row.CampaignID],
			TotalPoints:  row.TotalPoints,
		})
	}

	c.JSON(http.StatusOK, response)
}
