package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"pointscontrol/internal/models"
	dbconfig "pointscontrol/pkg/config"
)

// PartnerPoolRequest represents the request body for creating a partner pool
type PartnerPoolRequest struct {
	Name        string         `json:"name" binding:"required"`
	Slug        string         `json:"slug" binding:"required"`
	PartnerSlug string         `json:"partner_slug" binding:"required"`
	Tags        datatypes.JSON `json:"tags"`
}

// ListPartnerPools returns a list of all partner pools
func ListPartnerPools(c *gin.Context) {
	var pools []models.PartnerPool
	query := dbconfig.DB
	if partnerSlug := c.Query("partner_slug"); partnerSlug != "" {
		query = query.Where("partner_slug = ?", partnerSlug)
	}
	if err := query.Find(&pools).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pools)
}

// GetPartnerPool returns a specific partner pool by ID
func GetPartnerPool(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var pool models.PartnerPool
	if err := dbconfig.DB.First(&pool, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	c.JSON(http.StatusOK, pool)
}

// GetPartnerPoolUniswapV3 returns the Uniswap V3 metadata for a pool slug
func GetPartnerPoolUniswapV3(c *gin.Context) {
	slug := c.Param("slug")

	var metadata models.PartnerPoolUniswapV3
	if err := dbconfig.DB.Where("pool_slug = ?", slug).First(&metadata).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	c.JSON(http.StatusOK, metadata)
}

// GetCurrentTick returns the most recent tick observed for a pool, i.e. the
// tick row with the highest block number
func GetCurrentTick(c *gin.Context) {
	slug := c.Param("slug")

	var tick models.PartnerUniswapV3Tick
	err := dbconfig.DB.Where("pool_slug = ?", slug).
		Order("block_number DESC").
		First(&tick).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No tick data found for pool"})
		return
	}
	c.JSON(http.StatusOK, tick)
}

// CreatePartnerPool creates a new partner pool
func CreatePartnerPool(c *gin.Context) {
	var request PartnerPoolRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pool := models.PartnerPool{
		Name:        request.Name,
		Slug:        request.Slug,
		PartnerSlug: request.PartnerSlug,
		Tags:        request.Tags,
	}

	if err := dbconfig.DB.Create(&pool).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, pool)
}

// DeletePartnerPool deletes a partner pool by ID
func DeletePartnerPool(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := dbconfig.DB.Delete(&models.PartnerPool{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Partner pool deleted successfully"})
}
