package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pointscontrol/internal/models"
	dbconfig "pointscontrol/pkg/config"
)

// PointTypeRequest represents the request body for creating a point type
type PointTypeRequest struct {
	Slug        string `json:"slug" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PartnerSlug string `json:"partner_slug" binding:"required"`
}

// ListPointTypes returns a list of all point types
func ListPointTypes(c *gin.Context) {
	var pointTypes []models.PointsPointType
	query := dbconfig.DB
	if partnerSlug := c.Query("partner_slug"); partnerSlug != "" {
		query = query.Where("partner_slug = ?", partnerSlug)
	}
	if err := query.Find(&pointTypes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pointTypes)
}

// GetPointType returns a specific point type by slug
func GetPointType(c *gin.Context) {
	slug := c.Param("slug")

	var pointType models.PointsPointType
	if err := dbconfig.DB.Where("slug = ?", slug).First(&pointType).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	c.JSON(http.StatusOK, pointType)
}

// CreatePointType creates a new point type
func CreatePointType(c *gin.Context) {
	var request PointTypeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pointType := models.PointsPointType{
		Slug:        request.Slug,
		Name:        request.Name,
		Description: request.Description,
		PartnerSlug: request.PartnerSlug,
	}

	if err := dbconfig.DB.Create(&pointType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, pointType)
}

// UpdatePointType updates an existing point type
func UpdatePointType(c *gin.Context) {
	slug := c.Param("slug")

	var request PointTypeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var pointType models.PointsPointType
	if err := dbconfig.DB.Where("slug = ?", slug).First(&pointType).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	pointType.Slug = request.Slug
	pointType.Name = request.Name
	pointType.Description = request.Description
	pointType.PartnerSlug = request.PartnerSlug

	if err := dbconfig.DB.Save(&pointType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pointType)
}

// DeletePointType deletes a point type by slug
func DeletePointType(c *gin.Context) {
	slug := c.Param("slug")

	if err := dbconfig.DB.Where("slug = ?", slug).Delete(&models.PointsPointType{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Point type deleted successfully"})
}
