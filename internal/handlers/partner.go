package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"pointscontrol/internal/models"
	dbconfig "pointscontrol/pkg/config"
)

// PartnerRequest represents the request body for creating/updating a partner
type PartnerRequest struct {
	Name        string         `json:"name" binding:"required"`
	Slug        string         `json:"slug" binding:"required"`
	Website     string         `json:"website"`
	Description string         `json:"description"`
	Tags        datatypes.JSON `json:"tags"`
}

// ListPartners returns a list of all partners
func ListPartners(c *gin.Context) {
	var partners []models.Partner
	if err := dbconfig.DB.Find(&partners).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, partners)
}

// GetPartner returns a specific partner by ID
func GetPartner(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var partner models.Partner
	if err := dbconfig.DB.First(&partner, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	c.JSON(http.StatusOK, partner)
}

// CreatePartner creates a new partner
func CreatePartner(c *gin.Context) {
	var request PartnerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	partner := models.Partner{
		Name:        request.Name,
		Slug:        request.Slug,
		Website:     request.Website,
		Description: request.Description,
		Tags:        request.Tags,
	}

	if err := dbconfig.DB.Create(&partner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, partner)
}

// UpdatePartner updates an existing partner
func UpdatePartner(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var request PartnerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var partner models.Partner
	if err := dbconfig.DB.First(&partner, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	partner.Name = request.Name
	partner.Slug = request.Slug
	partner.Website = request.Website
	partner.Description = request.Description
	if request.Tags != nil {
		partner.Tags = request.Tags
	}

	if err := dbconfig.DB.Save(&partner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, partner)
}

// DeletePartner deletes a partner by ID
func DeletePartner(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := dbconfig.DB.Delete(&models.Partner{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Partner deleted successfully"})
}
