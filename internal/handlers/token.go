package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pointscontrol/internal/models"
	dbconfig "pointscontrol/pkg/config"
)

// TokenRequest represents the request body for creating/updating a token
type TokenRequest struct {
	Address  string `json:"address" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Decimals *int   `json:"decimals" binding:"required"`
}

// ListTokens returns a list of all tokens
func ListTokens(c *gin.Context) {
	var tokens []models.Token
	if err := dbconfig.DB.Find(&tokens).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// GetToken returns a specific token by ID
func GetToken(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var token models.Token
	if err := dbconfig.DB.First(&token, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	c.JSON(http.StatusOK, token)
}

// CreateToken creates a new token
func CreateToken(c *gin.Context) {
	var request TokenRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token := models.Token{
		Address:  request.Address,
		Name:     request.Name,
		Decimals: *request.Decimals,
	}

	if err := dbconfig.DB.Create(&token).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, token)
}

// UpdateToken updates an existing token
func UpdateToken(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var request TokenRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var token models.Token
	if err := dbconfig.DB.First(&token, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	token.Address = request.Address
	token.Name = request.Name
	token.Decimals = *request.Decimals

	if err := dbconfig.DB.Save(&token).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, token)
}

// DeleteToken deletes a token by ID
func DeleteToken(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := dbconfig.DB.Delete(&models.Token{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token deleted successfully"})
}
