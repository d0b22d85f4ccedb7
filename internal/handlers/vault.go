package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pointscontrol/internal/models"
	dbconfig "pointscontrol/pkg/config"
)

// ListVaults returns a list of all vaults
func ListVaults(c *gin.Context) {
	var vaults []models.Vault
	if err := dbconfig.DB.Order("name").Find(&vaults).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vaults)
}

// VaultUserPositionView is a user's position summary joined with its vault name
type VaultUserPositionView struct {
	UserAddress string    `json:"user_address"`
	VaultID     uuid.UUID `json:"vault_id"`
	VaultName   string    `json:"vault_name"`
	TotalShares float64   `json:"total_shares"`
	LastUpdated time.Time `json:"last_updated"`
}

// ListVaultUserPositions returns position summaries grouped by vault and
// ordered by the highest share balance first
func ListVaultUserPositions(c *gin.Context) {
	query := dbconfig.DB.Model(&models.VaultsUserPosition{}).
		Select("vaults_user_position.user_address, vaults_user_position.vault_id, " +
			"vaults.name AS vault_name, vaults_user_position.total_shares, " +
			"vaults_user_position.last_updated").
		Joins("JOIN vaults ON vaults.id = vaults_user_position.vault_id").
		Order("vaults.name, vaults_user_position.total_shares DESC")
	if userAddress := c.Query("user_address"); userAddress != "" {
		query = query.Where("vaults_user_position.user_address = ?", userAddress)
	}

	var positions []VaultUserPositionView
	if err := query.Scan(&positions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, positions)
}

// VaultUserPositionHistoryView is one ledger entry joined with its vault name
type VaultUserPositionHistoryView struct {
	ID                      uint                       `json:"id"`
	TransactionHash         string                     `json:"transaction_hash"`
	UserAddress             string                     `json:"user_address"`
	VaultID                 uuid.UUID                  `json:"vault_id"`
	VaultName               string                     `json:"vault_name"`
	Timestamp               time.Time                  `json:"timestamp"`
	TransactionType         models.PositionHistoryType `json:"transaction_type"`
	SharesAmount            float64                    `json:"shares_amount"`
	SharePriceAtTransaction float64                    `json:"share_price_at_transaction"`
	AssetAmount             float64                    `json:"asset_amount"`
	CounterpartyAddress     *string                    `json:"counterparty_address"`
}

// ListVaultUserPositionHistory returns the full transaction ledger grouped by
// vault and user, in chronological order within each group
func ListVaultUserPositionHistory(c *gin.Context) {
	query := dbconfig.DB.Model(&models.VaultsUserPositionHistory{}).
		Select("vaults_user_position_history.id, vaults_user_position_history.transaction_hash, " +
			"vaults_user_position_history.user_address, vaults_user_position_history.vault_id, " +
			"vaults.name AS vault_name, vaults_user_position_history.timestamp, " +
			"vaults_user_position_history.transaction_type, vaults_user_position_history.shares_amount, " +
			"vaults_user_position_history.share_price_at_transaction, " +
			"vaults_user_position_history.asset_amount, vaults_user_position_history.counterparty_address").
		Joins("JOIN vaults ON vaults.id = vaults_user_position_history.vault_id").
		Order("vaults.name, vaults_user_position_history.user_address, vaults_user_position_history.timestamp")
	if userAddress := c.Query("user_address"); userAddress != "" {
		query = query.Where("vaults_user_position_history.user_address = ?", userAddress)
	}

	var history []VaultUserPositionHistoryView
	if err := query.Scan(&history).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}
