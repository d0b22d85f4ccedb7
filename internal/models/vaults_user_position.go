package models

import (
	"time"

	"github.com/google/uuid"
)

// VaultsUserPosition is the current share position of a user in a vault.
// TotalShares is recomputed by the vaults_user_position_history insert
// trigger; application code only reads this table.
type VaultsUserPosition struct {
	UserAddress      string    `gorm:"size:100;primaryKey" json:"user_address"`
	VaultID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"vault_id"`
	TotalShares      float64   `gorm:"not null;default:0" json:"total_shares"`
	TotalAssetsValue float64   `gorm:"not null;default:0" json:"total_assets_value"`
	UnrealizedPnl    float64   `gorm:"not null;default:0" json:"unrealized_pnl"`
	RealizedPnl      float64   `gorm:"not null;default:0" json:"realized_pnl"`
	AverageCostBasis float64   `gorm:"not null;default:0" json:"average_cost_basis"`
	LastUpdated      time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}

func (VaultsUserPosition) TableName() string {
	return "vaults_user_position"
}
