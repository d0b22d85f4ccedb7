package models

import (
	"time"

	"github.com/google/uuid"
)

// PositionHistoryType defines the type of event that changed a user's
// vault position.
type PositionHistoryType string

const (
	PositionHistoryDeposit         PositionHistoryType = "DEPOSIT"
	PositionHistoryWithdrawal      PositionHistoryType = "WITHDRAWAL"
	PositionHistoryTransferIn      PositionHistoryType = "TRANSFER_IN"
	PositionHistoryTransferOut     PositionHistoryType = "TRANSFER_OUT"
	PositionHistoryStakeToPool     PositionHistoryType = "STAKE_TO_POOL"
	PositionHistoryUnstakeFromPool PositionHistoryType = "UNSTAKE_FROM_POOL"
)

// VaultsUserPositionHistory is the append-only ledger of share movements.
// Inserting a row fires the trigger that recomputes vaults_user_position
// for the user and, for transfers, the counterparty.
type VaultsUserPositionHistory struct {
	ID                      uint                `gorm:"primarykey" json:"id"`
	TransactionHash         string              `gorm:"size:100;index" json:"transaction_hash"`
	UserAddress             string              `gorm:"size:100;index" json:"user_address"`
	VaultID                 uuid.UUID           `gorm:"type:uuid;index" json:"vault_id"`
	Timestamp               time.Time           `gorm:"index" json:"timestamp"`
	TransactionType         PositionHistoryType `gorm:"size:30;not null" json:"transaction_type"`
	SharesAmount            float64             `gorm:"not null" json:"shares_amount"`
	SharePriceAtTransaction float64             `gorm:"not null" json:"share_price_at_transaction"`
	AssetAmount             float64             `gorm:"not null" json:"asset_amount"`
	CounterpartyAddress     *string             `gorm:"size:100;index" json:"counterparty_address"`
}

func (VaultsUserPositionHistory) TableName() string {
	return "vaults_user_position_history"
}
