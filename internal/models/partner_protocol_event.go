package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PartnerProtocolEvent is the immutable ledger of partner protocol events.
// Each row stores the change in raw quantity and USD value for a quantity type.
type PartnerProtocolEvent struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	TxHash            string          `gorm:"size:100;uniqueIndex;not null" json:"tx_hash"`
	BlockNumber       uint64          `gorm:"index;not null" json:"block_number"`
	Timestamp         time.Time       `gorm:"index;not null" json:"timestamp"`
	WalletAddress     string          `gorm:"size:100;index;not null" json:"wallet_address"`
	ProtocolSlug      string          `gorm:"size:100;index;not null" json:"protocol_slug"`
	ProtocolType      ProtocolType    `gorm:"size:30;not null" json:"protocol_type"`
	QuantityType      QuantityType    `gorm:"size:20;not null" json:"quantity_type"`
	QuantityChange    decimal.Decimal `gorm:"type:numeric(78,0);not null" json:"quantity_change"`
	QuantityChangeUsd decimal.Decimal `gorm:"type:numeric(36,18);not null" json:"quantity_change_usd"`
	CreatedAt         time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

func (PartnerProtocolEvent) TableName() string {
	return "partner_protocol_event"
}

func (e *PartnerProtocolEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
