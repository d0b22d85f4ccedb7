package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PartnerProtocolSnapshot is a point-in-time snapshot of a user's position.
// Inserting a row fires the trigger that upserts partner_user_position.
type PartnerProtocolSnapshot struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	WalletAddress string          `gorm:"size:100;index:ix_snapshot_position_time;index;not null" json:"wallet_address"`
	ProtocolSlug  string          `gorm:"size:100;index:ix_snapshot_position_time;index;not null" json:"protocol_slug"`
	ProtocolType  ProtocolType    `gorm:"size:30;not null" json:"protocol_type"`
	QuantityType  QuantityType    `gorm:"size:20;index:ix_snapshot_position_time;index;not null" json:"quantity_type"`
	TokenAddress  string          `gorm:"size:100;index:ix_snapshot_position_time;index;not null" json:"token_address"`
	BlockNumber   uint64          `gorm:"index:ix_snapshot_position_time;not null" json:"block_number"`
	Timestamp     time.Time       `gorm:"index;not null" json:"timestamp"`
	Quantity      decimal.Decimal `gorm:"type:numeric(78,0);not null;default:0" json:"quantity"`
	CreatedAt     time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

func (PartnerProtocolSnapshot) TableName() string {
	return "partner_protocol_snapshot"
}

func (s *PartnerProtocolSnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
