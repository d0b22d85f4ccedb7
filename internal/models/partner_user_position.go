package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProtocolType is the high-level category of a partner protocol.
type ProtocolType string

const (
	ProtocolTypeDexUniswapV3   ProtocolType = "DEX_UNISWAPV3"
	ProtocolTypeLendingHypurrfi ProtocolType = "LENDING_HYPURRFI"
	ProtocolTypeYieldPendle    ProtocolType = "YIELD_PENDLE"
)

// QuantityType is the specific type of financial activity that earns points.
type QuantityType string

const (
	QuantityTypeLP     QuantityType = "LP"
	QuantityTypeYT     QuantityType = "YT"
	QuantityTypeBorrow QuantityType = "BORROW"
)

// PartnerUserPosition stores the current raw quantity and USD value of a
// user's pointable activity within a partner protocol. Maintained by the
// partner_protocol_snapshot insert trigger.
type PartnerUserPosition struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	WalletAddress string          `gorm:"size:100;index;not null;uniqueIndex:uq_user_protocol_quantity" json:"wallet_address"`
	ProtocolSlug  string          `gorm:"size:100;index;not null;uniqueIndex:uq_user_protocol_quantity" json:"protocol_slug"`
	ProtocolType  ProtocolType    `gorm:"size:30;not null" json:"protocol_type"`
	QuantityType  QuantityType    `gorm:"size:20;index;not null;uniqueIndex:uq_user_protocol_quantity" json:"quantity_type"`
	Quantity      decimal.Decimal `gorm:"type:numeric(78,0);not null;default:0" json:"quantity"`
	QuantityUsd   decimal.Decimal `gorm:"type:numeric(36,18);not null;default:0" json:"quantity_usd"`
	CreatedAt     time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

func (PartnerUserPosition) TableName() string {
	return "partner_user_position"
}

func (p *PartnerUserPosition) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
