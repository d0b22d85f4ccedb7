package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EventType defines the type of Uniswap V3 LP event.
type EventType string

const (
	EventTypeIncreaseLiquidity EventType = "INCREASE_LIQUIDITY"
	EventTypeDecreaseLiquidity EventType = "DECREASE_LIQUIDITY"
)

// PartnerUniswapV3Event is a single historical event (add/remove) for a
// Uniswap V3 LP position. The table is an immutable log: rows are inserted
// once per on-chain event and never updated.
type PartnerUniswapV3Event struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	EventType       EventType       `gorm:"size:30;index;not null" json:"event_type"`
	TxHash          string          `gorm:"size:100;uniqueIndex;not null" json:"tx_hash"`
	BlockNumber     uint64          `gorm:"index;not null" json:"block_number"`
	PoolSlug        string          `gorm:"size:100;index;not null" json:"pool_slug"`
	NftID           string          `gorm:"size:100;index;not null" json:"nft_id"`
	WalletAddress   string          `gorm:"size:100;index;not null" json:"wallet_address"`
	LiquidityChange decimal.Decimal `gorm:"type:numeric(36,0);not null" json:"liquidity_change"`
	Amount0Change   decimal.Decimal `gorm:"type:numeric(78,0);not null" json:"amount0_change"`
	Amount1Change   decimal.Decimal `gorm:"type:numeric(78,0);not null" json:"amount1_change"`
	CreatedAt       time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

func (PartnerUniswapV3Event) TableName() string {
	return "partner_uniswapv3_events"
}

func (e *PartnerUniswapV3Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
