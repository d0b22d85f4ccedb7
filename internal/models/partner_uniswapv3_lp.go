package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PartnerUniswapV3LP represents a user's Uniswap V3 LP position eligible
// for points, identified by the position NFT.
type PartnerUniswapV3LP struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	PoolSlug       string          `gorm:"size:100;index;not null" json:"pool_slug"`
	NftID          string          `gorm:"size:100;index" json:"nft_id"`
	WalletAddress  string          `gorm:"size:100;index" json:"wallet_address"`
	PriceLowerTick int             `json:"price_lower_tick"`
	PriceUpperTick int             `json:"price_upper_tick"`
	Liquidity      decimal.Decimal `gorm:"type:numeric(36,0);not null" json:"liquidity"`
	CreatedAt      time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

func (PartnerUniswapV3LP) TableName() string {
	return "partner_uniswapv3_lp"
}

func (lp *PartnerUniswapV3LP) BeforeCreate(tx *gorm.DB) error {
	if lp.ID == uuid.Nil {
		lp.ID = uuid.New()
	}
	return nil
}
