package models

import (
	"time"
)

// PartnerPoolUniswapV3 is an extension table to PartnerPool holding
// Uniswap V3 specific metadata.
type PartnerPoolUniswapV3 struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	PoolSlug      string    `gorm:"size:100;uniqueIndex;not null" json:"pool_slug"`
	Token0Address string    `gorm:"size:100;not null" json:"token0_address"`
	Token1Address string    `gorm:"size:100;not null" json:"token1_address"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (PartnerPoolUniswapV3) TableName() string {
	return "partner_pool_uniswapv3"
}
