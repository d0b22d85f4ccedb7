package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartnerUniswapV3Tick represents a single observed tick for a Uniswap V3 pool.
type PartnerUniswapV3Tick struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PoolSlug    string    `gorm:"size:100;index;not null" json:"pool_slug"`
	TickIdx     int       `gorm:"not null" json:"tick_idx"`
	BlockNumber uint64    `gorm:"not null" json:"block_number"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (PartnerUniswapV3Tick) TableName() string {
	return "partner_uniswapv3_ticks"
}

func (t *PartnerUniswapV3Tick) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
