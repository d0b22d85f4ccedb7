package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PointsUserPoint is the aggregated summary of a user's balance for a point
// type. Rows are maintained by the points_user_campaign_points triggers, not
// written by application code.
type PointsUserPoint struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	WalletAddress string          `gorm:"size:100;index;not null;uniqueIndex:uq_summary_wallet_point_type" json:"wallet_address"`
	PointTypeSlug string          `gorm:"size:100;index;not null;uniqueIndex:uq_summary_wallet_point_type" json:"point_type_slug"`
	Points        decimal.Decimal `gorm:"type:numeric(36,18);not null;default:0" json:"points"`
	CreatedAt     time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

func (PointsUserPoint) TableName() string {
	return "points_user_point"
}

func (p *PointsUserPoint) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
