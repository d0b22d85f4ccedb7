package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PointsUserCampaignPoints represents the points a user has earned from a
// specific campaign. Inserts, updates and deletes on this table fire the
// triggers that maintain points_user_point_history and points_user_point.
type PointsUserCampaignPoints struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	WalletAddress string          `gorm:"size:100;index;not null;uniqueIndex:uq_wallet_campaign" json:"wallet_address"`
	CampaignID    uuid.UUID       `gorm:"type:uuid;index;not null;uniqueIndex:uq_wallet_campaign" json:"campaign_id"`
	PointTypeSlug string          `gorm:"size:100;index;not null" json:"point_type_slug"`
	PointsEarned  decimal.Decimal `gorm:"type:numeric(36,18);not null;default:0" json:"points_earned"`
	CreatedAt     time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

func (PointsUserCampaignPoints) TableName() string {
	return "points_user_campaign_points"
}

func (p *PointsUserCampaignPoints) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
