package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PointsUserPointHistory is the append-only ledger of changes to a user's
// point balance. Rows are written by the points_user_campaign_points triggers
// for auditing; SourceEventID references the campaign points row that caused
// the change.
type PointsUserPointHistory struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	SourceEventID uuid.UUID       `gorm:"type:uuid;index;not null" json:"source_event_id"`
	WalletAddress string          `gorm:"size:100;index;not null" json:"wallet_address"`
	CampaignID    uuid.UUID       `gorm:"type:uuid;index;not null" json:"campaign_id"`
	PointTypeSlug string          `gorm:"size:100;index;not null" json:"point_type_slug"`
	PointsChange  decimal.Decimal `gorm:"type:numeric(36,18);not null" json:"points_change"`
	CreatedAt     time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

func (PointsUserPointHistory) TableName() string {
	return "points_user_point_history"
}

func (h *PointsUserPointHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
