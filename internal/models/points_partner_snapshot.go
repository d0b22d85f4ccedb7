package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PointsPartnerSnapshot is a periodic snapshot of the cumulative total points
// a vault has generated with a partner. Populated by the hourly snapshot job
// and read by the point redistribution calculation.
type PointsPartnerSnapshot struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	VaultAddress string          `gorm:"size:100;index;not null;uniqueIndex:uq_vault_partner_snapshot_time" json:"vault_address"`
	PartnerSlug  string          `gorm:"size:100;index;not null;uniqueIndex:uq_vault_partner_snapshot_time" json:"partner_slug"`
	PointsTotal  decimal.Decimal `gorm:"type:numeric(36,18);not null" json:"points_total"`
	SnapshotAt   time.Time       `gorm:"index;not null;uniqueIndex:uq_vault_partner_snapshot_time" json:"snapshot_at"`
	CreatedAt    time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

func (PointsPartnerSnapshot) TableName() string {
	return "points_partner_snapshots"
}

func (s *PointsPartnerSnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
