package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PointsCampaign represents a points campaign or season from a partner.
type PointsCampaign struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"size:200;index;not null" json:"name"`
	Multiplier  float64        `gorm:"not null;default:1" json:"multiplier"`
	StartDate   time.Time      `gorm:"not null" json:"start_date"`
	EndDate     *time.Time     `json:"end_date"`
	PartnerSlug string         `gorm:"size:100;not null" json:"partner_slug"`
	PoolAddress string         `gorm:"size:100" json:"pool_address"`
	Tags        datatypes.JSON `gorm:"type:json" json:"tags"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (PointsCampaign) TableName() string {
	return "points_campaign"
}

func (c *PointsCampaign) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
