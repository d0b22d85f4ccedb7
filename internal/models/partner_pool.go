package models

import (
	"time"

	"gorm.io/datatypes"
)

// PartnerPool represents a pool offered by a partner. The slug is the pool
// contract address when one exists, otherwise a human-assigned identifier.
type PartnerPool struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"size:100;index;not null" json:"name"`
	Slug        string         `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	PartnerSlug string         `gorm:"size:100;index;not null" json:"partner_slug"`
	Tags        datatypes.JSON `gorm:"type:json" json:"tags"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (PartnerPool) TableName() string {
	return "partner_pool"
}
