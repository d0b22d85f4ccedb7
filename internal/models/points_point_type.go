package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PointsPointType defines a type of point that can be earned, linked to a
// specific partner, e.g. 'HyperSwap Points' or 'Pendle Points'.
// PartnerSlug is intentionally not a foreign key to keep the points context
// separate from the partner context.
type PointsPointType struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug        string    `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"size:500" json:"description"`
	PartnerSlug string    `gorm:"size:100;index;not null" json:"partner_slug"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (PointsPointType) TableName() string {
	return "points_point_types"
}

func (p *PointsPointType) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
