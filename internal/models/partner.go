package models

import (
	"time"

	"gorm.io/datatypes"
)

// Partner represents a top-level partner entity in the ecosystem.
type Partner struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Slug        string         `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Website     string         `gorm:"size:255" json:"website"`
	Description string         `gorm:"size:500" json:"description"`
	Tags        datatypes.JSON `gorm:"type:json" json:"tags"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Partner) TableName() string {
	return "partner"
}
