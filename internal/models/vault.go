package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vault represents a managed vault whose positions generate partner points.
type Vault struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	ContractAddress string    `gorm:"size:100" json:"contract_address"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Vault) TableName() string {
	return "vaults"
}

func (v *Vault) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
