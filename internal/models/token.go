package models

import (
	"time"
)

// Token represents an ERC20 token tracked by the points system.
type Token struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Address   string    `gorm:"size:100;uniqueIndex;not null" json:"address"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	Decimals  int       `gorm:"not null" json:"decimals"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Token) TableName() string {
	return "tokens"
}
