package domain

import (
	"time"

	"gorm.io/gorm"
)

// Genre Model
type Genre struct {
	ID        uint           `gorm:"primaryKey" json:"id"`                // Primary key
	Name      string         `gorm:"size:64;unique;not null" json:"name"` // Unique genre name
	CreatedAt time.Time      `json:"createdAt"`                           // Set on insert
	UpdatedAt time.Time      `json:"updatedAt"`                           // Refreshed on every update
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt"`              // Soft-delete marker
}
