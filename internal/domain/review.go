package domain

import (
	"time"

	"gorm.io/gorm"
)

// Review Model
type Review struct {
	ID        uint           `gorm:"primaryKey"`     // Primary key
	UserID    uint           `gorm:"index;not null"` // Foreign key to User
	User      User           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	MovieID   uint           `gorm:"index;not null"` // Foreign key to Movie
	Movie     Movie          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Review    string         `gorm:"type:text;not null"` // Review text
	Rate      int            `gorm:"not null"`           // Reviewer rating, range unchecked
	CreatedAt time.Time      // Set on insert
	UpdatedAt time.Time      // Refreshed on every update
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete marker
}
