package models

import (
	"time"

	"gorm.io/gorm"
)

// Subscription records a user's membership of a named plan.
// Only rows with status "active" that have not expired grant capabilities.
type Subscription struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    string         `gorm:"index;not null" json:"user_id"`
	Plan      string         `gorm:"not null" json:"plan"`                 // "student", "pro"
	Status    string         `gorm:"default:'active';index" json:"status"` // "active", "canceled"
	ExpiresAt *time.Time     `json:"expires_at,omitempty"`
}
