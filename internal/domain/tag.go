package domain

import "time"

// Tag Model
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`         // Primary key
	Name      string    `gorm:"size:64;not null" json:"name"` // Tag name, matched case-insensitively
	CreatedAt time.Time `json:"created_at"`                   // Timestamp of creation
	UpdatedAt time.Time `json:"updated_at"`                   // Timestamp of last update
}
