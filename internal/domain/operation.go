package domain

import "time"

// Operation Model
type Operation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`         // Primary key
	Name      string    `gorm:"size:64;not null" json:"name"` // Operation name
	CreatedAt time.Time `json:"created_at"`                   // Timestamp of creation
	UpdatedAt time.Time `json:"updated_at"`                   // Timestamp of last update
}
