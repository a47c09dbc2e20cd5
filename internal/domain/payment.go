package domain

import "time"

// Payment Model (payment method)
type Payment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`         // Primary key
	Name      string    `gorm:"size:64;not null" json:"name"` // Payment method name
	CreatedAt time.Time `json:"created_at"`                   // Timestamp of creation
	UpdatedAt time.Time `json:"updated_at"`                   // Timestamp of last update
}
