package domain

import "time"

// Wallet Model
type Wallet struct {
	ID        uint      `gorm:"primaryKey" json:"id"`              // Primary key
	Name      string    `gorm:"size:64;not null" json:"name"`      // Wallet name
	Balance   int64     `gorm:"not null;default:0" json:"balance"` // Balance in minor currency units
	UserID    uint      `gorm:"not null;index" json:"user_id"`     // Foreign key to the owning User
	CreatedAt time.Time `json:"created_at"`                        // Timestamp of creation
	UpdatedAt time.Time `json:"updated_at"`                        // Timestamp of last update
}

// OwnedBy returns the ID of the owning user
func (w *Wallet) OwnedBy() uint {
	return w.UserID
}
