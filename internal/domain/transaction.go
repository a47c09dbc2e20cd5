package domain

import "time"

// Transaction Model
type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`                   // Primary key
	Name        string    `gorm:"size:64;not null" json:"name"`           // Short description
	Date        time.Time `gorm:"not null" json:"date"`                   // Date of the movement
	Amount      int64     `gorm:"not null" json:"amount"`                 // Amount in minor currency units, signed
	Comment     string    `gorm:"size:255" json:"comment"`                // Optional free-text comment
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`      // Foreign key to Category
	WalletID    uint      `gorm:"not null;index" json:"wallet_id"`        // Foreign key to Wallet
	PaymentID   uint      `gorm:"not null;index" json:"payment_id"`       // Foreign key to Payment
	OperationID uint      `gorm:"not null;index" json:"operation_id"`     // Foreign key to Operation
	AuthorID    uint      `gorm:"not null;index" json:"author_id"`        // Foreign key to the authoring User
	Tags        []Tag     `gorm:"many2many:transaction_tags" json:"tags"` // Unordered tag set
	CreatedAt   time.Time `json:"created_at"`                             // Timestamp of creation
	UpdatedAt   time.Time `json:"updated_at"`                             // Timestamp of last update
}

// OwnedBy returns the ID of the authoring user
func (t *Transaction) OwnedBy() uint {
	return t.AuthorID
}
