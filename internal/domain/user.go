package domain

import "time"

// Role is an enumerated account role
type Role string

// Known roles; admins see and manage every record, regular users only their own
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User Model
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                       // Primary key
	Email     string    `gorm:"unique;not null" json:"email"`               // Unique login email
	Password  string    `gorm:"not null" json:"-"`                          // Bcrypt password hash
	Role      Role      `gorm:"type:varchar(16);default:user" json:"role"`  // Role: user or admin
	Wallets   []Wallet  `gorm:"foreignKey:UserID" json:"wallets,omitempty"` // Wallets owned by the user
	CreatedAt time.Time `json:"created_at"`                                 // Timestamp of creation
	UpdatedAt time.Time `json:"updated_at"`                                 // Timestamp of last update
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
