package policy

import (
	"budgetbook/internal/domain" // Importing domain models
)

// Owned is implemented by records that belong to a single user
// (transactions via their author, wallets via their owner)
type Owned interface {
	OwnedBy() uint
}

// allowed is the shared ownership-or-admin rule; an unauthenticated
// caller (nil user) is always denied
func allowed(subject Owned, user *domain.User) bool {
	if user == nil || subject == nil {
		return false
	}
	return subject.OwnedBy() == user.ID || user.IsAdmin()
}

// CanView reports whether the user may view the subject
func CanView(subject Owned, user *domain.User) bool {
	return allowed(subject, user)
}

// CanEdit reports whether the user may edit the subject
func CanEdit(subject Owned, user *domain.User) bool {
	return allowed(subject, user)
}

// CanDelete reports whether the user may delete the subject
func CanDelete(subject Owned, user *domain.User) bool {
	return allowed(subject, user)
}
