// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// DefaultRole is the role assigned to users created without an explicit role.
// The visible surface has no self-registration, so every account is an admin.
const DefaultRole = "admin"

// User represents an administrator account.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the login name. It must be unique across all users.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Role is the user's role. Defaults to admin.
	Role string `gorm:"size:50;default:admin"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
