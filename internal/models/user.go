package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultUserRole is assigned when a registration request carries no role.
const DefaultUserRole = "author"

// UserDB represents a user record in the database
type UserDB struct {
	ID        uuid.UUID `db:"id"`         // Primary key
	Username  string    `db:"username"`   // Unique username
	Email     string    `db:"email"`      // Unique email
	Password  string    `db:"password"`   // Hashed password, never serialized outbound
	Firstname string    `db:"firstname"`  // First name
	Lastname  string    `db:"lastname"`   // Last name
	CreatedAt time.Time `db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `db:"updated_at"` // Last update timestamp
	IsActive  bool      `db:"is_active"`  // Active flag
	Role      string    `db:"role"`       // Free-text role
}

// UserUpdate describes a partial user update. Nil fields keep their prior value.
type UserUpdate struct {
	Username *string
	Email    *string
	IsActive *bool
	Role     *string
}

// IsEmpty reports whether no field is set.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.IsActive == nil && u.Role == nil
}
