package models

import "time"

type UserRole string

const (
	// RoleSuperAdmin may manage every sport.
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
	// RoleSportAdmin is scoped to exactly one sport (SportID is set).
	RoleSportAdmin UserRole = "SPORT_ADMIN"
)

func (r UserRole) Valid() bool {
	return r == RoleSuperAdmin || r == RoleSportAdmin
}

// User is a back-office operator. There is no viewer-facing account system;
// admins are provisioned directly in the store.
type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         UserRole  `json:"role" db:"role"`
	SportID      *int      `json:"sport_id,omitempty" db:"sport_id"`
	Sport        *Sport    `json:"sport,omitempty" db:"-"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
