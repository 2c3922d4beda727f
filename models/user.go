package models

import "time"

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleRecorder UserRole = "recorder"
)

// User is a county board operator account. Recorders may submit
// results; admins may additionally manage reference data and trigger
// full recomputes.
type User struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         UserRole  `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
