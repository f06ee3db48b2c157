package models

import "time"

// User represents one user row.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Provider     string `db:"auth_provider"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
