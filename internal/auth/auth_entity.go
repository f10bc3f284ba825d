package auth

import "github.com/google/uuid"

// Account is the login view over either an HR or an Employee row.
type Account struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Department   string
	Role         string
}
