package entity

import "time"

// User usuario del sistema, dueño de sus facturas.
type User struct {
	ID           string
	Username     string
	PasswordHash string // hash bcrypt, nunca en claro después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
