package entity

import "time"

// User representa una identidad del sistema. El rol vive en Profile (1:1).
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}
