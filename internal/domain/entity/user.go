package entity

import "time"

// Roles válidos para User.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User representa un usuario registrado de la tienda.
type User struct {
	ID           string
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // USER, ADMIN
	Name         string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
