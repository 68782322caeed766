package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin    = "admin"
	RolVendedor = "vendedor"
)

// Usuario representa un usuario administrador del sistema.
type Usuario struct {
	ID           string
	Nombre       string
	Email        string // único en el sistema
	PasswordHash string // bcrypt, nunca plano después de persistir
	Rol          string // admin | vendedor
	Activo       bool
	UltimoAcceso *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
