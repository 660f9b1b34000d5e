package entity

// Roles válidos para Usuario (tabla roles, datos de referencia estáticos).
const (
	RolAdministrador = "administrador"
	RolVendedor      = "vendedor"
	RolCliente       = "cliente"
)

// Usuario representa un usuario del sistema. Se crea externamente; el core solo lo lee.
// Invariante: exactamente un rol por usuario (usuarios.rol_id -> roles.id).
type Usuario struct {
	ID           int64
	Nombre       string
	Correo       string // único
	PasswordHash string // hash bcrypt, nunca plano después de persistir
	RolID        int64
	Rol          string // nombre del rol, resuelto con JOIN a roles
}
