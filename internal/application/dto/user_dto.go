package dto

// LoginRequest entrada para login. Solo se exige presencia; el formato del
// correo no se valida (contrato heredado del frontend).
type LoginRequest struct {
	Correo   string `json:"correo" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UsuarioResponse resumen de un usuario (sin password).
type UsuarioResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Correo string `json:"correo"`
	Rol    string `json:"rol"`
}

// LoginResponse salida con token JWT y resumen del usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
