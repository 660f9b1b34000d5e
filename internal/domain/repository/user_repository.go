package repository

import (
	"context"

	"github.com/tu-usuario/tienda-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para Usuario (solo lectura en el core).
type UserRepository interface {
	// FindByCorreo busca el usuario por correo exacto, con su rol resuelto (JOIN roles).
	// Devuelve (nil, nil) si no existe.
	FindByCorreo(ctx context.Context, correo string) (*entity.Usuario, error)
}
