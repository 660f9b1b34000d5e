package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// FindByCorreo obtiene el usuario por correo exacto con su rol resuelto.
// Devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByCorreo(ctx context.Context, correo string) (*entity.Usuario, error) {
	query := `
		SELECT u.id, u.nombre, u.correo, u.password, u.rol_id, r.nombre AS rol
		FROM usuarios u
		INNER JOIN roles r ON u.rol_id = r.id
		WHERE u.correo = $1`
	var u entity.Usuario
	err := r.pool.QueryRow(ctx, query, correo).Scan(
		&u.ID, &u.Nombre, &u.Correo, &u.PasswordHash, &u.RolID, &u.Rol,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by correo: %w", err)
	}
	return &u, nil
}
