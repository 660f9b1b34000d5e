// seed inserta los roles de referencia y un usuario administrador para entornos
// de desarrollo. Idempotente: los roles usan ON CONFLICT y el usuario solo se
// crea si su correo no existe.
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/tienda-api/pkg/config"
)

const (
	adminNombre   = "Administrador"
	adminCorreo   = "admin@tienda.cl"
	adminPassword = "admin1234" // solo para desarrollo local
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintln(os.Stderr, "conexión a PostgreSQL:", err)
		os.Exit(1)
	}
	defer pool.Close()

	for _, rol := range []string{entity.RolAdministrador, entity.RolVendedor, entity.RolCliente} {
		if _, err := pool.Exec(ctx,
			`INSERT INTO roles (nombre) VALUES ($1) ON CONFLICT (nombre) DO NOTHING`, rol,
		); err != nil {
			fmt.Fprintln(os.Stderr, "insertar rol:", err)
			os.Exit(1)
		}
	}

	var existe bool
	if err := pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM usuarios WHERE correo = $1)`, adminCorreo,
	).Scan(&existe); err != nil {
		fmt.Fprintln(os.Stderr, "verificar usuario:", err)
		os.Exit(1)
	}
	if existe {
		fmt.Println("seed: el usuario administrador ya existe, nada que hacer")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hashear password:", err)
		os.Exit(1)
	}

	if _, err := pool.Exec(ctx, `
		INSERT INTO usuarios (nombre, correo, password, rol_id)
		VALUES ($1, $2, $3, (SELECT id FROM roles WHERE nombre = $4))`,
		adminNombre, adminCorreo, string(hash), entity.RolAdministrador,
	); err != nil {
		fmt.Fprintln(os.Stderr, "insertar usuario:", err)
		os.Exit(1)
	}

	fmt.Printf("seed: usuario %s creado\n", adminCorreo)
}
