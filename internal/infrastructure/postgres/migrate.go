package postgres

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// ErrNoChange se devuelve cuando no hay migraciones pendientes.
var ErrNoChange = migrate.ErrNoChange

// Migrate aplica las migraciones embebidas en la dirección indicada ("up" o "down").
// Devuelve nil si ya está en la versión objetivo.
func Migrate(dsn, direction string) error {
	if dsn == "" {
		return errors.New("DSN vacío: defina DATABASE_URL o las variables DB_*")
	}
	if direction != "up" && direction != "down" {
		return fmt.Errorf("dirección debe ser up o down, recibido %q", direction)
	}

	sourceDriver, err := iofs.New(MigrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("migrate source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, dsn)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
