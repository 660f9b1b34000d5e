package postgres

import "embed"

// MigrationFS embebe los archivos SQL de internal/infrastructure/postgres/migrations.
// Lo usa el runner de migraciones (cmd/migrate y el arranque de cmd/api).
//
//go:embed migrations/*.sql
var MigrationFS embed.FS
