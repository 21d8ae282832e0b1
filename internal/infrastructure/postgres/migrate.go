package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/phongcao0114/ecommerce-app/pkg/config"
)

// ApplyMigrations aplica las migraciones pendientes desde cfg.MigrationsPath.
// ErrNoChange no es error: la base ya está al día.
func ApplyMigrations(cfg config.DBConfig) error {
	m, err := migrate.New("file://"+cfg.MigrationsPath, migrateDSN(cfg.ConnectionString()))
	if err != nil {
		return fmt.Errorf("inicializar migraciones: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	return nil
}

// migrateDSN reescribe el scheme al del driver pgx/v5 de golang-migrate.
func migrateDSN(dsn string) string {
	if rest, ok := strings.CutPrefix(dsn, "postgresql://"); ok {
		return "pgx5://" + rest
	}
	if rest, ok := strings.CutPrefix(dsn, "postgres://"); ok {
		return "pgx5://" + rest
	}
	return dsn
}
