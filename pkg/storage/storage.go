package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// Driver identifies the SQL dialect used by a bun connection.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Config captures the runtime configuration for the storage layer. DSN handling
// is left to the caller; the module only needs a dialect-aware *bun.DB.
type Config struct {
	Driver   Driver
	ReadOnly bool
}

// NewDB wraps an opened sql.DB with the bun dialect matching cfg.Driver.
func NewDB(sqlDB *sql.DB, cfg Config) (*bun.DB, error) {
	if sqlDB == nil {
		return nil, fmt.Errorf("storage: sql.DB is required")
	}

	switch normalizeDriver(cfg.Driver) {
	case DriverSQLite:
		return bun.NewDB(sqlDB, sqlitedialect.New()), nil
	case DriverPostgres:
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	default:
		return nil, fmt.Errorf("storage: unsupported driver %q", cfg.Driver)
	}
}

func normalizeDriver(driver Driver) Driver {
	switch Driver(strings.ToLower(strings.TrimSpace(string(driver)))) {
	case "", DriverSQLite, "sqlite3":
		return DriverSQLite
	case DriverPostgres, "pg", "postgresql":
		return DriverPostgres
	default:
		return Driver(driver)
	}
}
