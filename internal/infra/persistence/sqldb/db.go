// Package sqldb reads a catalog snapshot from a MySQL or PostgreSQL
// database. It never writes.
//
// The shops, products and categories tables are expected to use integer
// id columns, so ORDER BY id yields catalog order; ids are read as strings.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	SourceMySQL    = "mysql"
	SourcePostgres = "postgres"
)

// DriverName maps a snapshot source onto its database/sql driver.
func DriverName(source string) (string, error) {
	switch source {
	case SourceMySQL:
		return "mysql", nil
	case SourcePostgres:
		return "pgx", nil
	default:
		return "", fmt.Errorf("unsupported snapshot source %q", source)
	}
}

// Open connects to the snapshot database and checks it answers.
func Open(ctx context.Context, source, dsn string) (*sql.DB, error) {
	driver, err := DriverName(source)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", source, err)
	}
	db.SetMaxOpenConns(4)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := Ping(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Ping is the readiness probe for the snapshot database.
func Ping(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping snapshot database: %w", err)
	}
	return nil
}
