package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/hola-servers/internal/logger"
	"github.com/MKhiriev/hola-servers/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresDriver is the database/sql driver name registered by pgx.
const PostgresDriver = "pgx"

type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens a pooled connection to dsn and pings it.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	return connect(ctx, PostgresDriver, dsn, log)
}

func connect(ctx context.Context, driver, dsn string, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Msg("error occured during database connection")
		return nil, fmt.Errorf("%w: %w", ErrOpeningConnection, err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpeningConnection, err)
	}
	log.Info().Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
