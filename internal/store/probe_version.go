package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/hola-servers/internal/logger"
)

// versionProbe opens a fresh connection for every probe and closes it
// afterwards, so an unreachable database never blocks startup.
type versionProbe struct {
	driver string
	dsn    string
	logger *logger.Logger
}

// NewVersionProbe returns a [VersionProbe] for the PostgreSQL server at dsn.
func NewVersionProbe(dsn string, logger *logger.Logger) VersionProbe {
	return newVersionProbe(PostgresDriver, dsn, logger)
}

func newVersionProbe(driver, dsn string, logger *logger.Logger) *versionProbe {
	return &versionProbe{
		driver: driver,
		dsn:    dsn,
		logger: logger,
	}
}

func (p *versionProbe) ServerVersion(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	conn, err := sql.Open(p.driver, p.dsn)
	if err != nil {
		log.Err(err).Msg("error opening probe connection")
		return "", fmt.Errorf("%w: %w", ErrOpeningConnection, err)
	}
	defer conn.Close()

	var version string
	if err := conn.QueryRowContext(ctx, selectVersion).Scan(&version); err != nil {
		log.Err(err).Msg("error querying server version")
		return "", wrapQueryError(err)
	}

	return version, nil
}
