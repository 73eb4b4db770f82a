package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hola-servers/internal/adapter"
	"github.com/MKhiriev/hola-servers/internal/logger"
	"github.com/MKhiriev/hola-servers/internal/store"
	"github.com/MKhiriev/hola-servers/models"
)

type checkService struct {
	from, to string

	peer  adapter.PeerAdapter
	probe store.VersionProbe

	logger *logger.Logger
}

// NewCheckService probes peer (labelled to) and the database behind probe on
// behalf of the service labelled from.
func NewCheckService(from, to string, peer adapter.PeerAdapter, probe store.VersionProbe, logger *logger.Logger) CheckService {
	return &checkService{
		from:   from,
		to:     to,
		peer:   peer,
		probe:  probe,
		logger: logger,
	}
}

func (s *checkService) CheckPeer(ctx context.Context) (models.PeerCheck, error) {
	status, body, err := s.peer.Ping(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("peer", s.to).Msg("peer check failed")
		return models.PeerCheck{}, fmt.Errorf("error checking %s: %w", s.to, err)
	}

	return models.PeerCheck{
		From:     s.from,
		To:       s.to,
		Status:   status,
		Response: body,
	}, nil
}

func (s *checkService) CheckDB(ctx context.Context) (models.DBCheck, error) {
	version, err := s.probe.ServerVersion(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("database check failed")
		return models.DBCheck{}, fmt.Errorf("error checking database: %w", err)
	}

	return models.DBCheck{
		Status:    "ok",
		DBVersion: version,
	}, nil
}
