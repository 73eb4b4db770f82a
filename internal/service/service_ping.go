package service

import (
	"context"

	"github.com/MKhiriev/hola-servers/models"
)

type pingService struct {
	service string
}

// NewPingService answers pings on behalf of the named service.
func NewPingService(service string) PingService {
	return &pingService{service: service}
}

func (s *pingService) Ping(ctx context.Context) models.PingResponse {
	return models.PingResponse{
		Service: s.service,
		Message: "pong desde " + s.service,
	}
}

type statusService struct {
	service string
}

func NewStatusService(service string) StatusService {
	return &statusService{service: service}
}

func (s *statusService) Status(ctx context.Context) models.ServiceStatus {
	return models.ServiceStatus{
		Service: s.service,
		Status:  "ok",
	}
}
