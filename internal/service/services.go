package service

import (
	"github.com/MKhiriev/hola-servers/internal/adapter"
	"github.com/MKhiriev/hola-servers/internal/config"
	"github.com/MKhiriev/hola-servers/internal/logger"
	"github.com/MKhiriev/hola-servers/internal/store"
)

// Service labels used in lab service responses.
const (
	GatewayServiceName = "A"
	PingServiceName    = "B"
)

// Services aggregates the services a binary exposes. Each constructor fills
// only the fields its binary routes to.
type Services struct {
	GreetingService GreetingService
	PingService     PingService
	StatusService   StatusService
	CheckService    CheckService
	PersonaService  PersonaService
}

// NewGreetingServices builds the services of a greeting server.
func NewGreetingServices(format string, cfg config.ServerConfig, logger *logger.Logger) (*Services, error) {
	greeting, err := NewGreetingService(format, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{GreetingService: greeting}, nil
}

// NewPingServices builds the services of the ping service.
func NewPingServices() *Services {
	return &Services{PingService: NewPingService(PingServiceName)}
}

// NewGatewayServices builds the services of the gateway service.
func NewGatewayServices(peer adapter.PeerAdapter, probe store.VersionProbe, logger *logger.Logger) *Services {
	return &Services{
		StatusService: NewStatusService(GatewayServiceName),
		CheckService:  NewCheckService(GatewayServiceName, PingServiceName, peer, probe, logger),
	}
}

// NewPersonaServices builds the services of the personas service. Input is
// validated before it reaches the repository.
func NewPersonaServices(storages *store.Storages, logger *logger.Logger) *Services {
	personas := NewPersonaValidationService().Wrap(NewPersonaService(storages.PersonaRepository, logger))

	return &Services{PersonaService: personas}
}
