package service

import (
	"context"

	"github.com/MKhiriev/hola-servers/models"
)

// GreetingService renders the greeting of a greeting server.
type GreetingService interface {
	Greet(ctx context.Context) string
}

// PingService answers liveness pings from peer services.
type PingService interface {
	Ping(ctx context.Context) models.PingResponse
}

// StatusService reports the identity and health of the running service.
type StatusService interface {
	Status(ctx context.Context) models.ServiceStatus
}

// CheckService probes the dependencies of the gateway service.
type CheckService interface {
	CheckPeer(ctx context.Context) (models.PeerCheck, error)
	CheckDB(ctx context.Context) (models.DBCheck, error)
}

type PersonaService interface {
	ListPersonas(ctx context.Context, page models.Page) ([]models.Persona, error)
	GetPersona(ctx context.Context, rut int64) (models.Persona, error)
	CreatePersona(ctx context.Context, persona models.Persona) (models.Persona, error)
	UpdatePersona(ctx context.Context, rut int64, update models.PersonaUpdate) (models.Persona, error)
	DeletePersona(ctx context.Context, rut int64) error

	CheckDB(ctx context.Context) (models.DBStatus, error)
}

// PersonaServiceWrapper defines middleware composition for PersonaService.
// Implementations wrap an existing PersonaService to add behavior such as
// validation.
type PersonaServiceWrapper interface {
	Wrap(PersonaService) PersonaService
}
