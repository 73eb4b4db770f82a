package store

import (
	"context"

	"github.com/MKhiriev/hola-servers/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PersonaRepository persists [models.Persona] records.
type PersonaRepository interface {
	ListPersonas(ctx context.Context, page models.Page) ([]models.Persona, error)
	FindPersonaByRut(ctx context.Context, rut int64) (models.Persona, error)
	CreatePersona(ctx context.Context, persona models.Persona) (models.Persona, error)
	UpdatePersona(ctx context.Context, rut int64, update models.PersonaUpdate) (models.Persona, error)
	DeletePersona(ctx context.Context, rut int64) error

	// SelectOne runs a trivial query to prove the connection is usable.
	SelectOne(ctx context.Context) (int, error)
}

// VersionProbe reports the version string of a database server.
type VersionProbe interface {
	ServerVersion(ctx context.Context) (string, error)
}
