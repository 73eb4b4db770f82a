package service

import (
	"context"

	"github.com/MKhiriev/hola-servers/internal/logger"
	"github.com/MKhiriev/hola-servers/internal/store"
	"github.com/MKhiriev/hola-servers/models"
)

type personaService struct {
	repository store.PersonaRepository

	logger *logger.Logger
}

func NewPersonaService(repository store.PersonaRepository, logger *logger.Logger) PersonaService {
	return &personaService{
		repository: repository,
		logger:     logger,
	}
}

func (s *personaService) ListPersonas(ctx context.Context, page models.Page) ([]models.Persona, error) {
	return s.repository.ListPersonas(ctx, page)
}

func (s *personaService) GetPersona(ctx context.Context, rut int64) (models.Persona, error) {
	return s.repository.FindPersonaByRut(ctx, rut)
}

func (s *personaService) CreatePersona(ctx context.Context, persona models.Persona) (models.Persona, error) {
	created, err := s.repository.CreatePersona(ctx, persona)
	if err != nil {
		return models.Persona{}, err
	}

	logger.FromContext(ctx).Info().Int64("rut", created.Rut).Msg("persona created")
	return created, nil
}

func (s *personaService) UpdatePersona(ctx context.Context, rut int64, update models.PersonaUpdate) (models.Persona, error) {
	return s.repository.UpdatePersona(ctx, rut, update)
}

func (s *personaService) DeletePersona(ctx context.Context, rut int64) error {
	if err := s.repository.DeletePersona(ctx, rut); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Int64("rut", rut).Msg("persona deleted")
	return nil
}

func (s *personaService) CheckDB(ctx context.Context) (models.DBStatus, error) {
	one, err := s.repository.SelectOne(ctx)
	if err != nil {
		return models.DBStatus{}, err
	}

	return models.DBStatus{DBStatus: one}, nil
}
