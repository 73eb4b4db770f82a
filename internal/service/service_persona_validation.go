package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hola-servers/internal/store"
	"github.com/MKhiriev/hola-servers/internal/validators"
	"github.com/MKhiriev/hola-servers/models"
)

type PersonaValidationService struct {
	inner     PersonaService
	validator validators.Validator
}

func NewPersonaValidationService() PersonaServiceWrapper {
	return &PersonaValidationService{
		validator: validators.NewPersonaValidator(),
	}
}

func (v *PersonaValidationService) Wrap(inner PersonaService) PersonaService {
	v.inner = inner
	return v
}

func (v *PersonaValidationService) ListPersonas(ctx context.Context, page models.Page) ([]models.Persona, error) {
	if err := v.validator.Validate(ctx, page); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListPersonas(ctx, page)
}

// GetPersona reports [store.ErrPersonaNotFound] for a rut that fails
// validation, since no such row can exist.
func (v *PersonaValidationService) GetPersona(ctx context.Context, rut int64) (models.Persona, error) {
	if err := v.validator.Validate(ctx, models.Persona{Rut: rut}, validators.FieldRut); err != nil {
		return models.Persona{}, store.ErrPersonaNotFound
	}

	return v.inner.GetPersona(ctx, rut)
}

func (v *PersonaValidationService) CreatePersona(ctx context.Context, persona models.Persona) (models.Persona, error) {
	if err := v.validator.Validate(ctx, persona); err != nil {
		return models.Persona{}, fmt.Errorf("error during persona validation before saving: %w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreatePersona(ctx, persona)
}

func (v *PersonaValidationService) UpdatePersona(ctx context.Context, rut int64, update models.PersonaUpdate) (models.Persona, error) {
	if err := v.validator.Validate(ctx, models.Persona{Rut: rut}, validators.FieldRut); err != nil {
		return models.Persona{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Persona{}, fmt.Errorf("error during persona validation before updating: %w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdatePersona(ctx, rut, update)
}

func (v *PersonaValidationService) DeletePersona(ctx context.Context, rut int64) error {
	if err := v.validator.Validate(ctx, models.Persona{Rut: rut}, validators.FieldRut); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeletePersona(ctx, rut)
}

func (v *PersonaValidationService) CheckDB(ctx context.Context) (models.DBStatus, error) {
	return v.inner.CheckDB(ctx)
}
