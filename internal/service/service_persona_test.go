package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/hola-servers/internal/logger"
	"github.com/MKhiriev/hola-servers/internal/mock"
	"github.com/MKhiriev/hola-servers/internal/store"
	"github.com/MKhiriev/hola-servers/internal/validators"
	"github.com/MKhiriev/hola-servers/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestPersonaSvc builds the persona service exactly as the personas
// binary does, validation wrapper included, over a mocked repository.
func newTestPersonaSvc(t *testing.T) (PersonaService, *mock.MockPersonaRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPersonaRepository(ctrl)

	services := NewPersonaServices(&store.Storages{PersonaRepository: repo}, logger.Nop())
	return services.PersonaService, repo
}

func ptr[T any](v T) *T { return &v }

func validPersona() models.Persona {
	return models.Persona{
		Rut:               12345678,
		DigitoVerificador: "5",
		Nombre:            "Ana",
		ApellidoPaterno:   "Pérez",
		ApellidoMaterno:   "Soto",
	}
}

// ── ListPersonas ─────────────────────────────────────────────────────────────

func TestPersonaService_ListPersonas(t *testing.T) {
	svc, repo := newTestPersonaSvc(t)
	ctx := context.Background()
	want := []models.Persona{validPersona()}

	repo.EXPECT().ListPersonas(ctx, models.DefaultPage()).Return(want, nil)

	got, err := svc.ListPersonas(ctx, models.DefaultPage())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPersonaService_ListPersonas_InvalidPage(t *testing.T) {
	svc, _ := newTestPersonaSvc(t)

	_, err := svc.ListPersonas(context.Background(), models.Page{Limit: 1000})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidPageLimit)
}

// ── GetPersona ───────────────────────────────────────────────────────────────

func TestPersonaService_GetPersona(t *testing.T) {
	svc, repo := newTestPersonaSvc(t)

	repo.EXPECT().FindPersonaByRut(gomock.Any(), int64(12345678)).Return(validPersona(), nil)

	got, err := svc.GetPersona(context.Background(), 12345678)

	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Nombre)
}

func TestPersonaService_GetPersona_NotFoundIsPassedThrough(t *testing.T) {
	svc, repo := newTestPersonaSvc(t)

	repo.EXPECT().FindPersonaByRut(gomock.Any(), int64(1)).Return(models.Persona{}, store.ErrPersonaNotFound)

	_, err := svc.GetPersona(context.Background(), 1)

	assert.ErrorIs(t, err, store.ErrPersonaNotFound)
}

// A non-positive rut can never be stored, so it reads as not found and the
// repository is not consulted.
func TestPersonaService_GetPersona_NonPositiveRutIsNotFound(t *testing.T) {
	svc, _ := newTestPersonaSvc(t)

	for _, rut := range []int64{0, -5} {
		_, err := svc.GetPersona(context.Background(), rut)

		assert.ErrorIs(t, err, store.ErrPersonaNotFound)
		assert.NotErrorIs(t, err, ErrInvalidDataProvided)
	}
}

// ── CreatePersona ────────────────────────────────────────────────────────────

func TestPersonaService_CreatePersona(t *testing.T) {
	svc, repo := newTestPersonaSvc(t)
	persona := validPersona()

	repo.EXPECT().CreatePersona(gomock.Any(), persona).Return(persona, nil)

	got, err := svc.CreatePersona(context.Background(), persona)

	require.NoError(t, err)
	assert.Equal(t, persona, got)
}

func TestPersonaService_CreatePersona_ValidationStopsBeforeRepository(t *testing.T) {
	svc, _ := newTestPersonaSvc(t)
	persona := validPersona()
	persona.DigitoVerificador = "Q"

	// no repository expectation: gomock fails the test if it is called
	_, err := svc.CreatePersona(context.Background(), persona)

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidDigitoVerificador)
}

func TestPersonaService_CreatePersona_Duplicate(t *testing.T) {
	svc, repo := newTestPersonaSvc(t)

	repo.EXPECT().CreatePersona(gomock.Any(), gomock.Any()).Return(models.Persona{}, store.ErrPersonaAlreadyExists)

	_, err := svc.CreatePersona(context.Background(), validPersona())

	assert.ErrorIs(t, err, store.ErrPersonaAlreadyExists)
}

// ── UpdatePersona ────────────────────────────────────────────────────────────

func TestPersonaService_UpdatePersona(t *testing.T) {
	svc, repo := newTestPersonaSvc(t)
	update := models.PersonaUpdate{Email: ptr("ana@example.cl")}
	updated := validPersona()
	updated.Email = update.Email

	repo.EXPECT().UpdatePersona(gomock.Any(), int64(12345678), update).Return(updated, nil)

	got, err := svc.UpdatePersona(context.Background(), 12345678, update)

	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestPersonaService_UpdatePersona_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		rut     int64
		update  models.PersonaUpdate
		wantErr error
	}{
		{name: "empty update", rut: 1, update: models.PersonaUpdate{}, wantErr: validators.ErrNoFieldsToUpdate},
		{name: "bad rut", rut: -1, update: models.PersonaUpdate{Nombre: ptr("Ana")}, wantErr: validators.ErrInvalidRut},
		{name: "bad email", rut: 1, update: models.PersonaUpdate{Email: ptr("nope")}, wantErr: validators.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestPersonaSvc(t)

			_, err := svc.UpdatePersona(context.Background(), tt.rut, tt.update)

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── DeletePersona ────────────────────────────────────────────────────────────

func TestPersonaService_DeletePersona(t *testing.T) {
	svc, repo := newTestPersonaSvc(t)

	gomock.InOrder(
		repo.EXPECT().DeletePersona(gomock.Any(), int64(5)).Return(nil),
		repo.EXPECT().DeletePersona(gomock.Any(), int64(5)).Return(store.ErrPersonaNotFound),
	)

	require.NoError(t, svc.DeletePersona(context.Background(), 5))
	assert.ErrorIs(t, svc.DeletePersona(context.Background(), 5), store.ErrPersonaNotFound)
}

func TestPersonaService_DeletePersona_InvalidRut(t *testing.T) {
	svc, _ := newTestPersonaSvc(t)

	assert.ErrorIs(t, svc.DeletePersona(context.Background(), 0), validators.ErrInvalidRut)
}

// ── CheckDB ──────────────────────────────────────────────────────────────────

func TestPersonaService_CheckDB(t *testing.T) {
	svc, repo := newTestPersonaSvc(t)

	gomock.InOrder(
		repo.EXPECT().SelectOne(gomock.Any()).Return(1, nil),
		repo.EXPECT().SelectOne(gomock.Any()).Return(0, store.ErrExecutingQuery),
	)

	got, err := svc.CheckDB(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DBStatus{DBStatus: 1}, got)

	_, err = svc.CheckDB(context.Background())
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}
