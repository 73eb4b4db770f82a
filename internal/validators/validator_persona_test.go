package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/hola-servers/models"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

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

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewPersonaValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("Persona value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validPersona()))
	})

	t.Run("Persona pointer", func(t *testing.T) {
		p := validPersona()
		require.NoError(t, v.Validate(ctx, &p))
	})

	t.Run("PersonaUpdate pointer", func(t *testing.T) {
		u := models.PersonaUpdate{Nombre: ptr("Ana")}
		require.NoError(t, v.Validate(ctx, &u))
	})

	t.Run("Page", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.DefaultPage()))
	})
}

// ---------------------------------------------------------------------------
// TestValidatePersona
// ---------------------------------------------------------------------------

func TestValidatePersona(t *testing.T) {
	v := NewPersonaValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(p *models.Persona)
		wantErr error
	}{
		{name: "valid", mutate: func(p *models.Persona) {}},
		{name: "valid K check digit", mutate: func(p *models.Persona) { p.DigitoVerificador = "K" }},
		{name: "valid lower k check digit", mutate: func(p *models.Persona) { p.DigitoVerificador = "k" }},
		{name: "valid optional fields", mutate: func(p *models.Persona) {
			p.Sexo = ptr("F")
			p.Email = ptr("ana@example.cl")
			p.Chileno = ptr(true)
		}},
		{name: "zero rut", mutate: func(p *models.Persona) { p.Rut = 0 }, wantErr: ErrInvalidRut},
		{name: "negative rut", mutate: func(p *models.Persona) { p.Rut = -5 }, wantErr: ErrInvalidRut},
		{name: "empty check digit", mutate: func(p *models.Persona) { p.DigitoVerificador = "" }, wantErr: ErrInvalidDigitoVerificador},
		{name: "two char check digit", mutate: func(p *models.Persona) { p.DigitoVerificador = "10" }, wantErr: ErrInvalidDigitoVerificador},
		{name: "letter check digit", mutate: func(p *models.Persona) { p.DigitoVerificador = "X" }, wantErr: ErrInvalidDigitoVerificador},
		{name: "blank nombre", mutate: func(p *models.Persona) { p.Nombre = "  " }, wantErr: ErrEmptyNombre},
		{name: "empty apellido paterno", mutate: func(p *models.Persona) { p.ApellidoPaterno = "" }, wantErr: ErrEmptyApellidoPaterno},
		{name: "empty apellido materno", mutate: func(p *models.Persona) { p.ApellidoMaterno = "" }, wantErr: ErrEmptyApellidoMaterno},
		{name: "long sexo", mutate: func(p *models.Persona) { p.Sexo = ptr("FM") }, wantErr: ErrInvalidSexo},
		{name: "bad email", mutate: func(p *models.Persona) { p.Email = ptr("not-an-email") }, wantErr: ErrInvalidEmail},
		{name: "email with display name", mutate: func(p *models.Persona) { p.Email = ptr("Ana <ana@example.cl>") }, wantErr: ErrInvalidEmail},
		{name: "300 char nombre", mutate: func(p *models.Persona) { p.Nombre = strings.Repeat("a", 300) }},
		{name: "nombre at column width", mutate: func(p *models.Persona) { p.Nombre = strings.Repeat("ñ", MaxTextLength) }},
		{name: "nombre over column width", mutate: func(p *models.Persona) { p.Nombre = strings.Repeat("a", MaxTextLength+1) }, wantErr: ErrFieldTooLong},
		{name: "apellido materno over column width", mutate: func(p *models.Persona) { p.ApellidoMaterno = strings.Repeat("a", MaxTextLength+1) }, wantErr: ErrFieldTooLong},
		{name: "email over column width", mutate: func(p *models.Persona) { p.Email = ptr(strings.Repeat("a", MaxTextLength) + "@example.cl") }, wantErr: ErrFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPersona()
			tt.mutate(&p)
			err := v.Validate(ctx, p)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidatePersona_FieldScoping(t *testing.T) {
	v := NewPersonaValidator()
	ctx := context.Background()

	p := models.Persona{Rut: 1}

	require.NoError(t, v.Validate(ctx, p, FieldRut))
	require.ErrorIs(t, v.Validate(ctx, p, FieldRut, FieldNombre), ErrEmptyNombre)
	require.ErrorIs(t, v.Validate(ctx, p, "unknown"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// TestValidatePersonaUpdate
// ---------------------------------------------------------------------------

func TestValidatePersonaUpdate(t *testing.T) {
	v := NewPersonaValidator()
	ctx := context.Background()

	t.Run("empty update", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.PersonaUpdate{}), ErrNoFieldsToUpdate)
	})

	t.Run("single field", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.PersonaUpdate{Email: ptr("luis@example.cl")}))
	})

	t.Run("blank nombre", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.PersonaUpdate{Nombre: ptr("")}), ErrEmptyNombre)
	})

	t.Run("bad check digit", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.PersonaUpdate{DigitoVerificador: ptr("Z")}), ErrInvalidDigitoVerificador)
	})

	t.Run("apellido paterno over column width", func(t *testing.T) {
		long := strings.Repeat("a", MaxTextLength+1)
		require.ErrorIs(t, v.Validate(ctx, models.PersonaUpdate{ApellidoPaterno: &long}), ErrFieldTooLong)
	})
}

// ---------------------------------------------------------------------------
// TestValidatePage
// ---------------------------------------------------------------------------

func TestValidatePage(t *testing.T) {
	v := NewPersonaValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.Page{Offset: 50, Limit: models.MaxPageLimit}))
	require.ErrorIs(t, v.Validate(ctx, models.Page{Limit: 0}), ErrInvalidPageLimit)
	require.ErrorIs(t, v.Validate(ctx, models.Page{Limit: models.MaxPageLimit + 1}), ErrInvalidPageLimit)
}
