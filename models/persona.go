package models

import "time"

// Persona is a natural person record identified by its RUT (Rol Único
// Tributario) number.
type Persona struct {
	// Rut is the numeric part of the identifier. Primary key.
	Rut int64 `json:"rut"`

	// DigitoVerificador is the check digit, 0-9 or K.
	DigitoVerificador string `json:"digito_verificador"`

	Nombre          string `json:"nombre"`
	ApellidoPaterno string `json:"apellido_paterno"`
	ApellidoMaterno string `json:"apellido_materno"`

	// Optional fields are NULL-able in the database.
	Chileno         *bool      `json:"chileno"`
	FechaNacimiento *time.Time `json:"fecha_nacimiento"`
	Sexo            *string    `json:"sexo"`
	Email           *string    `json:"email"`
}

// PersonaUpdate is a partial update of a [Persona]. Only non-nil fields are
// written.
type PersonaUpdate struct {
	DigitoVerificador *string    `json:"digito_verificador,omitempty"`
	Nombre            *string    `json:"nombre,omitempty"`
	ApellidoPaterno   *string    `json:"apellido_paterno,omitempty"`
	ApellidoMaterno   *string    `json:"apellido_materno,omitempty"`
	Chileno           *bool      `json:"chileno,omitempty"`
	FechaNacimiento   *time.Time `json:"fecha_nacimiento,omitempty"`
	Sexo              *string    `json:"sexo,omitempty"`
	Email             *string    `json:"email,omitempty"`
}

// IsEmpty reports whether the update carries no field at all.
func (u PersonaUpdate) IsEmpty() bool {
	return u == PersonaUpdate{}
}

const (
	// DefaultPageLimit is the page size used when none is requested.
	DefaultPageLimit uint64 = 10
	// MaxPageLimit caps the page size a caller may request.
	MaxPageLimit uint64 = 100
)

// Page selects a window of an ordered listing.
type Page struct {
	Offset uint64
	Limit  uint64
}

// DefaultPage returns the first page of [DefaultPageLimit] items.
func DefaultPage() Page {
	return Page{Offset: 0, Limit: DefaultPageLimit}
}
