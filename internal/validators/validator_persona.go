package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/hola-servers/models"
)

const (
	FieldRut               = "rut"
	FieldDigitoVerificador = "digito_verificador"
	FieldNombre            = "nombre"
	FieldApellidoPaterno   = "apellido_paterno"
	FieldApellidoMaterno   = "apellido_materno"
	FieldSexo              = "sexo"
	FieldEmail             = "email"
	FieldFields            = "fields"
	FieldLimit             = "limit"
)

// MaxTextLength is the column width of every free-text persona column.
const MaxTextLength = 8000

type PersonaValidator struct {
}

func NewPersonaValidator() Validator {
	return &PersonaValidator{}
}

func (v *PersonaValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Persona:
		return v.validatePersona(ctx, value, fields...)
	case *models.Persona:
		return v.validatePersona(ctx, *value, fields...)

	case models.PersonaUpdate:
		return v.validatePersonaUpdate(ctx, value, fields...)
	case *models.PersonaUpdate:
		return v.validatePersonaUpdate(ctx, *value, fields...)

	case models.Page:
		return v.validatePage(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PersonaValidator) validatePersona(_ context.Context, persona models.Persona, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRut, FieldDigitoVerificador, FieldNombre, FieldApellidoPaterno, FieldApellidoMaterno, FieldSexo, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldRut:
			if persona.Rut <= 0 {
				return ErrInvalidRut
			}
		case FieldDigitoVerificador:
			if !isValidDigitoVerificador(persona.DigitoVerificador) {
				return ErrInvalidDigitoVerificador
			}
		case FieldNombre:
			if isBlank(persona.Nombre) {
				return ErrEmptyNombre
			}
			if tooLong(persona.Nombre) {
				return ErrFieldTooLong
			}
		case FieldApellidoPaterno:
			if isBlank(persona.ApellidoPaterno) {
				return ErrEmptyApellidoPaterno
			}
			if tooLong(persona.ApellidoPaterno) {
				return ErrFieldTooLong
			}
		case FieldApellidoMaterno:
			if isBlank(persona.ApellidoMaterno) {
				return ErrEmptyApellidoMaterno
			}
			if tooLong(persona.ApellidoMaterno) {
				return ErrFieldTooLong
			}
		case FieldSexo:
			if persona.Sexo != nil && utf8.RuneCountInString(*persona.Sexo) != 1 {
				return ErrInvalidSexo
			}
		case FieldEmail:
			if persona.Email != nil && tooLong(*persona.Email) {
				return ErrFieldTooLong
			}
			if persona.Email != nil && !isValidEmail(*persona.Email) {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PersonaValidator) validatePersonaUpdate(_ context.Context, update models.PersonaUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFields, FieldDigitoVerificador, FieldNombre, FieldApellidoPaterno, FieldApellidoMaterno, FieldSexo, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldFields:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldDigitoVerificador:
			if update.DigitoVerificador != nil && !isValidDigitoVerificador(*update.DigitoVerificador) {
				return ErrInvalidDigitoVerificador
			}
		case FieldNombre:
			if update.Nombre != nil && isBlank(*update.Nombre) {
				return ErrEmptyNombre
			}
			if update.Nombre != nil && tooLong(*update.Nombre) {
				return ErrFieldTooLong
			}
		case FieldApellidoPaterno:
			if update.ApellidoPaterno != nil && isBlank(*update.ApellidoPaterno) {
				return ErrEmptyApellidoPaterno
			}
			if update.ApellidoPaterno != nil && tooLong(*update.ApellidoPaterno) {
				return ErrFieldTooLong
			}
		case FieldApellidoMaterno:
			if update.ApellidoMaterno != nil && isBlank(*update.ApellidoMaterno) {
				return ErrEmptyApellidoMaterno
			}
			if update.ApellidoMaterno != nil && tooLong(*update.ApellidoMaterno) {
				return ErrFieldTooLong
			}
		case FieldSexo:
			if update.Sexo != nil && utf8.RuneCountInString(*update.Sexo) != 1 {
				return ErrInvalidSexo
			}
		case FieldEmail:
			if update.Email != nil && tooLong(*update.Email) {
				return ErrFieldTooLong
			}
			if update.Email != nil && !isValidEmail(*update.Email) {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PersonaValidator) validatePage(_ context.Context, page models.Page, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldLimit:
			if page.Limit == 0 || page.Limit > models.MaxPageLimit {
				return ErrInvalidPageLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidDigitoVerificador(dv string) bool {
	if len(dv) != 1 {
		return false
	}

	c := dv[0]
	return (c >= '0' && c <= '9') || c == 'K' || c == 'k'
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func tooLong(s string) bool {
	return utf8.RuneCountInString(s) > MaxTextLength
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
