package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidRut               = errors.New("rut must be a positive number")
	ErrInvalidDigitoVerificador = errors.New("digito verificador must be a single digit or K")
	ErrEmptyNombre              = errors.New("nombre is required")
	ErrEmptyApellidoPaterno     = errors.New("apellido paterno is required")
	ErrEmptyApellidoMaterno     = errors.New("apellido materno is required")
	ErrInvalidSexo              = errors.New("sexo must be a single character")
	ErrInvalidEmail             = errors.New("invalid email")
	ErrFieldTooLong             = errors.New("field exceeds 8000 characters")
	ErrNoFieldsToUpdate         = errors.New("at least one field must be provided for update")
	ErrInvalidPageLimit         = errors.New("invalid page limit")
)
