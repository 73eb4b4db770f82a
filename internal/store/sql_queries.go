package store

import (
	"fmt"

	"github.com/MKhiriev/hola-servers/models"
	sq "github.com/Masterminds/squirrel"
)

const personaTable = "bdi.persona_natural"

const (
	selectOne     = `SELECT 1;`
	selectVersion = `SELECT version();`
)

var personaColumns = []string{
	"rut",
	"digito_verificador",
	"nombre",
	"apellido_paterno",
	"apellido_materno",
	"chileno",
	"fecha_nacimiento",
	"sexo",
	"email",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildListPersonasQuery(page models.Page) (string, []any, error) {
	query, args, err := psql.
		Select(personaColumns...).
		From(personaTable).
		OrderBy("rut").
		Offset(page.Offset).
		Limit(page.Limit).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindPersonaQuery(rut int64) (string, []any, error) {
	query, args, err := psql.
		Select(personaColumns...).
		From(personaTable).
		Where(sq.Eq{"rut": rut}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertPersonaQuery(p models.Persona) (string, []any, error) {
	query, args, err := psql.
		Insert(personaTable).
		Columns(personaColumns...).
		Values(
			p.Rut,
			p.DigitoVerificador,
			p.Nombre,
			p.ApellidoPaterno,
			p.ApellidoMaterno,
			p.Chileno,
			p.FechaNacimiento,
			p.Sexo,
			p.Email,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdatePersonaQuery sets only the non-nil fields of update. Columns are
// appended in a fixed order so the generated statement is deterministic.
func buildUpdatePersonaQuery(rut int64, update models.PersonaUpdate) (string, []any, error) {
	builder := psql.Update(personaTable)

	if update.DigitoVerificador != nil {
		builder = builder.Set("digito_verificador", *update.DigitoVerificador)
	}
	if update.Nombre != nil {
		builder = builder.Set("nombre", *update.Nombre)
	}
	if update.ApellidoPaterno != nil {
		builder = builder.Set("apellido_paterno", *update.ApellidoPaterno)
	}
	if update.ApellidoMaterno != nil {
		builder = builder.Set("apellido_materno", *update.ApellidoMaterno)
	}
	if update.Chileno != nil {
		builder = builder.Set("chileno", *update.Chileno)
	}
	if update.FechaNacimiento != nil {
		builder = builder.Set("fecha_nacimiento", *update.FechaNacimiento)
	}
	if update.Sexo != nil {
		builder = builder.Set("sexo", *update.Sexo)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}

	query, args, err := builder.Where(sq.Eq{"rut": rut}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeletePersonaQuery(rut int64) (string, []any, error) {
	query, args, err := psql.
		Delete(personaTable).
		Where(sq.Eq{"rut": rut}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
