package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/hola-servers/internal/logger"
	"github.com/MKhiriev/hola-servers/models"
	"github.com/jackc/pgerrcode"
)

// personaRepository is the PostgreSQL-backed implementation of
// [PersonaRepository] over the bdi.persona_natural table.
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type personaRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPersonaRepository constructs a [PersonaRepository] backed by db.
func NewPersonaRepository(db *DB, logger *logger.Logger) PersonaRepository {
	logger.Debug().Msg("creating persona repository")
	return &personaRepository{
		db:     db,
		logger: logger,
	}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPersona(row scanner, persona *models.Persona) error {
	return row.Scan(
		&persona.Rut,
		&persona.DigitoVerificador,
		&persona.Nombre,
		&persona.ApellidoPaterno,
		&persona.ApellidoMaterno,
		&persona.Chileno,
		&persona.FechaNacimiento,
		&persona.Sexo,
		&persona.Email,
	)
}

// ListPersonas returns one page of personas ordered by rut.
func (r *personaRepository) ListPersonas(ctx context.Context, page models.Page) ([]models.Persona, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPersonasQuery(page)
	if err != nil {
		log.Err(err).Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Uint64("offset", page.Offset).Uint64("limit", page.Limit).Msg("failed to list personas")
		return nil, wrapQueryError(err)
	}
	defer rows.Close()

	personas := make([]models.Persona, 0, page.Limit)
	for rows.Next() {
		var persona models.Persona
		if err := scanPersona(rows, &persona); err != nil {
			log.Err(err).Msg("failed to scan persona row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		personas = append(personas, persona)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Msg("error iterating persona rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return personas, nil
}

// FindPersonaByRut returns [ErrPersonaNotFound] when no row matches.
func (r *personaRepository) FindPersonaByRut(ctx context.Context, rut int64) (models.Persona, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindPersonaQuery(rut)
	if err != nil {
		log.Err(err).Msg("failed to create query")
		return models.Persona{}, err
	}

	var persona models.Persona
	if err := scanPersona(r.db.QueryRowContext(ctx, query, args...), &persona); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Persona{}, ErrPersonaNotFound
		}

		log.Err(err).Int64("rut", rut).Msg("failed to find persona")
		if isConnectionError(err) {
			return models.Persona{}, fmt.Errorf("%w: %w", ErrOpeningConnection, err)
		}
		return models.Persona{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return persona, nil
}

// CreatePersona inserts persona and returns it unchanged.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrPersonaAlreadyExists].
//   - PostgreSQL string_data_right_truncation (22001) → [ErrPersonaDataTooLong].
//   - Unreachable database → wrapped [ErrOpeningConnection].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *personaRepository) CreatePersona(ctx context.Context, persona models.Persona) (models.Persona, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPersonaQuery(persona)
	if err != nil {
		log.Err(err).Msg("failed to create query")
		return models.Persona{}, err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Int64("rut", persona.Rut).Msg("failed to insert persona")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Persona{}, ErrPersonaAlreadyExists
		case pgerrcode.StringDataRightTruncationDataException:
			return models.Persona{}, fmt.Errorf("%w: %w", ErrPersonaDataTooLong, err)
		default:
			return models.Persona{}, wrapQueryError(err)
		}
	}

	return persona, nil
}

// UpdatePersona applies update and returns the stored row afterwards.
func (r *personaRepository) UpdatePersona(ctx context.Context, rut int64, update models.PersonaUpdate) (models.Persona, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePersonaQuery(rut, update)
	if err != nil {
		log.Err(err).Msg("failed to create query")
		return models.Persona{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Int64("rut", rut).Msg("failed to update persona")
		if postgresError(err) == pgerrcode.StringDataRightTruncationDataException {
			return models.Persona{}, fmt.Errorf("%w: %w", ErrPersonaDataTooLong, err)
		}
		return models.Persona{}, wrapQueryError(err)
	}

	if err := expectAffected(result); err != nil {
		return models.Persona{}, err
	}

	return r.FindPersonaByRut(ctx, rut)
}

// DeletePersona returns [ErrPersonaNotFound] when no row was deleted.
func (r *personaRepository) DeletePersona(ctx context.Context, rut int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePersonaQuery(rut)
	if err != nil {
		log.Err(err).Msg("failed to create query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Int64("rut", rut).Msg("failed to delete persona")
		return wrapQueryError(err)
	}

	return expectAffected(result)
}

func (r *personaRepository) SelectOne(ctx context.Context) (int, error) {
	var one int
	if err := r.db.QueryRowContext(ctx, selectOne).Scan(&one); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database check failed")
		return 0, wrapQueryError(err)
	}

	return one, nil
}

func expectAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPersonaNotFound
	}

	return nil
}
