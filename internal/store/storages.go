package store

import "github.com/MKhiriev/hola-servers/internal/logger"

type Storages struct {
	PersonaRepository PersonaRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		PersonaRepository: NewPersonaRepository(db, logger),
	}
}
