package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/hola-servers/internal/service"
	"github.com/MKhiriev/hola-servers/internal/store"
)

var errorStatusMap = map[error]int{
	errInvalidJSON:   http.StatusBadRequest,
	errInvalidRut:    http.StatusBadRequest,
	errInvalidOffset: http.StatusBadRequest,
	errInvalidLimit:  http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,

	store.ErrPersonaNotFound:      http.StatusNotFound,
	store.ErrPersonaAlreadyExists: http.StatusConflict,
	store.ErrPersonaDataTooLong:   http.StatusBadRequest,

	store.ErrBuildingSQLQuery:  http.StatusInternalServerError,
	store.ErrExecutingQuery:    http.StatusInternalServerError,
	store.ErrScanningRow:       http.StatusInternalServerError,
	store.ErrScanningRows:      http.StatusInternalServerError,
	store.ErrOpeningConnection: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
