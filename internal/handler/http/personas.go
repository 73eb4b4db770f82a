package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/hola-servers/internal/logger"
	"github.com/MKhiriev/hola-servers/internal/store"
	"github.com/MKhiriev/hola-servers/internal/utils"
	"github.com/MKhiriev/hola-servers/models"
	"github.com/go-chi/chi/v5"
)

const (
	rutParam    = "rut"
	offsetParam = "offset"
	limitParam  = "limit"
)

// apiRootMessage is the body of the personas service root.
const apiRootMessage = "¡FastAPI funcionando con Docker Compose!"

func (h *Handler) apiRoot(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.Message{Message: apiRootMessage}, http.StatusOK)
}

func (h *Handler) dbCheck(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.PersonaService.CheckDB(r.Context())
	if err != nil {
		writeError(w, r, err, "database check failed")
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) listPersonas(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		writeError(w, r, err, "invalid pagination parameters")
		return
	}

	personas, err := h.services.PersonaService.ListPersonas(r.Context(), page)
	if err != nil {
		writeError(w, r, err, "error listing personas")
		return
	}
	if personas == nil {
		personas = []models.Persona{}
	}

	utils.WriteJSON(w, personas, http.StatusOK)
}

// getPersona answers null for an unknown rut.
func (h *Handler) getPersona(w http.ResponseWriter, r *http.Request) {
	rut, err := rutFromPath(r)
	if err != nil {
		writeError(w, r, err, "invalid rut")
		return
	}

	persona, err := h.services.PersonaService.GetPersona(r.Context(), rut)
	if errors.Is(err, store.ErrPersonaNotFound) {
		utils.WriteJSON(w, nil, http.StatusOK)
		return
	}
	if err != nil {
		writeError(w, r, err, "error getting persona")
		return
	}

	utils.WriteJSON(w, persona, http.StatusOK)
}

func (h *Handler) createPersona(w http.ResponseWriter, r *http.Request) {
	var persona models.Persona
	if err := json.NewDecoder(r.Body).Decode(&persona); err != nil {
		writeError(w, r, errInvalidJSON, err.Error())
		return
	}

	created, err := h.services.PersonaService.CreatePersona(r.Context(), persona)
	if err != nil {
		writeError(w, r, err, "error creating persona")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updatePersona(w http.ResponseWriter, r *http.Request) {
	rut, err := rutFromPath(r)
	if err != nil {
		writeError(w, r, err, "invalid rut")
		return
	}

	var update models.PersonaUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, r, errInvalidJSON, err.Error())
		return
	}

	updated, err := h.services.PersonaService.UpdatePersona(r.Context(), rut, update)
	if err != nil {
		writeError(w, r, err, "error updating persona")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deletePersona(w http.ResponseWriter, r *http.Request) {
	rut, err := rutFromPath(r)
	if err != nil {
		writeError(w, r, err, "invalid rut")
		return
	}

	if err = h.services.PersonaService.DeletePersona(r.Context(), rut); err != nil {
		writeError(w, r, err, "error deleting persona")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func rutFromPath(r *http.Request) (int64, error) {
	rut, err := strconv.ParseInt(chi.URLParam(r, rutParam), 10, 64)
	if err != nil {
		return 0, errInvalidRut
	}
	return rut, nil
}

// pageFromQuery reads offset and limit, falling back to [models.DefaultPage]
// for absent parameters. Range checks are left to the service.
func pageFromQuery(r *http.Request) (models.Page, error) {
	page := models.DefaultPage()
	query := r.URL.Query()

	if raw := query.Get(offsetParam); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.Page{}, errInvalidOffset
		}
		page.Offset = offset
	}

	if raw := query.Get(limitParam); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.Page{}, errInvalidLimit
		}
		page.Limit = limit
	}

	return page, nil
}

// writeError logs err and answers with its mapped status and a JSON error
// body.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Msg(msg)
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, status)
}
