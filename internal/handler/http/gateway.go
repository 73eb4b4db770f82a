package http

import (
	"net/http"

	"github.com/MKhiriev/hola-servers/internal/logger"
	"github.com/MKhiriev/hola-servers/internal/utils"
	"github.com/MKhiriev/hola-servers/models"
)

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.StatusService.Status(r.Context()), http.StatusOK)
}

func (h *Handler) checkPeer(w http.ResponseWriter, r *http.Request) {
	check, err := h.services.CheckService.CheckPeer(r.Context())
	if err != nil {
		writeProbeError(w, r, err)
		return
	}

	utils.WriteJSON(w, check, http.StatusOK)
}

func (h *Handler) checkDB(w http.ResponseWriter, r *http.Request) {
	check, err := h.services.CheckService.CheckDB(r.Context())
	if err != nil {
		writeProbeError(w, r, err)
		return
	}

	utils.WriteJSON(w, check, http.StatusOK)
}

// writeProbeError reports a failed dependency probe. Probes always answer
// 200: the failure is the payload.
func writeProbeError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Warn().Err(err).Msg("probe failed")
	utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusOK)
}
