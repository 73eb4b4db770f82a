package http

import (
	"net/http"

	"github.com/MKhiriev/hola-servers/internal/utils"
)

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.PingService.Ping(r.Context()), http.StatusOK)
}
