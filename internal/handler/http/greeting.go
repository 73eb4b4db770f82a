package http

import (
	"io"
	"net/http"
)

const (
	contentTypePlain = "text/plain"
	contentTypeHTML  = "text/html; charset=utf-8"
)

// plainGreeting answers any method on any path with the greeting.
func (h *Handler) plainGreeting(w http.ResponseWriter, r *http.Request) {
	writeText(w, contentTypePlain, h.services.GreetingService.Greet(r.Context()))
}

func (h *Handler) routedGreeting(w http.ResponseWriter, r *http.Request) {
	writeText(w, contentTypeHTML, h.services.GreetingService.Greet(r.Context()))
}

func writeText(w http.ResponseWriter, contentType, body string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, body)
}
