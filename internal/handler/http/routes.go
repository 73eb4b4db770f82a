package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// InitPlainGreeting returns the handler of the plain greeting server. It has
// no routes: every method on every path gets the greeting, and no header
// beyond Content-Type is added.
func (h *Handler) InitPlainGreeting() http.Handler {
	return h.withContextLogger(withLogging(http.HandlerFunc(h.plainGreeting)))
}

// InitRoutedGreeting serves the greeting on GET / only. HEAD / is answered by
// the same handler; anything else gets the router's not-found response.
func (h *Handler) InitRoutedGreeting() *chi.Mux {
	router := h.newRouter()
	router.Use(middleware.GetHead)

	router.Get("/", h.routedGreeting)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) InitPing() *chi.Mux {
	router := h.newRouter()

	router.Get("/ping", h.ping)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) InitGateway() *chi.Mux {
	router := h.newRouter()

	router.Get("/", h.status)
	router.Get("/check-b", h.checkPeer)
	router.Get("/check-db", h.checkDB)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) InitPersonas() *chi.Mux {
	router := h.newRouter()
	router.Use(middleware.Compress(5, "application/json"))

	router.Get("/", h.apiRoot)
	router.Get("/db-check", h.dbCheck)

	router.Get("/personas", h.listPersonas)
	router.Post("/personas", h.createPersona)
	router.Get("/personas/{rut}", h.getPersona)
	router.Put("/personas/{rut}", h.updatePersona)
	router.Delete("/personas/{rut}", h.deletePersona)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// newRouter returns a router with the middleware shared by every routed
// binary.
func (h *Handler) newRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)

	return router
}
