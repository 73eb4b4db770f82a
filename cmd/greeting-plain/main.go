package main

import (
	"github.com/MKhiriev/hola-servers/internal/config"
	"github.com/MKhiriev/hola-servers/internal/handler/http"
	"github.com/MKhiriev/hola-servers/internal/logger"
	"github.com/MKhiriev/hola-servers/internal/server"
	"github.com/MKhiriev/hola-servers/internal/service"
)

func main() {
	log := logger.NewLogger("greeting-plain")

	cfg, err := config.LoadPlainConfig(log)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	services, err := service.NewGreetingServices(service.PlainGreetingFormat, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	srv := server.NewHTTPServer(http.NewHandler(services, log).InitPlainGreeting(), cfg.Port, log)
	if err = srv.Listen(); err != nil {
		log.Fatal().Err(err).Msg("error starting server")
	}

	log.Info().Msgf("Server running at %s/", srv.URL())

	if err = srv.Serve(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
