package main

import (
	"github.com/MKhiriev/hola-servers/internal/config"
	"github.com/MKhiriev/hola-servers/internal/handler/http"
	"github.com/MKhiriev/hola-servers/internal/logger"
	"github.com/MKhiriev/hola-servers/internal/server"
	"github.com/MKhiriev/hola-servers/internal/service"
)

func main() {
	log := logger.NewLogger("service-b")

	cfg, err := config.LoadPingConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := server.NotifyContext()
	defer stop()

	srv := server.NewHTTPServer(http.NewHandler(service.NewPingServices(), log).InitPing(), cfg.Port, log)
	if err = srv.Listen(); err != nil {
		log.Fatal().Err(err).Msg("error starting server")
	}

	log.Info().Str("url", srv.URL()).Msg("ping service listening")

	if err = srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
