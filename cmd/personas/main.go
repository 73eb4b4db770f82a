package main

import (
	"github.com/MKhiriev/hola-servers/internal/config"
	"github.com/MKhiriev/hola-servers/internal/handler/http"
	"github.com/MKhiriev/hola-servers/internal/logger"
	"github.com/MKhiriev/hola-servers/internal/server"
	"github.com/MKhiriev/hola-servers/internal/service"
	"github.com/MKhiriev/hola-servers/internal/store"
)

func main() {
	log := logger.NewLogger("personas")

	cfg, err := config.LoadPersonasConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := server.NotifyContext()
	defer stop()

	db, err := store.NewConnectPostgres(ctx, cfg.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating database")
	}

	services := service.NewPersonaServices(store.NewStorages(db, log), log)

	srv := server.NewHTTPServer(http.NewHandler(services, log).InitPersonas(), cfg.Port, log)
	if err = srv.Listen(); err != nil {
		log.Fatal().Err(err).Msg("error starting server")
	}

	log.Info().Str("url", srv.URL()).Msg("personas service listening")

	if err = srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}
