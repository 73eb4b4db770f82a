package main

import (
	"github.com/MKhiriev/hola-servers/internal/adapter"
	"github.com/MKhiriev/hola-servers/internal/config"
	"github.com/MKhiriev/hola-servers/internal/handler/http"
	"github.com/MKhiriev/hola-servers/internal/logger"
	"github.com/MKhiriev/hola-servers/internal/server"
	"github.com/MKhiriev/hola-servers/internal/service"
	"github.com/MKhiriev/hola-servers/internal/store"
)

func main() {
	log := logger.NewLogger("service-a")

	cfg, err := config.LoadGatewayConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("service_b", cfg.ServiceB.BaseURL()).
		Str("postgres_host", cfg.Postgres.Host).
		Msg("received configs")

	peer := adapter.NewHTTPPeerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.ServiceB.BaseURL(),
		Timeout: cfg.ServiceB.Timeout,
	})
	probe := store.NewVersionProbe(cfg.Postgres.DSN(), log)

	ctx, stop := server.NotifyContext()
	defer stop()

	handler := http.NewHandler(service.NewGatewayServices(peer, probe, log), log)
	srv := server.NewHTTPServer(handler.InitGateway(), cfg.Port, log)
	if err = srv.Listen(); err != nil {
		log.Fatal().Err(err).Msg("error starting server")
	}

	log.Info().Str("url", srv.URL()).Msg("gateway service listening")

	if err = srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
