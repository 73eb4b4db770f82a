package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hola-servers/internal/config"
	"github.com/MKhiriev/hola-servers/internal/logger"
)

// Greeting formats. The single verb is replaced by the configured name.
const (
	PlainGreetingFormat  = "Hola, %s!"
	RoutedGreetingFormat = "¡Hola %s desde Express.js!"
)

type greetingService struct {
	greeting string
}

// NewGreetingService renders format with cfg.Name once; every call to Greet
// returns the same string.
func NewGreetingService(format string, cfg config.ServerConfig, logger *logger.Logger) (GreetingService, error) {
	if format == "" {
		return nil, ErrFormatIsNotSpecified
	}
	if cfg.Name == "" {
		return nil, ErrNameIsNotSpecified
	}

	greeting := fmt.Sprintf(format, cfg.Name)
	logger.Debug().Str("greeting", greeting).Msg("creating greeting service")

	return &greetingService{greeting: greeting}, nil
}

func (s *greetingService) Greet(ctx context.Context) string {
	return s.greeting
}
