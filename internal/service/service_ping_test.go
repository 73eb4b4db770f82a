package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/hola-servers/models"
	"github.com/stretchr/testify/assert"
)

func TestPingService_Ping(t *testing.T) {
	got := NewPingServices().PingService.Ping(context.Background())

	assert.Equal(t, models.PingResponse{Service: "B", Message: "pong desde B"}, got)
}

func TestStatusService_Status(t *testing.T) {
	got := NewStatusService(GatewayServiceName).Status(context.Background())

	assert.Equal(t, models.ServiceStatus{Service: "A", Status: "ok"}, got)
}
