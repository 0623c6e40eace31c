package http

import (
	"github.com/MKhiriev/go-project-hub/internal/config"
	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/metrics"
	"github.com/MKhiriev/go-project-hub/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server
	metrics  *metrics.Metrics

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A nil m disables request metrics and
// the /metrics route.
func NewHandler(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		metrics:  m,
		logger:   logger,
	}
}
