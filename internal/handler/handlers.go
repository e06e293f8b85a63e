package handler

import (
	"github.com/MKhiriev/go-privacy-node/internal/config"
	"github.com/MKhiriev/go-privacy-node/internal/handler/http"
	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/internal/metrics"
	"github.com/MKhiriev/go-privacy-node/internal/service"
)

// Handlers holds the handler of each configured network interface.
type Handlers struct {
	Node   *http.Handler
	Client *http.Handler
}

func NewHandlers(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Node.Address != "" {
		handlers.Node = http.NewHandler(services, m, http.IfaceNode, logger)
	}
	if cfg.Client.Address != "" {
		handlers.Client = http.NewHandler(services, m, http.IfaceClient, logger)
	}

	if handlers.Node == nil && handlers.Client == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
