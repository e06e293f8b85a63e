package http

import (
	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/internal/metrics"
	"github.com/MKhiriev/go-privacy-node/internal/service"
	"github.com/MKhiriev/go-privacy-node/internal/utils"
)

// Network interfaces served by a [Handler].
const (
	IfaceNode   = "node"
	IfaceClient = "client"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	iface    string
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler returns the handler of one network interface, IfaceNode or
// IfaceClient.
func NewHandler(services *service.Services, m *metrics.Metrics, iface string, logger *logger.Logger) *Handler {
	log := logger.WithInterface(iface)
	log.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  m,
		iface:    iface,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   log,
	}
}
