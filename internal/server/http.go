package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/MKhiriev/go-privacy-node/internal/config"
	"github.com/MKhiriev/go-privacy-node/internal/logger"
)

type httpServer struct {
	name   string
	server *http.Server

	logger *logger.Logger
}

// newHTTPServer serves handler on cfg.Address. A non-nil tlsConfig must carry
// the server certificate; clients are verified during the handshake.
func newHTTPServer(name string, handler http.Handler, cfg config.Interface, tlsConfig *tls.Config, logger *logger.Logger) *httpServer {
	return &httpServer{
		name: name,
		server: &http.Server{
			Addr:         cfg.Address,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			TLSConfig:    tlsConfig,
			ErrorLog:     newErrorLog(logger),
		},
		logger: logger,
	}
}

func (h *httpServer) listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return nil, fmt.Errorf("%s interface listen on %s: %w", h.name, h.server.Addr, err)
	}
	return ln, nil
}

// serve blocks until the server is shut down, then returns nil.
func (h *httpServer) serve(ln net.Listener) error {
	h.logger.Info().
		Str("func", "*httpServer.serve").
		Str("address", ln.Addr().String()).
		Bool("tls", h.server.TLSConfig != nil).
		Msgf("launching %s interface", h.name)

	var err error
	if h.server.TLSConfig != nil {
		// certificates are already in TLSConfig
		err = h.server.ServeTLS(ln, "", "")
	} else {
		err = h.server.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("%s interface: %w", h.name, err)
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Str("func", "*httpServer.Shutdown").Msgf("%s interface shutdown", h.name)
		return err
	}
	return nil
}
