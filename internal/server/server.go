package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/MKhiriev/go-privacy-node/internal/config"
	"github.com/MKhiriev/go-privacy-node/internal/handler"
	"github.com/MKhiriev/go-privacy-node/internal/handler/http"
	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/internal/trust"
)

// shutdownTimeout bounds the graceful shutdown after the run context ends.
const shutdownTimeout = 10 * time.Second

type server struct {
	servers []*httpServer
	logger  *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{logger: logger}

	add := func(name string, h *http.Handler, iface config.Interface) error {
		if h == nil || iface.Address == "" {
			return nil
		}
		log := logger.WithInterface(name)

		var tlsConfig *tls.Config
		if iface.TLS.Enabled() {
			c, err := trust.ServerConfig(iface.TLS, log)
			if err != nil {
				return fmt.Errorf("%s interface tls: %w", name, err)
			}
			tlsConfig = c
		}

		s.servers = append(s.servers, newHTTPServer(name, h.Init(), iface, tlsConfig, log))
		return nil
	}

	if err := add(http.IfaceNode, handlers.Node, cfg.Node); err != nil {
		return nil, err
	}
	if err := add(http.IfaceClient, handlers.Client, cfg.Client); err != nil {
		return nil, err
	}

	if len(s.servers) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) RunServer(ctx context.Context) error {
	listeners := make([]net.Listener, 0, len(s.servers))
	for _, srv := range s.servers {
		ln, err := srv.listen()
		if err != nil {
			for _, l := range listeners {
				_ = l.Close()
			}
			return err
		}
		listeners = append(listeners, ln)
	}
	return s.serve(ctx, listeners)
}

func (s *server) serve(ctx context.Context, listeners []net.Listener) error {
	errCh := make(chan error, len(s.servers))
	var wg sync.WaitGroup
	for i, srv := range s.servers {
		wg.Go(func() {
			if err := srv.serve(listeners[i]); err != nil {
				errCh <- err
			}
		})
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
		s.logger.Err(runErr).Str("func", "*server.serve").Msg("interface stopped unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	shutdownErr := s.Shutdown(shutdownCtx)
	wg.Wait()

	s.logger.Info().Msg("server shutdown gracefully")
	return errors.Join(runErr, shutdownErr)
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	for _, srv := range s.servers {
		if err := srv.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
