package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-privacy-node/internal/adapter"
	"github.com/MKhiriev/go-privacy-node/internal/config"
	"github.com/MKhiriev/go-privacy-node/internal/enclave"
	"github.com/MKhiriev/go-privacy-node/internal/handler"
	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/internal/metrics"
	"github.com/MKhiriev/go-privacy-node/internal/network"
	"github.com/MKhiriev/go-privacy-node/internal/server"
	"github.com/MKhiriev/go-privacy-node/internal/service"
	"github.com/MKhiriev/go-privacy-node/internal/store"
	"github.com/MKhiriev/go-privacy-node/internal/store/kv"
	"github.com/MKhiriev/go-privacy-node/internal/trust"
	"github.com/MKhiriev/go-privacy-node/internal/workers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// App is a fully wired node.
type App struct {
	Enclave   *enclave.NaclEnclave
	Directory *network.Directory
	Services  *service.Services

	kv      kv.Store
	server  server.Server
	workers *workers.Workers

	logger *logger.Logger
}

// New builds the node described by cfg. Nothing listens until [App.Run].
func New(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	enc, err := newEnclave(cfg.App, log)
	if err != nil {
		return nil, err
	}

	kvStore, err := kv.New(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	a := &App{Enclave: enc, kv: kvStore, logger: log}

	if err := a.wire(ctx, cfg); err != nil {
		_ = kvStore.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) wire(ctx context.Context, cfg *config.StructuredConfig) error {
	storages := store.NewStorages(a.kv, a.logger)

	directory, err := network.NewDirectory(ctx, storages.Records, cfg.App.NodeURL, a.logger)
	if err != nil {
		return fmt.Errorf("load network directory: %w", err)
	}
	a.Directory = directory

	var transport http.RoundTripper
	if cfg.Server.Node.TLS.Enabled() {
		dialer, err := trust.ClientDialer(cfg.Server.Node.TLS, a.logger.WithInterface("node"))
		if err != nil {
			return fmt.Errorf("node interface client tls: %w", err)
		}
		transport = dialer.Transport()
	}
	peers := adapter.NewHTTPPeerAdapter(cfg.Adapter, transport, a.logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	a.Services = service.NewServices(storages, a.Enclave, directory, peers, m, *cfg, a.logger)
	if err := a.Services.NodeService.RegisterLocalKeys(ctx); err != nil {
		return err
	}

	handlers, err := handler.NewHandlers(a.Services, m, cfg.Server, a.logger)
	if err != nil {
		return err
	}
	a.server, err = server.NewServer(handlers, cfg.Server, a.logger)
	if err != nil {
		return err
	}

	a.workers = workers.NewWorkers(
		workers.NewDiscoveryWorker(a.Services.NodeService, cfg.Workers.DiscoveryInterval, a.logger),
	)

	for _, key := range a.Enclave.NodeKeys() {
		a.logger.Info().Str("func", "*App.wire").Str("public_key", key.String()).Msg("serving identity")
	}
	return nil
}

// Run serves both interfaces and runs the workers until ctx is cancelled,
// then closes the storage.
func (a *App) Run(ctx context.Context) error {
	workersCtx, stopWorkers := context.WithCancel(ctx)
	workersDone := make(chan struct{})
	go func() {
		a.workers.Run(workersCtx)
		close(workersDone)
	}()

	runErr := a.server.RunServer(ctx)

	stopWorkers()
	<-workersDone

	return errors.Join(runErr, a.kv.Close())
}
