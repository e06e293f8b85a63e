package service

import (
	"github.com/MKhiriev/go-privacy-node/internal/adapter"
	"github.com/MKhiriev/go-privacy-node/internal/config"
	"github.com/MKhiriev/go-privacy-node/internal/enclave"
	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/internal/metrics"
	"github.com/MKhiriev/go-privacy-node/internal/store"
)

type Services struct {
	DistributionService DistributionService
	PrivacyGroupService PrivacyGroupService
	NodeService         NodeService
}

func NewServices(
	storages *store.Storages,
	enc enclave.Enclave,
	directory NodeDirectory,
	peers adapter.PeerAdapter,
	m *metrics.Metrics,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) *Services {
	fan := NewFanout(directory, enc.NodeKeys(), cfg.Adapter, m)
	groups := NewPrivacyGroupService(storages.PrivacyGroups, peers, fan, m, logger)

	return &Services{
		DistributionService: NewDistributionService(enc, storages.Payloads, groups, peers, fan, m, logger),
		PrivacyGroupService: groups,
		NodeService:         NewNodeService(directory, peers, enc.NodeKeys(), cfg.App.OtherNodes, cfg.Adapter.MaxConcurrentPushes, logger),
	}
}
