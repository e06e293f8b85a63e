// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-privacy-node/internal/logger"
)

// DiscoveryWorker exchanges party info with the known nodes and bootnodes
// once at start and then every interval.
type DiscoveryWorker struct {
	discoverer Discoverer
	interval   time.Duration

	logger *logger.Logger
}

func NewDiscoveryWorker(discoverer Discoverer, interval time.Duration, logger *logger.Logger) *DiscoveryWorker {
	return &DiscoveryWorker{
		discoverer: discoverer,
		interval:   interval,
		logger:     logger,
	}
}

func (w *DiscoveryWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info().Str("func", "*DiscoveryWorker.Run").Msg("network discovery disabled")
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.round(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (w *DiscoveryWorker) round(ctx context.Context) {
	changed, err := w.discoverer.Discover(ctx)
	if err != nil {
		// partial failure, the reachable nodes were still merged
		w.logger.Warn().Err(err).Str("func", "*DiscoveryWorker.round").Int("changed", changed).Msg("discovery round incomplete")
		return
	}
	if changed > 0 {
		w.logger.Info().Str("func", "*DiscoveryWorker.round").Int("changed", changed).Msg("network directory updated")
	}
}
