// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/MKhiriev/go-privacy-node/internal/adapter"
	"github.com/MKhiriev/go-privacy-node/internal/config"
	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/internal/metrics"
	"github.com/MKhiriev/go-privacy-node/models"
	"golang.org/x/sync/errgroup"
)

// push kinds used in logs and metrics
const (
	kindPayload = "payload"
	kindGroup   = "group"
)

// sendFunc performs one push to one node.
type sendFunc func(ctx context.Context, nodeURL string) (adapter.Delivery, error)

// Fanout delivers one record to the nodes of a recipient set. Recipients
// sharing a node URL get a single push; every recipient gets an outcome.
type Fanout struct {
	directory NodeDirectory
	localKeys []models.PublicKey

	limit    int
	deadline time.Duration

	metrics *metrics.Metrics
}

// fallbackPushDeadline applies when no push timeout is configured.
const fallbackPushDeadline = 30 * time.Second

func NewFanout(directory NodeDirectory, localKeys []models.PublicKey, cfg config.Adapter, m *metrics.Metrics) *Fanout {
	attempts := max(cfg.PushAttempts, 1)

	// every attempt bounded by PushTimeout, plus the worst case backoff
	deadline := time.Duration(attempts) * (cfg.PushTimeout + 4*cfg.RetryWait)
	if cfg.PushTimeout <= 0 {
		deadline = fallbackPushDeadline
	}

	return &Fanout{
		directory: directory,
		localKeys: slices.Clone(localKeys),
		limit:     max(cfg.MaxConcurrentPushes, 1),
		deadline:  deadline,
		metrics:   m,
	}
}

func (f *Fanout) isLocal(key models.PublicKey) bool {
	return models.ContainsKey(f.localKeys, key)
}

// deliver pushes to every non-local recipient and waits until each push
// reported. The pushes are detached from ctx cancellation; each one is bounded
// by its own deadline instead.
func (f *Fanout) deliver(ctx context.Context, kind string, recipients []models.PublicKey, send sendFunc) []models.PushOutcome {
	log := logger.FromContext(ctx)
	detached := context.WithoutCancel(ctx)

	outcomes := make([]models.PushOutcome, len(recipients))
	byURL := make(map[string][]int)
	var urls []string

	for i, recipient := range recipients {
		outcomes[i].Recipient = recipient

		if f.isLocal(recipient) {
			outcomes[i].Local = true
			outcomes[i].Delivered = true
			f.metrics.Push(kind, metrics.PushLocal)
			continue
		}

		nodeURL, ok := f.directory.Resolve(recipient)
		if !ok {
			outcomes[i].Error = ErrUnknownNode.Error()
			f.metrics.Push(kind, metrics.PushUnknownNode)
			log.Warn().Str("func", "*Fanout.deliver").Str("recipient", recipient.String()).Msg("no node url for recipient")
			continue
		}

		outcomes[i].URL = nodeURL
		if _, seen := byURL[nodeURL]; !seen {
			urls = append(urls, nodeURL)
		}
		byURL[nodeURL] = append(byURL[nodeURL], i)
	}

	var g errgroup.Group
	g.SetLimit(f.limit)

	for _, nodeURL := range urls {
		// each task writes only the outcomes of its own recipients
		g.Go(func() error {
			pushCtx, cancel := context.WithTimeout(detached, f.deadline)
			defer cancel()

			started := time.Now()
			delivery, err := send(pushCtx, nodeURL)
			f.metrics.PushDuration(time.Since(started).Seconds())

			result := metrics.PushDelivered
			if err != nil {
				result = metrics.PushFailed
				log.Warn().Err(err).
					Str("func", "*Fanout.deliver").
					Str("kind", kind).
					Str("url", nodeURL).
					Int("attempts", delivery.Attempts).
					Msg("push failed")
			}

			for _, i := range byURL[nodeURL] {
				outcomes[i].Attempts = delivery.Attempts
				outcomes[i].Delivered = err == nil
				if err != nil {
					outcomes[i].Error = pushError(err)
				}
				f.metrics.Push(kind, result)
			}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func pushError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "push timed out: " + err.Error()
	}
	return err.Error()
}
