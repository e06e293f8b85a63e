// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-privacy-node/internal/config"
	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/internal/utils"
	"github.com/MKhiriev/go-privacy-node/models"
	"github.com/go-resty/resty/v2"
)

const (
	pushPath             = "/push"
	pushPrivacyGroupPath = "/pushPrivacyGroup"
	partyInfoPath        = "/partyinfo"
)

type httpPeerAdapter struct {
	client   *utils.HTTPClient
	attempts int

	logger *logger.Logger
}

// NewHTTPPeerAdapter constructs the HTTP implementation of [PeerAdapter].
// Every request is bounded by cfg.PushTimeout per attempt and by
// cfg.PushAttempts in total. transport, when non-nil, replaces the default
// one; the node passes the trust enforcing transport here.
func NewHTTPPeerAdapter(cfg config.Adapter, transport http.RoundTripper, log *logger.Logger) PeerAdapter {
	attempts := max(cfg.PushAttempts, 1)

	client := utils.NewHTTPClient()
	client.
		SetTimeout(cfg.PushTimeout).
		SetRetryCount(attempts - 1).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(max(cfg.RetryWait*4, cfg.RetryWait)).
		AddRetryCondition(retryable)
	if transport != nil {
		client.SetTransport(transport)
	}

	return &httpPeerAdapter{client: client, attempts: attempts, logger: log}
}

// Push implements [PeerAdapter]. It POSTs req to <nodeURL>/push and returns
// the digest the peer answered with.
func (h *httpPeerAdapter) Push(ctx context.Context, nodeURL string, req models.PushRequest) (Delivery, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(endpoint(nodeURL, pushPath))

	return h.delivery(ctx, "*httpPeerAdapter.Push", nodeURL, resp, err)
}

// PushPrivacyGroup implements [PeerAdapter]. It POSTs group to
// <nodeURL>/pushPrivacyGroup.
func (h *httpPeerAdapter) PushPrivacyGroup(ctx context.Context, nodeURL string, group models.PrivacyGroupPayload) (Delivery, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(group).
		Post(endpoint(nodeURL, pushPrivacyGroupPath))

	return h.delivery(ctx, "*httpPeerAdapter.PushPrivacyGroup", nodeURL, resp, err)
}

// PartyInfo implements [PeerAdapter].
func (h *httpPeerAdapter) PartyInfo(ctx context.Context, nodeURL string, info models.PartyInfo) (models.PartyInfo, error) {
	var peerInfo models.PartyInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(info).
		SetResult(&peerInfo).
		Post(endpoint(nodeURL, partyInfoPath))
	if err != nil {
		return models.PartyInfo{}, mapTransportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PartyInfo{}, err
	}

	return peerInfo, nil
}

func (h *httpPeerAdapter) delivery(ctx context.Context, fn, nodeURL string, resp *resty.Response, err error) (Delivery, error) {
	d := Delivery{Attempts: h.attempts}
	if resp != nil && resp.Request != nil && resp.Request.Attempt > 0 {
		d.Attempts = resp.Request.Attempt
	}

	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", fn).Str("url", nodeURL).Int("attempts", d.Attempts).Msg("peer request failed")
		return d, mapTransportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", fn).Str("url", nodeURL).Int("attempts", d.Attempts).Msg("peer answered with an error")
		return d, err
	}

	d.Key = strings.TrimSpace(string(resp.Body()))
	if d.Key == "" {
		return d, fmt.Errorf("%w: empty key", ErrInvalidPeerResponse)
	}
	return d, nil
}

func endpoint(nodeURL, path string) string {
	return strings.TrimRight(nodeURL, "/") + path
}
