// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the node interface of other privacy nodes.
//
// The primary abstraction is [PeerAdapter], which decouples distribution and
// discovery from the transport. The package ships an HTTP implementation
// ([NewHTTPPeerAdapter]) that retries a bounded number of times and dials
// through the trust enforcement layer when the node interface runs TLS.
//
// Error values defined in errors.go are mapped from transport failures and
// HTTP status codes by mapHTTPError so callers can use [errors.Is]
// (e.g. [ErrPeerRejected] for 4xx, [ErrPeerUnreachable] for dial failures).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-privacy-node/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/peer_adapter_mock.go -package=mock

// Delivery is the peer's answer to a push.
type Delivery struct {
	// Key is the digest the peer stored the payload or group under.
	Key string

	// Attempts is how many requests were issued, retries included.
	Attempts int
}

// PeerAdapter defines transport-agnostic communication with peer nodes.
// nodeURL is the peer base URL as held by the network directory.
type PeerAdapter interface {
	// Push delivers an encrypted payload, and optionally its group record,
	// to the peer's receive operation.
	Push(ctx context.Context, nodeURL string, req models.PushRequest) (Delivery, error)

	// PushPrivacyGroup delivers a group record (creation or deletion).
	PushPrivacyGroup(ctx context.Context, nodeURL string, group models.PrivacyGroupPayload) (Delivery, error)

	// PartyInfo sends this node's party info and returns the peer's.
	PartyInfo(ctx context.Context, nodeURL string, info models.PartyInfo) (models.PartyInfo, error)
}
