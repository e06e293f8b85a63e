// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-privacy-node/internal/adapter"
	"github.com/MKhiriev/go-privacy-node/internal/enclave"
	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/internal/metrics"
	"github.com/MKhiriev/go-privacy-node/internal/store"
	"github.com/MKhiriev/go-privacy-node/models"
)

type distributionService struct {
	enclave  enclave.Enclave
	payloads store.PayloadStorage
	groups   PrivacyGroupService
	peers    adapter.PeerAdapter
	fanout   *Fanout
	metrics  *metrics.Metrics

	logger *logger.Logger
}

func NewDistributionService(
	enc enclave.Enclave,
	payloads store.PayloadStorage,
	groups PrivacyGroupService,
	peers adapter.PeerAdapter,
	fanout *Fanout,
	m *metrics.Metrics,
	logger *logger.Logger,
) DistributionService {
	return &distributionService{
		enclave:  enc,
		payloads: payloads,
		groups:   groups,
		peers:    peers,
		fanout:   fanout,
		metrics:  m,
		logger:   logger,
	}
}

// Distribute implements [DistributionService].
//
// Sealing and local storage failures abort the call. Once the payload is
// stored its digest is returned whatever happens to the pushes.
func (s *distributionService) Distribute(ctx context.Context, req models.SendRequest) (models.DistributeResult, error) {
	log := logger.FromContext(ctx)

	if len(req.Payload) == 0 {
		return models.DistributeResult{}, fmt.Errorf("%w: empty payload", ErrInvalidDataProvided)
	}

	sender := s.enclave.PrimaryKey()
	if req.From != nil {
		sender = *req.From
	}
	if !s.fanout.isLocal(sender) {
		return models.DistributeResult{}, fmt.Errorf("%w: %s", ErrUnknownSender, sender)
	}

	group, err := s.resolveGroup(ctx, req, sender)
	if err != nil {
		return models.DistributeResult{}, err
	}

	payload, err := s.enclave.Seal(req.Payload, sender, group.Members, group.ID)
	if err != nil {
		log.Err(err).Str("func", "*distributionService.Distribute").Msg("error sealing payload")
		return models.DistributeResult{}, fmt.Errorf("seal payload: %w", err)
	}

	// the legacy group is stored only once sealing succeeded
	if group.Type == models.TypeLegacy {
		if _, err := s.groups.ResolveLegacy(ctx, group.Members); err != nil {
			return models.DistributeResult{}, err
		}
	}

	key, err := s.payloads.Store(ctx, payload)
	if err != nil {
		log.Err(err).Str("func", "*distributionService.Distribute").Msg("error storing payload")
		return models.DistributeResult{}, fmt.Errorf("store payload: %w", err)
	}
	s.metrics.Distribution(string(group.Type))

	push := models.PushRequest{Payload: payload}
	if group.Type != models.TypeLegacy {
		push.PrivacyGroup = &group
	}

	outcomes := s.fanout.deliver(ctx, kindPayload, group.Members, func(ctx context.Context, nodeURL string) (adapter.Delivery, error) {
		delivery, err := s.peers.Push(ctx, nodeURL, push)
		if err == nil && delivery.Key != key {
			err = fmt.Errorf("%w: peer stored %s, expected %s", adapter.ErrInvalidPeerResponse, delivery.Key, key)
		}
		return delivery, err
	})

	result := models.DistributeResult{Key: key, Outcomes: outcomes}
	log.Info().
		Str("func", "*distributionService.Distribute").
		Str("key", key).
		Str("group", group.ID).
		Int("recipients", len(group.Members)).
		Int("undelivered", len(result.Undelivered())).
		Msg("payload distributed")

	return result, nil
}

// resolveGroup picks the recipient set: the members of a named group, or the
// legacy group of the listed recipients plus the sender and the always
// send to identities. The legacy group is not stored here.
func (s *distributionService) resolveGroup(ctx context.Context, req models.SendRequest, sender models.PublicKey) (models.PrivacyGroupPayload, error) {
	if req.PrivacyGroupID != "" {
		if len(req.To) > 0 {
			return models.PrivacyGroupPayload{}, fmt.Errorf("%w: both recipients and a privacy group given", ErrInvalidDataProvided)
		}

		group, err := s.groups.Active(ctx, req.PrivacyGroupID)
		if err != nil {
			return models.PrivacyGroupPayload{}, err
		}
		if !models.ContainsKey(group.Members, sender) {
			return models.PrivacyGroupPayload{}, fmt.Errorf("%w: %s", ErrSenderNotMember, sender)
		}
		return group, nil
	}

	if len(req.To) == 0 {
		return models.PrivacyGroupPayload{}, ErrNoRecipients
	}

	return legacyGroup(slices.Concat(req.To, []models.PublicKey{sender}, s.enclave.AlwaysSendTo()))
}

// Receive implements [DistributionService]. A pushed named group is merged
// before the payload is stored; a legacy payload re-derives its group from
// the recipients it carries keys for.
func (s *distributionService) Receive(ctx context.Context, req models.PushRequest) (string, error) {
	log := logger.FromContext(ctx)
	payload := req.Payload

	if len(payload.CipherText) == 0 || len(payload.EncryptedKeys) == 0 {
		return "", fmt.Errorf("%w: payload without cipher text or keys", ErrInvalidDataProvided)
	}

	switch {
	case req.PrivacyGroup != nil:
		if req.PrivacyGroup.ID != payload.PrivacyGroupID {
			return "", fmt.Errorf("%w: payload and group ids differ", ErrInvalidDataProvided)
		}
		if _, err := s.groups.Receive(ctx, *req.PrivacyGroup); err != nil {
			return "", err
		}
	case payload.PrivacyGroupID == LegacyGroupID(payload.Recipients()):
		if _, err := s.groups.ResolveLegacy(ctx, payload.Recipients()); err != nil {
			return "", err
		}
	}

	key, err := s.payloads.Store(ctx, payload)
	if err != nil {
		log.Err(err).Str("func", "*distributionService.Receive").Msg("error storing pushed payload")
		return "", fmt.Errorf("store payload: %w", err)
	}

	s.metrics.Received(kindPayload)
	log.Debug().Str("func", "*distributionService.Receive").Str("key", key).Str("sender", payload.Sender.String()).Msg("payload received")
	return key, nil
}

// Retrieve implements [DistributionService].
func (s *distributionService) Retrieve(ctx context.Context, req models.ReceiveRequest) (models.ReceiveResponse, error) {
	if req.Key == "" {
		return models.ReceiveResponse{}, fmt.Errorf("%w: empty key", ErrInvalidDataProvided)
	}

	identity := s.enclave.PrimaryKey()
	if req.To != nil {
		identity = *req.To
	}

	payload, err := s.payloads.Retrieve(ctx, req.Key)
	if errors.Is(err, store.ErrNotFound) {
		return models.ReceiveResponse{}, fmt.Errorf("%w: %s", ErrPayloadNotFound, req.Key)
	}
	if err != nil {
		return models.ReceiveResponse{}, err
	}

	plaintext, err := s.enclave.Open(payload, identity)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*distributionService.Retrieve").Str("key", req.Key).Msg("error opening payload")
		return models.ReceiveResponse{}, fmt.Errorf("open payload: %w", err)
	}

	return models.ReceiveResponse{
		Payload:        plaintext,
		PrivacyGroupID: payload.PrivacyGroupID,
		SenderKey:      payload.Sender,
	}, nil
}
