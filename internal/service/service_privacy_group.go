// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-privacy-node/internal/adapter"
	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/internal/metrics"
	"github.com/MKhiriev/go-privacy-node/internal/store"
	"github.com/MKhiriev/go-privacy-node/models"
)

const seedSize = 32

type privacyGroupService struct {
	groups  store.PrivacyGroupStorage
	peers   adapter.PeerAdapter
	fanout  *Fanout
	metrics *metrics.Metrics

	logger *logger.Logger
}

func NewPrivacyGroupService(groups store.PrivacyGroupStorage, peers adapter.PeerAdapter, fanout *Fanout, m *metrics.Metrics, logger *logger.Logger) PrivacyGroupService {
	return &privacyGroupService{
		groups:  groups,
		peers:   peers,
		fanout:  fanout,
		metrics: m,
		logger:  logger,
	}
}

// LegacyGroupID is the identity of the legacy group of members: the digest
// of their canonical membership.
func LegacyGroupID(members []models.PublicKey) string {
	return store.MembershipKey(members)
}

// SeededGroupID is the identity of a named group: the digest of the
// canonical membership followed by the creator's seed.
func SeededGroupID(members []models.PublicKey, seed []byte) string {
	canonical := models.CanonicalMembers(members)
	buf := make([]byte, 0, len(canonical)*models.PublicKeySize+len(seed))
	for _, m := range canonical {
		buf = append(buf, m[:]...)
	}
	return store.BuildKey(append(buf, seed...))
}

// legacyGroup builds the legacy group of members without storing it.
func legacyGroup(members []models.PublicKey) (models.PrivacyGroupPayload, error) {
	canonical := models.CanonicalMembers(members)
	if len(canonical) == 0 {
		return models.PrivacyGroupPayload{}, ErrNoRecipients
	}

	return models.PrivacyGroupPayload{
		ID:      LegacyGroupID(canonical),
		Members: canonical,
		State:   models.StateActive,
		Type:    models.TypeLegacy,
	}, nil
}

func (s *privacyGroupService) ResolveLegacy(ctx context.Context, members []models.PublicKey) (models.PrivacyGroupPayload, error) {
	group, err := legacyGroup(members)
	if err != nil {
		return models.PrivacyGroupPayload{}, err
	}
	if _, err := s.groups.Store(ctx, group); err != nil {
		return models.PrivacyGroupPayload{}, fmt.Errorf("store legacy privacy group: %w", err)
	}

	return group, nil
}

func (s *privacyGroupService) Active(ctx context.Context, id string) (models.PrivacyGroupPayload, error) {
	group, err := s.groups.Retrieve(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.PrivacyGroupPayload{}, fmt.Errorf("%w: %s does not exist", ErrPrivacyGroupUnavailable, id)
	}
	if err != nil {
		return models.PrivacyGroupPayload{}, err
	}
	if !group.IsActive() {
		return models.PrivacyGroupPayload{}, fmt.Errorf("%w: %s is %s", ErrPrivacyGroupUnavailable, id, group.State)
	}
	return group, nil
}

func (s *privacyGroupService) Create(ctx context.Context, req models.CreatePrivacyGroupRequest) (models.PrivacyGroupPayload, error) {
	log := logger.FromContext(ctx)

	if !s.fanout.isLocal(req.From) {
		return models.PrivacyGroupPayload{}, fmt.Errorf("%w: %s", ErrUnknownSender, req.From)
	}

	groupType, err := models.ParsePrivacyGroupType(req.Type)
	if err != nil {
		return models.PrivacyGroupPayload{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	members := models.CanonicalMembers(append(slices.Clone(req.Addresses), req.From))
	if groupType == models.TypeLegacy {
		return s.ResolveLegacy(ctx, members)
	}

	seed := req.Seed
	switch {
	case groupType == models.TypeOnchain && len(seed) == 0:
		return models.PrivacyGroupPayload{}, fmt.Errorf("%w: onchain groups need a seed", ErrInvalidDataProvided)
	case len(seed) == 0:
		seed = make([]byte, seedSize)
		if _, err := rand.Read(seed); err != nil {
			return models.PrivacyGroupPayload{}, fmt.Errorf("generate privacy group seed: %w", err)
		}
	}

	group := models.PrivacyGroupPayload{
		ID:          SeededGroupID(members, seed),
		Members:     members,
		Name:        req.Name,
		Description: req.Description,
		State:       models.StateActive,
		Type:        groupType,
		Seed:        seed,
	}
	if _, err := s.groups.Store(ctx, group); err != nil {
		log.Err(err).Str("func", "*privacyGroupService.Create").Msg("error storing privacy group")
		return models.PrivacyGroupPayload{}, fmt.Errorf("store privacy group: %w", err)
	}

	s.push(ctx, group)
	log.Info().Str("func", "*privacyGroupService.Create").Str("group", group.ID).Int("members", len(members)).Msg("privacy group created")

	return group, nil
}

func (s *privacyGroupService) Delete(ctx context.Context, req models.DeletePrivacyGroupRequest) (string, error) {
	if !s.fanout.isLocal(req.From) {
		return "", fmt.Errorf("%w: %s", ErrUnknownSender, req.From)
	}

	group, err := s.groups.Update(ctx, req.PrivacyGroupID, func(current models.PrivacyGroupPayload, found bool) (models.PrivacyGroupPayload, bool, error) {
		switch {
		case !found:
			return current, false, ErrPrivacyGroupNotFound
		case !models.ContainsKey(current.Members, req.From):
			return current, false, ErrSenderNotMember
		case current.Type == models.TypeLegacy:
			return current, false, ErrLegacyGroupImmutable
		case !current.IsActive():
			// already deleted: the record is pushed again below
			return current, false, nil
		}
		current.State = models.StateDeleted
		return current, true, nil
	})
	if err != nil {
		return "", err
	}

	s.push(ctx, group)
	logger.FromContext(ctx).Info().Str("func", "*privacyGroupService.Delete").Str("group", group.ID).Msg("privacy group deleted")

	return group.ID, nil
}

func (s *privacyGroupService) Retrieve(ctx context.Context, id string) (models.PrivacyGroupPayload, error) {
	group, err := s.groups.Retrieve(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.PrivacyGroupPayload{}, fmt.Errorf("%w: %s", ErrPrivacyGroupNotFound, id)
	}
	return group, err
}

func (s *privacyGroupService) Find(ctx context.Context, members []models.PublicKey) ([]models.PrivacyGroupPayload, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: no addresses", ErrInvalidDataProvided)
	}

	ids, err := s.groups.FindByMembership(ctx, members)
	if err != nil {
		return nil, err
	}

	groups := make([]models.PrivacyGroupPayload, 0, len(ids))
	for _, id := range ids {
		group, err := s.groups.Retrieve(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			// index written ahead of a failed group write
			continue
		}
		if err != nil {
			return nil, err
		}
		if group.IsActive() {
			groups = append(groups, group)
		}
	}
	return groups, nil
}

func (s *privacyGroupService) Receive(ctx context.Context, incoming models.PrivacyGroupPayload) (string, error) {
	if err := validateGroup(incoming); err != nil {
		return "", err
	}

	_, err := s.groups.Update(ctx, incoming.ID, func(current models.PrivacyGroupPayload, found bool) (models.PrivacyGroupPayload, bool, error) {
		switch {
		case !found:
			return incoming, true, nil
		case !current.SameMembers(incoming):
			return current, false, ErrGroupMembershipMismatch
		case !current.IsActive():
			// deletes are terminal
			return current, false, nil
		case !incoming.IsActive():
			current.State = models.StateDeleted
			return current, true, nil
		default:
			return current, false, nil
		}
	})
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*privacyGroupService.Receive").Str("group", incoming.ID).Msg("rejected pushed privacy group")
		return "", err
	}

	s.metrics.Received(kindGroup)
	return incoming.ID, nil
}

// push sends group to every member node. Outcomes are logged only.
func (s *privacyGroupService) push(ctx context.Context, group models.PrivacyGroupPayload) {
	outcomes := s.fanout.deliver(ctx, kindGroup, group.Members, func(ctx context.Context, nodeURL string) (adapter.Delivery, error) {
		return s.peers.PushPrivacyGroup(ctx, nodeURL, group)
	})

	for _, o := range outcomes {
		if !o.Delivered {
			logger.FromContext(ctx).Warn().
				Str("func", "*privacyGroupService.push").
				Str("group", group.ID).
				Str("recipient", o.Recipient.String()).
				Str("error", o.Error).
				Msg("privacy group not delivered")
		}
	}
}

// validateGroup checks a pushed record: its identity must follow from its
// membership (and seed, for named groups).
func validateGroup(group models.PrivacyGroupPayload) error {
	if group.ID == "" || len(group.Members) == 0 {
		return fmt.Errorf("%w: privacy group without id or members", ErrInvalidDataProvided)
	}
	if group.State != models.StateActive && group.State != models.StateDeleted {
		return fmt.Errorf("%w: privacy group state %q", ErrInvalidDataProvided, group.State)
	}

	switch group.Type {
	case models.TypeLegacy:
		if LegacyGroupID(group.Members) != group.ID {
			return ErrGroupMembershipMismatch
		}
	case models.TypePantheon, models.TypeOnchain:
		if len(group.Seed) == 0 || SeededGroupID(group.Members, group.Seed) != group.ID {
			return ErrGroupMembershipMismatch
		}
	default:
		return fmt.Errorf("%w: privacy group type %q", ErrInvalidDataProvided, group.Type)
	}
	return nil
}
