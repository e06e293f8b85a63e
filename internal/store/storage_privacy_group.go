// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/internal/store/kv"
	"github.com/MKhiriev/go-privacy-node/models"
)

// privacyGroupStorage implements [PrivacyGroupStorage].
type privacyGroupStorage struct {
	records jsonRecords[models.PrivacyGroupPayload]
	index   QueryPrivacyGroupStorage

	// mu serialises read-modify-write cycles on group records.
	mu     sync.Mutex
	logger *logger.Logger
}

func NewPrivacyGroupStorage(store kv.Store, index QueryPrivacyGroupStorage, logger *logger.Logger) PrivacyGroupStorage {
	logger.Debug().Msg("creating privacy group storage")
	return &privacyGroupStorage{
		records: jsonRecords[models.PrivacyGroupPayload]{kv: store, prefix: groupPrefix},
		index:   index,
		logger:  logger,
	}
}

func (s *privacyGroupStorage) Store(ctx context.Context, group models.PrivacyGroupPayload) (string, error) {
	log := logger.FromContext(ctx)
	group.Members = models.CanonicalMembers(group.Members)

	stored, err := s.records.putIfAbsent(ctx, group.ID, group)
	if err != nil {
		log.Err(err).Str("func", "*privacyGroupStorage.Store").Str("group", group.ID).Msg("error storing privacy group")
		return "", err
	}

	// the index is refreshed even when the record existed: a previous
	// attempt may have failed between the two writes
	if err := s.index.Add(ctx, group.Members, group.ID); err != nil {
		log.Err(err).Str("func", "*privacyGroupStorage.Store").Str("group", group.ID).Msg("error indexing privacy group")
		return "", err
	}

	log.Debug().Str("func", "*privacyGroupStorage.Store").Str("group", group.ID).Bool("new", stored).Msg("privacy group stored")
	return group.ID, nil
}

func (s *privacyGroupStorage) Retrieve(ctx context.Context, id string) (models.PrivacyGroupPayload, error) {
	return s.records.get(ctx, id)
}

func (s *privacyGroupStorage) Update(ctx context.Context, id string, fn GroupUpdateFunc) (models.PrivacyGroupPayload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.records.get(ctx, id)
	found := err == nil
	if err != nil && !errors.Is(err, ErrNotFound) {
		return models.PrivacyGroupPayload{}, err
	}

	next, write, err := fn(current, found)
	if err != nil {
		return models.PrivacyGroupPayload{}, err
	}
	if !write {
		return current, nil
	}

	next.ID = id
	next.Members = models.CanonicalMembers(next.Members)
	if err := s.records.put(ctx, id, next); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*privacyGroupStorage.Update").Str("group", id).Msg("error writing privacy group")
		return models.PrivacyGroupPayload{}, err
	}
	if err := s.index.Add(ctx, next.Members, id); err != nil {
		return models.PrivacyGroupPayload{}, err
	}

	return next, nil
}

func (s *privacyGroupStorage) FindByMembership(ctx context.Context, members []models.PublicKey) ([]string, error) {
	query, err := s.index.Retrieve(ctx, members)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return slices.Clone(query.PrivacyGroupIDs), nil
}
