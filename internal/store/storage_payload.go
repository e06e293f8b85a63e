// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/internal/store/kv"
	"github.com/MKhiriev/go-privacy-node/models"
)

// payloadStorage implements [PayloadStorage] as an arena by digest: the key
// is computed first and the write is insert-if-absent, so concurrent stores
// of the same payload converge on one record.
type payloadStorage struct {
	records jsonRecords[models.EncryptedPayload]
	logger  *logger.Logger
}

func NewPayloadStorage(store kv.Store, logger *logger.Logger) PayloadStorage {
	logger.Debug().Msg("creating encrypted payload storage")
	return &payloadStorage{
		records: jsonRecords[models.EncryptedPayload]{kv: store, prefix: payloadPrefix},
		logger:  logger,
	}
}

func (s *payloadStorage) Store(ctx context.Context, payload models.EncryptedPayload) (string, error) {
	log := logger.FromContext(ctx)
	key := BuildKey(payload.CipherText)

	stored, err := s.records.putIfAbsent(ctx, key, payload)
	if err != nil {
		log.Err(err).Str("func", "*payloadStorage.Store").Str("key", key).Msg("error storing payload")
		return "", err
	}

	log.Debug().Str("func", "*payloadStorage.Store").Str("key", key).Bool("new", stored).Msg("payload stored")
	return key, nil
}

func (s *payloadStorage) Retrieve(ctx context.Context, key string) (models.EncryptedPayload, error) {
	payload, err := s.records.get(ctx, key)
	if err != nil {
		return models.EncryptedPayload{}, err
	}

	if BuildKey(payload.CipherText) != key {
		logger.FromContext(ctx).Error().Str("func", "*payloadStorage.Retrieve").Str("key", key).Msg("stored payload does not match its key")
		return models.EncryptedPayload{}, fmt.Errorf("%w: %s", ErrIntegrity, key)
	}
	return payload, nil
}
