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

// MembershipKey is the digest of a canonical member set. It keys the
// membership index.
func MembershipKey(members []models.PublicKey) string {
	canonical := models.CanonicalMembers(members)
	buf := make([]byte, 0, len(canonical)*models.PublicKeySize)
	for _, m := range canonical {
		buf = append(buf, m[:]...)
	}
	return BuildKey(buf)
}

// queryPrivacyGroupStorage implements [QueryPrivacyGroupStorage]. Index
// records are appended to, never shrunk.
type queryPrivacyGroupStorage struct {
	records jsonRecords[models.QueryPrivacyGroupPayload]
	mu      sync.Mutex
	logger  *logger.Logger
}

func NewQueryPrivacyGroupStorage(store kv.Store, logger *logger.Logger) QueryPrivacyGroupStorage {
	return &queryPrivacyGroupStorage{
		records: jsonRecords[models.QueryPrivacyGroupPayload]{kv: store, prefix: queryPrefix},
		logger:  logger,
	}
}

func (s *queryPrivacyGroupStorage) Add(ctx context.Context, members []models.PublicKey, groupID string) error {
	key := MembershipKey(members)

	s.mu.Lock()
	defer s.mu.Unlock()

	query, err := s.records.get(ctx, key)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if slices.Contains(query.PrivacyGroupIDs, groupID) {
		return nil
	}

	query.Members = models.CanonicalMembers(members)
	query.PrivacyGroupIDs = append(query.PrivacyGroupIDs, groupID)
	slices.Sort(query.PrivacyGroupIDs)

	return s.records.put(ctx, key, query)
}

func (s *queryPrivacyGroupStorage) Retrieve(ctx context.Context, members []models.PublicKey) (models.QueryPrivacyGroupPayload, error) {
	return s.records.get(ctx, MembershipKey(members))
}
