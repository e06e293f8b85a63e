package store

import (
	"context"

	"github.com/MKhiriev/go-privacy-node/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/storages_mock.go -package=mock

// PayloadStorage is the content addressed store of encrypted payloads.
type PayloadStorage interface {
	// Store persists payload under the digest of its cipher text and returns
	// that digest. Storing the same payload again is a no-op with the same
	// result.
	Store(ctx context.Context, payload models.EncryptedPayload) (string, error)

	// Retrieve returns the payload under key or [ErrNotFound].
	Retrieve(ctx context.Context, key string) (models.EncryptedPayload, error)
}

// GroupUpdateFunc receives the current record (found is false when there is
// none) and returns the record to write. Returning write == false leaves the
// store untouched.
type GroupUpdateFunc func(current models.PrivacyGroupPayload, found bool) (next models.PrivacyGroupPayload, write bool, err error)

// PrivacyGroupStorage stores privacy group records under their group id and
// keeps the membership index in step with every write.
type PrivacyGroupStorage interface {
	// Store inserts group if no record exists under its id and returns the
	// id. An existing record is left as it is.
	Store(ctx context.Context, group models.PrivacyGroupPayload) (string, error)

	// Retrieve returns the group, DELETED ones included, or [ErrNotFound].
	Retrieve(ctx context.Context, id string) (models.PrivacyGroupPayload, error)

	// Update applies fn to the record under id atomically with respect to
	// other writers of this storage.
	Update(ctx context.Context, id string, fn GroupUpdateFunc) (models.PrivacyGroupPayload, error)

	// FindByMembership returns the ids of every group whose canonical
	// membership equals members.
	FindByMembership(ctx context.Context, members []models.PublicKey) ([]string, error)
}

// QueryPrivacyGroupStorage is the membership index: canonical member set
// digest to group ids.
type QueryPrivacyGroupStorage interface {
	Add(ctx context.Context, members []models.PublicKey, groupID string) error
	Retrieve(ctx context.Context, members []models.PublicKey) (models.QueryPrivacyGroupPayload, error)
}

// RecordStorage holds small singleton records, such as the persisted
// network directory, under fixed names.
type RecordStorage interface {
	Load(ctx context.Context, name string, v any) error
	Save(ctx context.Context, name string, v any) error
}
