package store

import (
	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/internal/store/kv"
)

// Storages bundles every storage built over one key/value engine.
type Storages struct {
	Payloads      PayloadStorage
	PrivacyGroups PrivacyGroupStorage
	Queries       QueryPrivacyGroupStorage
	Records       RecordStorage
}

func NewStorages(store kv.Store, logger *logger.Logger) *Storages {
	queries := NewQueryPrivacyGroupStorage(store, logger)
	return &Storages{
		Payloads:      NewPayloadStorage(store, logger),
		PrivacyGroups: NewPrivacyGroupStorage(store, queries, logger),
		Queries:       queries,
		Records:       NewRecordStorage(store),
	}
}
