// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package network keeps the node directory: which base URL serves which
// public identity. The directory is persisted so peers are remembered
// across restarts.
package network

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/internal/store"
	"github.com/MKhiriev/go-privacy-node/models"
)

const recordName = "network-nodes"

// ErrInvalidURL is returned when a node URL is not an absolute http(s) URL.
var ErrInvalidURL = errors.New("invalid node url")

// Directory maps public identities to node URLs. Reads run concurrently;
// writes are exclusive and persisted before they return.
type Directory struct {
	mu    sync.RWMutex
	nodes map[models.PublicKey]string

	// persistMu orders snapshots so an older one never overwrites a newer.
	persistMu sync.Mutex
	records   store.RecordStorage

	selfURL string
	logger  *logger.Logger
}

// NewDirectory loads the persisted directory. selfURL is the URL this node
// advertises to peers.
func NewDirectory(ctx context.Context, records store.RecordStorage, selfURL string, log *logger.Logger) (*Directory, error) {
	self, err := NormalizeURL(selfURL)
	if err != nil {
		return nil, err
	}

	d := &Directory{
		nodes:   make(map[models.PublicKey]string),
		records: records,
		selfURL: self,
		logger:  log,
	}

	var persisted map[models.PublicKey]string
	err = records.Load(ctx, recordName, &persisted)
	switch {
	case errors.Is(err, store.ErrNotFound):
		log.Debug().Str("func", "NewDirectory").Msg("no persisted network directory")
	case err != nil:
		return nil, fmt.Errorf("load network directory: %w", err)
	default:
		maps.Copy(d.nodes, persisted)
		log.Info().Str("func", "NewDirectory").Int("nodes", len(persisted)).Msg("network directory restored")
	}

	return d, nil
}

// SelfURL is the URL this node advertises.
func (d *Directory) SelfURL() string {
	return d.selfURL
}

// Resolve returns the URL serving identity.
func (d *Directory) Resolve(identity models.PublicKey) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.nodes[identity]
	return u, ok
}

// Register binds identity to nodeURL, replacing any previous binding.
func (d *Directory) Register(ctx context.Context, identity models.PublicKey, nodeURL string) error {
	normalized, err := NormalizeURL(nodeURL)
	if err != nil {
		return err
	}

	_, err = d.apply(ctx, map[models.PublicKey]string{identity: normalized})
	return err
}

// Merge adds the bindings in info for identities not known yet and returns
// how many were added. Learned bindings never replace an existing one, so
// this node's own identities cannot be redirected; only [Directory.Register]
// rebinds. Bindings that fail URL validation or point at this node are
// skipped.
func (d *Directory) Merge(ctx context.Context, info models.PartyInfo) (int, error) {
	updates := make(map[models.PublicKey]string, len(info.NodeURLs))
	for identity, raw := range info.NodeURLs {
		normalized, err := NormalizeURL(raw)
		if err != nil {
			d.logger.Warn().Err(err).Str("func", "*Directory.Merge").Str("key", identity.String()).Msg("skipping invalid node url")
			continue
		}
		if normalized == d.selfURL {
			continue
		}
		updates[identity] = normalized
	}

	changed, conflicts, err := d.insert(ctx, updates)
	if conflicts > 0 {
		d.logger.Warn().Str("func", "*Directory.Merge").Str("peer", info.URL).Int("conflicts", conflicts).Msg("ignored learned bindings for known identities")
	}
	return changed, err
}

// All returns a snapshot of the known nodes ordered by public key.
func (d *Directory) All() []models.NetworkNode {
	d.mu.RLock()
	defer d.mu.RUnlock()

	nodes := make([]models.NetworkNode, 0, len(d.nodes))
	for identity, u := range d.nodes {
		nodes = append(nodes, models.NetworkNode{PublicKey: identity, URL: u})
	}
	slices.SortFunc(nodes, func(a, b models.NetworkNode) int {
		return a.PublicKey.Compare(b.PublicKey)
	})
	return nodes
}

// URLs returns every distinct node URL other than this node's own.
func (d *Directory) URLs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	seen := make(map[string]struct{}, len(d.nodes))
	for _, u := range d.nodes {
		if u != d.selfURL {
			seen[u] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// PartyInfo describes this node and everything it knows for discovery.
func (d *Directory) PartyInfo() models.PartyInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return models.PartyInfo{
		URL:      d.selfURL,
		NodeURLs: maps.Clone(d.nodes),
	}
}

func (d *Directory) apply(ctx context.Context, updates map[models.PublicKey]string) (int, error) {
	d.persistMu.Lock()
	defer d.persistMu.Unlock()

	d.mu.Lock()
	changed := 0
	for identity, u := range updates {
		if d.nodes[identity] != u {
			d.nodes[identity] = u
			changed++
		}
	}
	snapshot := maps.Clone(d.nodes)
	d.mu.Unlock()

	return changed, d.persist(ctx, changed, snapshot)
}

// insert adds updates for unbound identities only. conflicts counts the
// updates that disagreed with an existing binding.
func (d *Directory) insert(ctx context.Context, updates map[models.PublicKey]string) (changed, conflicts int, err error) {
	d.persistMu.Lock()
	defer d.persistMu.Unlock()

	d.mu.Lock()
	for identity, u := range updates {
		current, ok := d.nodes[identity]
		switch {
		case !ok:
			d.nodes[identity] = u
			changed++
		case current != u:
			conflicts++
		}
	}
	snapshot := maps.Clone(d.nodes)
	d.mu.Unlock()

	return changed, conflicts, d.persist(ctx, changed, snapshot)
}

func (d *Directory) persist(ctx context.Context, changed int, snapshot map[models.PublicKey]string) error {
	if changed == 0 {
		return nil
	}

	if err := d.records.Save(ctx, recordName, snapshot); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Directory.persist").Msg("error persisting network directory")
		return fmt.Errorf("persist network directory: %w", err)
	}

	return nil
}

// NormalizeURL validates raw as an absolute http(s) URL and strips any
// trailing slash.
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrInvalidURL, raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return strings.TrimRight(u.String(), "/"), nil
}
