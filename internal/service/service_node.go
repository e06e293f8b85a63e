package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-privacy-node/internal/adapter"
	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/internal/network"
	"github.com/MKhiriev/go-privacy-node/models"
	"golang.org/x/sync/errgroup"
)

type nodeService struct {
	directory NodeDirectory
	peers     adapter.PeerAdapter
	localKeys []models.PublicKey
	bootnodes []string
	limit     int

	logger *logger.Logger
}

func NewNodeService(directory NodeDirectory, peers adapter.PeerAdapter, localKeys []models.PublicKey, bootnodes []string, limit int, logger *logger.Logger) NodeService {
	return &nodeService{
		directory: directory,
		peers:     peers,
		localKeys: slices.Clone(localKeys),
		bootnodes: slices.Clone(bootnodes),
		limit:     max(limit, 1),
		logger:    logger,
	}
}

func (s *nodeService) RegisterLocalKeys(ctx context.Context) error {
	for _, key := range s.localKeys {
		if err := s.directory.Register(ctx, key, s.directory.SelfURL()); err != nil {
			return fmt.Errorf("register local key %s: %w", key, err)
		}
	}
	return nil
}

func (s *nodeService) PartyInfo(ctx context.Context, peer models.PartyInfo) (models.PartyInfo, error) {
	changed, err := s.directory.Merge(ctx, peer)
	if err != nil {
		return models.PartyInfo{}, err
	}
	if changed > 0 {
		logger.FromContext(ctx).Info().Str("func", "*nodeService.PartyInfo").Str("peer", peer.URL).Int("changed", changed).Msg("learned nodes from peer")
	}
	return s.directory.PartyInfo(), nil
}

func (s *nodeService) RegisterPeer(ctx context.Context, req models.RegisterPeerRequest) error {
	if req.PublicKey == (models.PublicKey{}) {
		return fmt.Errorf("%w: empty public key", ErrInvalidDataProvided)
	}

	err := s.directory.Register(ctx, req.PublicKey, req.URL)
	if errors.Is(err, network.ErrInvalidURL) {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return err
}

func (s *nodeService) Peers(ctx context.Context) []models.NetworkNode {
	return s.directory.All()
}

// Discover implements [NodeService]. Unreachable nodes are reported in the
// joined error; the directory still absorbs every successful answer.
func (s *nodeService) Discover(ctx context.Context) (int, error) {
	self := s.directory.SelfURL()
	targets := s.directory.URLs()
	for _, raw := range s.bootnodes {
		u, err := network.NormalizeURL(raw)
		if err != nil {
			s.logger.Warn().Err(err).Str("func", "*nodeService.Discover").Msg("skipping invalid bootnode")
			continue
		}
		if u != self && !slices.Contains(targets, u) {
			targets = append(targets, u)
		}
	}

	info := s.directory.PartyInfo()

	var (
		mu      sync.Mutex
		changed int
		errs    []error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)
	for _, target := range targets {
		g.Go(func() error {
			peerInfo, err := s.peers.PartyInfo(gctx, target, info)
			if err == nil {
				var n int
				n, err = s.directory.Merge(gctx, peerInfo)
				mu.Lock()
				changed += n
				mu.Unlock()
			}
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", target, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return changed, errors.Join(errs...)
}
