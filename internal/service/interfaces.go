package service

import (
	"context"

	"github.com/MKhiriev/go-privacy-node/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// DistributionService is the protocol core: it seals, stores and pushes
// payloads, and accepts the pushes of peers.
type DistributionService interface {
	// Distribute seals req.Payload for the resolved recipients, stores it and
	// pushes it to every non-local recipient. Peer failures are reported in
	// the result, never as an error.
	Distribute(ctx context.Context, req models.SendRequest) (models.DistributeResult, error)

	// Receive stores a payload pushed by a peer and returns its digest.
	Receive(ctx context.Context, req models.PushRequest) (string, error)

	// Retrieve opens the payload stored under req.Key for a local identity.
	Retrieve(ctx context.Context, req models.ReceiveRequest) (models.ReceiveResponse, error)
}

// PrivacyGroupService resolves, creates and deletes privacy groups.
type PrivacyGroupService interface {
	// ResolveLegacy returns the group identified by the canonical membership
	// of members, creating it on first use.
	ResolveLegacy(ctx context.Context, members []models.PublicKey) (models.PrivacyGroupPayload, error)

	// Active returns the group under id if it may receive new payloads.
	Active(ctx context.Context, id string) (models.PrivacyGroupPayload, error)

	Create(ctx context.Context, req models.CreatePrivacyGroupRequest) (models.PrivacyGroupPayload, error)
	Delete(ctx context.Context, req models.DeletePrivacyGroupRequest) (string, error)
	Retrieve(ctx context.Context, id string) (models.PrivacyGroupPayload, error)
	Find(ctx context.Context, members []models.PublicKey) ([]models.PrivacyGroupPayload, error)

	// Receive merges a group record pushed by a peer.
	Receive(ctx context.Context, group models.PrivacyGroupPayload) (string, error)
}

// NodeService maintains the network directory.
type NodeService interface {
	// RegisterLocalKeys binds every local identity to this node's own URL.
	RegisterLocalKeys(ctx context.Context) error

	// PartyInfo merges a peer's party info and answers with this node's.
	PartyInfo(ctx context.Context, peer models.PartyInfo) (models.PartyInfo, error)

	RegisterPeer(ctx context.Context, req models.RegisterPeerRequest) error
	Peers(ctx context.Context) []models.NetworkNode

	// Discover runs one party info exchange with every known node and
	// bootnode, returning how many directory entries changed.
	Discover(ctx context.Context) (int, error)
}

// NodeDirectory is the view of the network directory the services need.
type NodeDirectory interface {
	SelfURL() string
	Resolve(identity models.PublicKey) (string, bool)
	Register(ctx context.Context, identity models.PublicKey, nodeURL string) error
	Merge(ctx context.Context, info models.PartyInfo) (int, error)
	All() []models.NetworkNode
	URLs() []string
	PartyInfo() models.PartyInfo
}
