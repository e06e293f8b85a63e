package service

import (
	"context"
	"crypto/rand"
	"testing"
	"time"

	"github.com/MKhiriev/go-privacy-node/internal/adapter"
	"github.com/MKhiriev/go-privacy-node/internal/config"
	"github.com/MKhiriev/go-privacy-node/internal/enclave"
	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/internal/metrics"
	"github.com/MKhiriev/go-privacy-node/internal/mock"
	"github.com/MKhiriev/go-privacy-node/internal/network"
	"github.com/MKhiriev/go-privacy-node/internal/store"
	"github.com/MKhiriev/go-privacy-node/internal/store/kv"
	"github.com/MKhiriev/go-privacy-node/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/nacl/box"
)

// ─────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────

func newKeyPair(t *testing.T) enclave.KeyPair {
	t.Helper()
	pub, priv, err := box.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return enclave.KeyPair{Public: models.PublicKey(*pub), Private: *priv}
}

func newPublicKey(t *testing.T) models.PublicKey {
	return newKeyPair(t).Public
}

func testAdapterConfig() config.Adapter {
	return config.Adapter{
		PushTimeout:         time.Second,
		PushAttempts:        1,
		MaxConcurrentPushes: 4,
	}
}

// testNode is one in-process node: real enclave, memory storage, real
// directory and a gomock peer adapter.
type testNode struct {
	url       string
	enclave   *enclave.NaclEnclave
	storages  *store.Storages
	directory *network.Directory
	peers     *mock.MockPeerAdapter
	metrics   *metrics.Metrics
	*Services
}

func newTestNode(t *testing.T, ctrl *gomock.Controller, url string, cfg config.Adapter, keys ...enclave.KeyPair) *testNode {
	t.Helper()
	ctx := context.Background()

	enc, err := enclave.NewNaclEnclave(keys, nil)
	require.NoError(t, err)

	storages := store.NewStorages(kv.NewMemoryStore(), logger.Nop())
	directory, err := network.NewDirectory(ctx, storages.Records, url, logger.Nop())
	require.NoError(t, err)

	peers := mock.NewMockPeerAdapter(ctrl)
	m := metrics.New(prometheus.NewRegistry())
	services := NewServices(storages, enc, directory, peers, m, config.StructuredConfig{Adapter: cfg}, logger.Nop())
	require.NoError(t, services.NodeService.RegisterLocalKeys(ctx))

	return &testNode{
		url:       url,
		enclave:   enc,
		storages:  storages,
		directory: directory,
		peers:     peers,
		metrics:   m,
		Services:  services,
	}
}

func (n *testNode) register(t *testing.T, key models.PublicKey, url string) {
	t.Helper()
	require.NoError(t, n.directory.Register(context.Background(), key, url))
}

// acceptPushes makes every payload push succeed with the right digest.
func (n *testNode) acceptPushes() {
	n.peers.EXPECT().Push(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req models.PushRequest) (adapter.Delivery, error) {
			return adapter.Delivery{Key: store.BuildKey(req.Payload.CipherText), Attempts: 1}, nil
		}).AnyTimes()
}

// acceptGroupPushes makes every group push succeed.
func (n *testNode) acceptGroupPushes() {
	n.peers.EXPECT().PushPrivacyGroup(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, group models.PrivacyGroupPayload) (adapter.Delivery, error) {
			return adapter.Delivery{Key: group.ID, Attempts: 1}, nil
		}).AnyTimes()
}

func outcomeFor(outcomes []models.PushOutcome, key models.PublicKey) (models.PushOutcome, bool) {
	for _, o := range outcomes {
		if o.Recipient == key {
			return o, true
		}
	}
	return models.PushOutcome{}, false
}
