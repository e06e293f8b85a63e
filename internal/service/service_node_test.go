package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-privacy-node/internal/adapter"
	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/internal/mock"
	"github.com/MKhiriev/go-privacy-node/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegisterLocalKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, a2 := newKeyPair(t), newKeyPair(t)
	node := newTestNode(t, ctrl, urlA, testAdapterConfig(), a, a2)

	for _, key := range []models.PublicKey{a.Public, a2.Public} {
		u, ok := node.directory.Resolve(key)
		require.True(t, ok)
		assert.Equal(t, urlA, u)
	}
	assert.Len(t, node.NodeService.Peers(context.Background()), 2)
}

func TestRegisterLocalKeys_DirectoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := newPublicKey(t)

	directory := mock.NewMockNodeDirectory(ctrl)
	directory.EXPECT().SelfURL().Return(urlA)
	directory.EXPECT().Register(gomock.Any(), a, urlA).Return(errors.New("disk full"))

	svc := NewNodeService(directory, mock.NewMockPeerAdapter(ctrl), []models.PublicKey{a}, nil, 1, logger.Nop())
	assert.Error(t, svc.RegisterLocalKeys(context.Background()))
}

func TestPartyInfo_MergesAndAnswers(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := newKeyPair(t)
	node := newTestNode(t, ctrl, urlA, testAdapterConfig(), a)
	b, c := newPublicKey(t), newPublicKey(t)

	answer, err := node.NodeService.PartyInfo(context.Background(), models.PartyInfo{
		URL: urlB,
		NodeURLs: map[models.PublicKey]string{
			b: urlB,
			c: urlC + "/",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, urlA, answer.URL)
	assert.Equal(t, map[models.PublicKey]string{a.Public: urlA, b: urlB, c: urlC}, answer.NodeURLs)
}

func TestRegisterPeer(t *testing.T) {
	ctrl := gomock.NewController(t)
	node := newTestNode(t, ctrl, urlA, testAdapterConfig(), newKeyPair(t))
	b := newPublicKey(t)
	ctx := context.Background()

	require.NoError(t, node.NodeService.RegisterPeer(ctx, models.RegisterPeerRequest{PublicKey: b, URL: urlB}))
	u, ok := node.directory.Resolve(b)
	require.True(t, ok)
	assert.Equal(t, urlB, u)

	tests := []struct {
		name string
		req  models.RegisterPeerRequest
	}{
		{name: "empty key", req: models.RegisterPeerRequest{URL: urlB}},
		{name: "no scheme", req: models.RegisterPeerRequest{PublicKey: b, URL: "node-b:8080"}},
		{name: "ftp", req: models.RegisterPeerRequest{PublicKey: b, URL: "ftp://node-b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := node.NodeService.RegisterPeer(ctx, tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestDiscover(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := newKeyPair(t)
	node := newTestNode(t, ctrl, urlA, testAdapterConfig(), a)
	b, c, d := newPublicKey(t), newPublicKey(t), newPublicKey(t)
	node.register(t, b, urlB)

	peers := mock.NewMockPeerAdapter(ctrl)
	// urlB is known, urlC is a bootnode, the self bootnode is skipped
	peers.EXPECT().PartyInfo(gomock.Any(), urlB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, info models.PartyInfo) (models.PartyInfo, error) {
			assert.Equal(t, urlA, info.URL)
			return models.PartyInfo{URL: urlB, NodeURLs: map[models.PublicKey]string{b: urlB, d: "http://node-d:8080"}}, nil
		})
	peers.EXPECT().PartyInfo(gomock.Any(), urlC, gomock.Any()).
		Return(models.PartyInfo{}, adapter.ErrPeerUnreachable)

	svc := NewNodeService(node.directory, peers, []models.PublicKey{a.Public}, []string{urlC + "/", urlA, "not a url"}, 2, logger.Nop())

	changed, err := svc.Discover(context.Background())
	assert.Equal(t, 1, changed)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrPeerUnreachable)
	assert.Contains(t, err.Error(), urlC)

	u, ok := node.directory.Resolve(d)
	require.True(t, ok)
	assert.Equal(t, "http://node-d:8080", u)

	_, ok = node.directory.Resolve(c)
	assert.False(t, ok)
}

func TestDiscover_NothingToDo(t *testing.T) {
	ctrl := gomock.NewController(t)
	node := newTestNode(t, ctrl, urlA, testAdapterConfig(), newKeyPair(t))

	changed, err := node.NodeService.Discover(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, changed)
}
