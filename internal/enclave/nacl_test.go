package enclave

import (
	"crypto/rand"
	"testing"

	"github.com/MKhiriev/go-privacy-node/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/nacl/box"
)

const testGroup = "test-group"

// ─────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────

func newTestKeyPair(t *testing.T) KeyPair {
	t.Helper()
	pub, priv, err := box.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return KeyPair{Public: models.PublicKey(*pub), Private: *priv}
}

func newTestEnclave(t *testing.T, keys ...KeyPair) *NaclEnclave {
	t.Helper()
	e, err := NewNaclEnclave(keys, nil)
	require.NoError(t, err)
	return e
}

// ─────────────────────────────────────────────
// NewNaclEnclave
// ─────────────────────────────────────────────

func TestNewNaclEnclave_RequiresKeys(t *testing.T) {
	_, err := NewNaclEnclave(nil, nil)
	assert.ErrorIs(t, err, ErrNoKeys)
}

func TestNewNaclEnclave_RejectsMismatchedPair(t *testing.T) {
	a, b := newTestKeyPair(t), newTestKeyPair(t)
	_, err := NewNaclEnclave([]KeyPair{{Public: a.Public, Private: b.Private}}, nil)
	assert.ErrorIs(t, err, ErrKeyMismatch)
}

func TestNewNaclEnclave_PrimaryAndNodeKeys(t *testing.T) {
	a, b := newTestKeyPair(t), newTestKeyPair(t)
	extra := newTestKeyPair(t).Public

	e, err := NewNaclEnclave([]KeyPair{a, b, a}, []models.PublicKey{extra})
	require.NoError(t, err)

	assert.Equal(t, a.Public, e.PrimaryKey())
	assert.Equal(t, []models.PublicKey{a.Public, b.Public}, e.NodeKeys())
	assert.Equal(t, []models.PublicKey{extra}, e.AlwaysSendTo())
}

func TestNewKeyPair_DerivesPublic(t *testing.T) {
	kp := newTestKeyPair(t)
	derived, err := NewKeyPair(kp.Private)
	require.NoError(t, err)
	assert.Equal(t, kp.Public, derived.Public)
}

// ─────────────────────────────────────────────
// Seal / Open
// ─────────────────────────────────────────────

func TestSealOpen_EveryRecipientDecrypts(t *testing.T) {
	sender, bob, carol := newTestKeyPair(t), newTestKeyPair(t), newTestKeyPair(t)
	plaintext := []byte("private transaction")

	payload, err := newTestEnclave(t, sender).Seal(plaintext, sender.Public,
		[]models.PublicKey{sender.Public, bob.Public, carol.Public}, testGroup)
	require.NoError(t, err)
	assert.Len(t, payload.EncryptedKeys, 3)
	assert.Equal(t, sender.Public, payload.Sender)

	for _, kp := range []KeyPair{sender, bob, carol} {
		opened, err := newTestEnclave(t, kp).Open(payload, kp.Public)
		require.NoError(t, err)
		assert.Equal(t, plaintext, opened)
	}
}

func TestSeal_Deterministic(t *testing.T) {
	sender, bob, carol := newTestKeyPair(t), newTestKeyPair(t), newTestKeyPair(t)
	e := newTestEnclave(t, sender)

	first, err := e.Seal([]byte("same"), sender.Public, []models.PublicKey{bob.Public, carol.Public}, testGroup)
	require.NoError(t, err)
	second, err := e.Seal([]byte("same"), sender.Public, []models.PublicKey{carol.Public, bob.Public, carol.Public}, testGroup)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSeal_DiffersPerRecipientSet(t *testing.T) {
	sender, bob, carol := newTestKeyPair(t), newTestKeyPair(t), newTestKeyPair(t)
	e := newTestEnclave(t, sender)

	first, err := e.Seal([]byte("same"), sender.Public, []models.PublicKey{bob.Public}, testGroup)
	require.NoError(t, err)
	second, err := e.Seal([]byte("same"), sender.Public, []models.PublicKey{bob.Public, carol.Public}, testGroup)
	require.NoError(t, err)

	assert.NotEqual(t, first.CipherText, second.CipherText)
}

func TestSeal_DiffersPerPrivacyGroup(t *testing.T) {
	sender, bob := newTestKeyPair(t), newTestKeyPair(t)
	e := newTestEnclave(t, sender)
	members := []models.PublicKey{sender.Public, bob.Public}

	first, err := e.Seal([]byte("same"), sender.Public, members, "group-one")
	require.NoError(t, err)
	second, err := e.Seal([]byte("same"), sender.Public, members, "group-two")
	require.NoError(t, err)

	assert.NotEqual(t, first.CipherText, second.CipherText)
	assert.Equal(t, "group-one", first.PrivacyGroupID)
	assert.Equal(t, "group-two", second.PrivacyGroupID)

	opened, err := newTestEnclave(t, bob).Open(second, bob.Public)
	require.NoError(t, err)
	assert.Equal(t, []byte("same"), opened)
}

func TestSeal_UnknownSender(t *testing.T) {
	stranger := newTestKeyPair(t)
	_, err := newTestEnclave(t, newTestKeyPair(t)).Seal([]byte("x"), stranger.Public, []models.PublicKey{stranger.Public}, testGroup)
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestSeal_NoRecipients(t *testing.T) {
	sender := newTestKeyPair(t)
	_, err := newTestEnclave(t, sender).Seal([]byte("x"), sender.Public, nil, testGroup)
	assert.ErrorIs(t, err, ErrEncrypt)
}

func TestOpen_NotAddressedToIdentity(t *testing.T) {
	sender, bob, eve := newTestKeyPair(t), newTestKeyPair(t), newTestKeyPair(t)
	payload, err := newTestEnclave(t, sender).Seal([]byte("x"), sender.Public, []models.PublicKey{bob.Public}, testGroup)
	require.NoError(t, err)

	_, err = newTestEnclave(t, eve).Open(payload, eve.Public)
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestOpen_UnknownIdentity(t *testing.T) {
	e := newTestEnclave(t, newTestKeyPair(t))
	_, err := e.Open(models.EncryptedPayload{}, newTestKeyPair(t).Public)
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestOpen_TamperedCipherText(t *testing.T) {
	sender, bob := newTestKeyPair(t), newTestKeyPair(t)
	payload, err := newTestEnclave(t, sender).Seal([]byte("hello"), sender.Public, []models.PublicKey{bob.Public}, testGroup)
	require.NoError(t, err)

	payload.CipherText[0] ^= 0xff
	_, err = newTestEnclave(t, bob).Open(payload, bob.Public)
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestOpen_SwappedKeyEntry(t *testing.T) {
	sender, bob, carol := newTestKeyPair(t), newTestKeyPair(t), newTestKeyPair(t)
	payload, err := newTestEnclave(t, sender).Seal([]byte("hello"), sender.Public,
		[]models.PublicKey{bob.Public, carol.Public}, testGroup)
	require.NoError(t, err)

	// carol tries bob's entry relabelled as her own
	bobKey, ok := payload.KeyFor(bob.Public)
	require.True(t, ok)
	for i := range payload.EncryptedKeys {
		if payload.EncryptedKeys[i].Recipient == carol.Public {
			payload.EncryptedKeys[i].Key = bobKey
		}
	}

	_, err = newTestEnclave(t, carol).Open(payload, carol.Public)
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestOpen_MalformedNonce(t *testing.T) {
	sender := newTestKeyPair(t)
	e := newTestEnclave(t, sender)
	payload, err := e.Seal([]byte("hello"), sender.Public, []models.PublicKey{sender.Public}, testGroup)
	require.NoError(t, err)

	payload.Nonce = payload.Nonce[:3]
	_, err = e.Open(payload, sender.Public)
	assert.ErrorIs(t, err, ErrDecrypt)
}
