// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package enclave

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"io"
	"slices"

	"github.com/MKhiriev/go-privacy-node/models"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/box"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	masterKeySize = 32
	nonceSize     = 24
)

// KeyPair is one Curve25519 identity held by the enclave.
type KeyPair struct {
	Public  models.PublicKey
	Private [32]byte
}

// NewKeyPair derives the public half of priv.
func NewKeyPair(priv [32]byte) (KeyPair, error) {
	pub, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return KeyPair{}, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	kp := KeyPair{Private: priv}
	copy(kp.Public[:], pub)
	return kp, nil
}

// NaclEnclave seals payloads with XSalsa20-Poly1305 under a per-payload
// master key and boxes the master key for every recipient with NaCl box.
//
// The master key and both nonces are derived with HKDF from the sender's
// private key, the plaintext hash and the canonical recipient set, so
// sealing is deterministic: redistributing the same plaintext to the same
// participants yields the same ciphertext and therefore the same digest.
type NaclEnclave struct {
	keys         map[models.PublicKey]KeyPair
	order        []models.PublicKey
	alwaysSendTo []models.PublicKey
}

// NewNaclEnclave builds an enclave over keys. The first pair becomes the
// primary identity.
func NewNaclEnclave(keys []KeyPair, alwaysSendTo []models.PublicKey) (*NaclEnclave, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}

	e := &NaclEnclave{
		keys:         make(map[models.PublicKey]KeyPair, len(keys)),
		order:        make([]models.PublicKey, 0, len(keys)),
		alwaysSendTo: slices.Clone(alwaysSendTo),
	}

	for _, kp := range keys {
		derived, err := NewKeyPair(kp.Private)
		if err != nil {
			return nil, err
		}
		if derived.Public != kp.Public {
			return nil, fmt.Errorf("%w: %s", ErrKeyMismatch, kp.Public)
		}
		if _, ok := e.keys[kp.Public]; ok {
			continue
		}
		e.keys[kp.Public] = kp
		e.order = append(e.order, kp.Public)
	}

	return e, nil
}

func (e *NaclEnclave) Seal(plaintext []byte, sender models.PublicKey, recipients []models.PublicKey, groupID string) (models.EncryptedPayload, error) {
	senderKeys, ok := e.keys[sender]
	if !ok {
		return models.EncryptedPayload{}, fmt.Errorf("%w: sender %s", ErrUnknownKey, sender)
	}

	recipients = models.CanonicalMembers(recipients)
	if len(recipients) == 0 {
		return models.EncryptedPayload{}, fmt.Errorf("%w: no recipients", ErrEncrypt)
	}

	var (
		masterKey      [masterKeySize]byte
		nonce          [nonceSize]byte
		recipientNonce [nonceSize]byte
	)
	kdf := e.derivation(senderKeys.Private, plaintext, recipients, groupID)
	for _, buf := range [][]byte{masterKey[:], nonce[:], recipientNonce[:]} {
		if _, err := io.ReadFull(kdf, buf); err != nil {
			return models.EncryptedPayload{}, fmt.Errorf("%w: derive key material: %w", ErrEncrypt, err)
		}
	}

	payload := models.EncryptedPayload{
		Sender:         sender,
		CipherText:     secretbox.Seal(nil, plaintext, &nonce, &masterKey),
		Nonce:          nonce[:],
		RecipientNonce: recipientNonce[:],
		EncryptedKeys:  make([]models.EncryptedKey, 0, len(recipients)),
		PrivacyGroupID: groupID,
	}

	for _, recipient := range recipients {
		peer := [32]byte(recipient)
		payload.EncryptedKeys = append(payload.EncryptedKeys, models.EncryptedKey{
			Recipient: recipient,
			Key:       box.Seal(nil, masterKey[:], &recipientNonce, &peer, &senderKeys.Private),
		})
	}

	return payload, nil
}

func (e *NaclEnclave) Open(payload models.EncryptedPayload, identity models.PublicKey) ([]byte, error) {
	own, ok := e.keys[identity]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, identity)
	}

	boxedKey, ok := payload.KeyFor(identity)
	if !ok {
		return nil, fmt.Errorf("%w: payload not addressed to %s", ErrDecrypt, identity)
	}
	if len(payload.Nonce) != nonceSize || len(payload.RecipientNonce) != nonceSize {
		return nil, fmt.Errorf("%w: malformed nonce", ErrDecrypt)
	}

	var (
		nonce          [nonceSize]byte
		recipientNonce [nonceSize]byte
		masterKey      [masterKeySize]byte
	)
	copy(nonce[:], payload.Nonce)
	copy(recipientNonce[:], payload.RecipientNonce)
	sender := [32]byte(payload.Sender)

	rawKey, ok := box.Open(nil, boxedKey, &recipientNonce, &sender, &own.Private)
	if !ok || len(rawKey) != masterKeySize {
		return nil, fmt.Errorf("%w: master key", ErrDecrypt)
	}
	copy(masterKey[:], rawKey)

	plaintext, ok := secretbox.Open(nil, payload.CipherText, &nonce, &masterKey)
	if !ok {
		return nil, fmt.Errorf("%w: cipher text", ErrDecrypt)
	}

	return plaintext, nil
}

func (e *NaclEnclave) NodeKeys() []models.PublicKey {
	return slices.Clone(e.order)
}

func (e *NaclEnclave) PrimaryKey() models.PublicKey {
	return e.order[0]
}

func (e *NaclEnclave) AlwaysSendTo() []models.PublicKey {
	return slices.Clone(e.alwaysSendTo)
}

// derivation returns the HKDF stream keyed by the sender's private key. The
// salt binds it to the plaintext, the info to the privacy group and its
// exact recipient set.
func (e *NaclEnclave) derivation(priv [32]byte, plaintext []byte, recipients []models.PublicKey, groupID string) io.Reader {
	digest := sha512.Sum512_256(plaintext)

	info := make([]byte, 0, len("payload")+binary.MaxVarintLen64+len(groupID)+len(recipients)*models.PublicKeySize)
	info = append(info, "payload"...)
	info = binary.AppendUvarint(info, uint64(len(groupID)))
	info = append(info, groupID...)
	for _, r := range recipients {
		info = append(info, r[:]...)
	}

	return hkdf.New(sha256.New, priv[:], digest[:], info)
}
