// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package enclave

import "github.com/MKhiriev/go-privacy-node/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/enclave_mock.go -package=mock

// Enclave is the encryption boundary of the node. It holds the node's private
// keys and never persists plaintext.
type Enclave interface {
	// Seal encrypts plaintext once for every recipient of the privacy group
	// groupID. sender must be one of [Enclave.NodeKeys]. The same plaintext,
	// sender, recipient set and group always produce a byte-identical
	// payload; a different group yields a different one.
	Seal(plaintext []byte, sender models.PublicKey, recipients []models.PublicKey, groupID string) (models.EncryptedPayload, error)

	// Open decrypts payload with the private key of identity. A payload that
	// was not addressed to identity, or was tampered with, fails with
	// [ErrDecrypt]; garbage plaintext is never returned.
	Open(payload models.EncryptedPayload, identity models.PublicKey) ([]byte, error)

	// NodeKeys lists the public identities this enclave holds private keys for.
	NodeKeys() []models.PublicKey

	// PrimaryKey is the identity used when a request does not name one.
	PrimaryKey() models.PublicKey

	// AlwaysSendTo lists identities added to every legacy distribution.
	AlwaysSendTo() []models.PublicKey
}
