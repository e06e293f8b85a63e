// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptedKey is the payload master key sealed for exactly one recipient.
type EncryptedKey struct {
	// Recipient is the public identity that can open Key.
	Recipient PublicKey `json:"recipient"`

	// Key is the master key boxed for Recipient by the sender.
	Key []byte `json:"key"`
}

// EncryptedPayload is the unit that nodes store and push to each other. It
// is immutable once the enclave produced it, and its storage digest is
// derived from CipherText.
type EncryptedPayload struct {
	// Sender is the public identity that sealed the payload.
	Sender PublicKey `json:"sender"`

	// CipherText is the plaintext sealed with the master key.
	CipherText []byte `json:"cipherText"`

	// Nonce is used with the master key to seal CipherText.
	Nonce []byte `json:"nonce"`

	// RecipientNonce is used to box the master key for every recipient.
	RecipientNonce []byte `json:"recipientNonce"`

	// EncryptedKeys holds one boxed master key per recipient, ordered by
	// recipient key.
	EncryptedKeys []EncryptedKey `json:"encryptedKeys"`

	// PrivacyGroupID is the group the payload was distributed under.
	PrivacyGroupID string `json:"privacyGroupId"`
}

// KeyFor returns the boxed master key addressed to recipient.
func (p EncryptedPayload) KeyFor(recipient PublicKey) ([]byte, bool) {
	for _, k := range p.EncryptedKeys {
		if k.Recipient == recipient {
			return k.Key, true
		}
	}
	return nil, false
}

// Recipients lists the identities that hold a key for this payload.
func (p EncryptedPayload) Recipients() []PublicKey {
	recipients := make([]PublicKey, 0, len(p.EncryptedKeys))
	for _, k := range p.EncryptedKeys {
		recipients = append(recipients, k.Recipient)
	}
	return recipients
}
