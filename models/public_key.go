// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"slices"
)

// PublicKeySize is the length in bytes of a Curve25519 public key.
const PublicKeySize = 32

// ErrInvalidPublicKey is returned when a textual public key cannot be decoded
// into exactly [PublicKeySize] bytes.
var ErrInvalidPublicKey = errors.New("invalid public key")

// PublicKey is the public identity of a participant. On the wire it is always
// represented as standard base64, the same form used in key files.
type PublicKey [PublicKeySize]byte

// ParsePublicKey decodes a base64 encoded public key.
func ParsePublicKey(s string) (PublicKey, error) {
	var key PublicKey
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return key, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	if len(raw) != PublicKeySize {
		return key, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPublicKey, PublicKeySize, len(raw))
	}
	copy(key[:], raw)
	return key, nil
}

// String returns the base64 form of the key.
func (k PublicKey) String() string {
	return base64.StdEncoding.EncodeToString(k[:])
}

// MarshalText implements encoding.TextMarshaler.
func (k PublicKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *PublicKey) UnmarshalText(text []byte) error {
	parsed, err := ParsePublicKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Compare orders keys by their raw bytes.
func (k PublicKey) Compare(other PublicKey) int {
	return bytes.Compare(k[:], other[:])
}

// CanonicalMembers returns a sorted copy of keys with duplicates removed.
// Every group identity and membership index is derived from this form, so
// permutations and repetitions of the same participants are equivalent.
func CanonicalMembers(keys []PublicKey) []PublicKey {
	canonical := slices.Clone(keys)
	slices.SortFunc(canonical, PublicKey.Compare)
	return slices.Compact(canonical)
}

// ContainsKey reports whether key is in keys.
func ContainsKey(keys []PublicKey, key PublicKey) bool {
	return slices.Contains(keys, key)
}
