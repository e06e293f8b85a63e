// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"crypto/sha512"
	"encoding/base64"
)

// KeySize is the digest width in bytes.
const KeySize = sha512.Size256

// BuildKey derives the storage digest of data: SHA-512/256 encoded as
// standard base64. Equal inputs always give equal keys.
func BuildKey(data []byte) string {
	sum := sha512.Sum512_256(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}
