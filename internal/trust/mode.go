// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package trust enforces TLS peer identity on the node and client
// interfaces. Every interface is built from its own configuration and owns
// its own [Verifier]; no TLS state is shared between interfaces.
//
// An identity is the certificate CommonName for inbound connections and the
// dialed host:port for outbound connections. Identities are bound to
// certificate fingerprints in a known hosts file.
package trust

import (
	"fmt"
	"strings"
)

// Mode is the policy an interface applies to the certificates it is offered.
type Mode string

const (
	// ModeInsecure accepts any certificate. Development only.
	ModeInsecure Mode = "insecure-no-validation"

	// ModeRecord accepts any certificate and records unseen fingerprints.
	ModeRecord Mode = "insecure-record"

	// ModeWhitelist accepts only identity/fingerprint pairs listed in the
	// known hosts file.
	ModeWhitelist Mode = "whitelist"

	// ModeTOFU records the first fingerprint seen per identity and rejects
	// any other afterwards.
	ModeTOFU Mode = "tofu"

	// ModeCA accepts certificates that chain to a trusted root.
	ModeCA Mode = "ca"

	ModeCAOrWhitelist Mode = "ca-or-whitelist"
	ModeCAOrTOFU      Mode = "ca-or-tofu"
)

// ParseMode accepts the mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeInsecure, ModeRecord, ModeWhitelist, ModeTOFU, ModeCA, ModeCAOrWhitelist, ModeCAOrTOFU:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// usesKnownHosts reports whether the mode reads or writes a known hosts file.
func (m Mode) usesKnownHosts() bool {
	return m != ModeInsecure && m != ModeCA
}

// usesCA reports whether the mode consults certificate authorities.
func (m Mode) usesCA() bool {
	return m == ModeCA || m == ModeCAOrWhitelist || m == ModeCAOrTOFU
}
