// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// PrivacyGroupState is the lifecycle state of a privacy group. Groups are
// never physically removed; deletion is a transition to [StateDeleted].
type PrivacyGroupState string

const (
	StateActive  PrivacyGroupState = "ACTIVE"
	StateDeleted PrivacyGroupState = "DELETED"
)

// PrivacyGroupType tells how a group identity was obtained.
type PrivacyGroupType string

const (
	// TypeLegacy groups are identified purely by their canonical membership.
	TypeLegacy PrivacyGroupType = "LEGACY"

	// TypePantheon groups are created explicitly; the creator mixes a random
	// seed into the identity.
	TypePantheon PrivacyGroupType = "PANTHEON"

	// TypeOnchain groups are managed by an on-chain contract and registered
	// here with a caller supplied seed.
	TypeOnchain PrivacyGroupType = "ONCHAIN"
)

// ParsePrivacyGroupType accepts the type name case-insensitively.
func ParsePrivacyGroupType(s string) (PrivacyGroupType, error) {
	switch t := PrivacyGroupType(strings.ToUpper(strings.TrimSpace(s))); t {
	case TypeLegacy, TypePantheon, TypeOnchain:
		return t, nil
	case "":
		return TypePantheon, nil
	default:
		return "", fmt.Errorf("unknown privacy group type %q", s)
	}
}

// PrivacyGroupPayload is the persisted record of a privacy group.
type PrivacyGroupPayload struct {
	// ID is the group identity (base64 digest).
	ID string `json:"privacyGroupId"`

	// Members is the canonical (sorted, unique) membership.
	Members []PublicKey `json:"addresses"`

	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	State PrivacyGroupState `json:"state"`
	Type  PrivacyGroupType  `json:"type"`

	// Seed is the creator supplied randomness mixed into named group ids.
	Seed []byte `json:"randomSeed,omitempty"`
}

// IsActive reports whether new payloads may be distributed to the group.
func (g PrivacyGroupPayload) IsActive() bool {
	return g.State == StateActive
}

// SameMembers reports whether both groups have identical canonical membership.
func (g PrivacyGroupPayload) SameMembers(other PrivacyGroupPayload) bool {
	a, b := CanonicalMembers(g.Members), CanonicalMembers(other.Members)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// QueryPrivacyGroupPayload is the membership index record: it maps one
// canonical member-set digest to all groups sharing that membership.
type QueryPrivacyGroupPayload struct {
	Members         []PublicKey `json:"addresses"`
	PrivacyGroupIDs []string    `json:"privacyGroupId"`
}
