// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SendRequest asks the node to distribute Payload. Either To (legacy,
// membership-derived group) or PrivacyGroupID (named group) selects the
// recipients. From defaults to the node's primary key when omitted.
type SendRequest struct {
	Payload        []byte      `json:"payload"`
	From           *PublicKey  `json:"from,omitempty"`
	To             []PublicKey `json:"to,omitempty"`
	PrivacyGroupID string      `json:"privacyGroupId,omitempty"`
}

// SendResponse carries the authoritative digest and the per-recipient
// delivery report. A response with failed outcomes is a partial success.
type SendResponse struct {
	Key      string        `json:"key"`
	Outcomes []PushOutcome `json:"outcomes"`
}

// ReceiveRequest asks the node to open the payload stored under Key with the
// local identity To (the primary key when omitted).
type ReceiveRequest struct {
	Key string     `json:"key"`
	To  *PublicKey `json:"to,omitempty"`
}

// ReceiveResponse is the opened payload.
type ReceiveResponse struct {
	Payload        []byte    `json:"payload"`
	PrivacyGroupID string    `json:"privacyGroupId"`
	SenderKey      PublicKey `json:"senderKey"`
}

// PushRequest is the body of a peer push.
type PushRequest struct {
	Payload      EncryptedPayload     `json:"payload"`
	PrivacyGroup *PrivacyGroupPayload `json:"privacyGroup,omitempty"`
}

// CreatePrivacyGroupRequest creates a named group. From must be one of the
// local identities and is always made a member.
type CreatePrivacyGroupRequest struct {
	Addresses   []PublicKey `json:"addresses"`
	From        PublicKey   `json:"from"`
	Name        string      `json:"name,omitempty"`
	Description string      `json:"description,omitempty"`
	Type        string      `json:"type,omitempty"`
	Seed        []byte      `json:"randomSeed,omitempty"`
}

// DeletePrivacyGroupRequest soft-deletes a group on behalf of a member.
type DeletePrivacyGroupRequest struct {
	PrivacyGroupID string    `json:"privacyGroupId"`
	From           PublicKey `json:"from"`
}

// RetrievePrivacyGroupRequest looks a group up by identity.
type RetrievePrivacyGroupRequest struct {
	PrivacyGroupID string `json:"privacyGroupId"`
}

// FindPrivacyGroupRequest looks up the active groups with exactly this
// membership.
type FindPrivacyGroupRequest struct {
	Addresses []PublicKey `json:"addresses"`
}

// RegisterPeerRequest binds a public identity to a node URL.
type RegisterPeerRequest struct {
	PublicKey PublicKey `json:"publicKey"`
	URL       string    `json:"url"`
}
