// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PushOutcome reports the delivery of one distribution to one recipient.
type PushOutcome struct {
	// Recipient is the identity the payload was addressed to.
	Recipient PublicKey `json:"recipient"`

	// URL is the node the push was sent to; empty when the recipient could
	// not be resolved or is hosted locally.
	URL string `json:"url,omitempty"`

	// Local is true when the recipient is one of this node's own identities,
	// so the local store already satisfies delivery.
	Local bool `json:"local,omitempty"`

	Delivered bool `json:"delivered"`

	// Attempts is how many push requests were issued.
	Attempts int `json:"attempts"`

	// Error describes the last failure for undelivered recipients.
	Error string `json:"error,omitempty"`
}

// DistributeResult is what a distribution produces.
type DistributeResult struct {
	Key      string
	Outcomes []PushOutcome
}

// Undelivered returns the recipients that did not (yet) receive the payload.
func (r DistributeResult) Undelivered() []PublicKey {
	var missing []PublicKey
	for _, o := range r.Outcomes {
		if !o.Delivered {
			missing = append(missing, o.Recipient)
		}
	}
	return missing
}
