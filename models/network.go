// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NetworkNode binds a public identity to the base URL of the node that owns it.
type NetworkNode struct {
	PublicKey PublicKey `json:"publicKey"`
	URL       string    `json:"url"`
}

// PartyInfo is exchanged between nodes during discovery: the sender's own URL
// and every identity it knows a URL for.
type PartyInfo struct {
	URL      string               `json:"url"`
	NodeURLs map[PublicKey]string `json:"nodeURLs"`
}
