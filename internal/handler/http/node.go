// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-privacy-node/internal/utils"
	"github.com/MKhiriev/go-privacy-node/models"
)

const upcheckResponse = "I'm up!"

// upcheck is reachable only once the TLS handshake, when enabled, passed.
func (h *Handler) upcheck(w http.ResponseWriter, r *http.Request) {
	writeText(w, upcheckResponse, http.StatusOK)
}

// push stores a payload pushed by a peer and answers with its digest.
func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	var req models.PushRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.push", err)
		return
	}

	key, err := h.services.DistributionService.Receive(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.push", err)
		return
	}

	writeText(w, key, http.StatusOK)
}

func (h *Handler) pushPrivacyGroup(w http.ResponseWriter, r *http.Request) {
	var group models.PrivacyGroupPayload
	if err := decodeJSON(w, r, &group); err != nil {
		writeError(w, r, "*Handler.pushPrivacyGroup", err)
		return
	}

	id, err := h.services.PrivacyGroupService.Receive(r.Context(), group)
	if err != nil {
		writeError(w, r, "*Handler.pushPrivacyGroup", err)
		return
	}

	writeText(w, id, http.StatusOK)
}

// partyInfo merges the caller's directory and answers with ours.
func (h *Handler) partyInfo(w http.ResponseWriter, r *http.Request) {
	var info models.PartyInfo
	if err := decodeJSON(w, r, &info); err != nil {
		writeError(w, r, "*Handler.partyInfo", err)
		return
	}

	ours, err := h.services.NodeService.PartyInfo(r.Context(), info)
	if err != nil {
		writeError(w, r, "*Handler.partyInfo", err)
		return
	}

	_, _ = utils.WriteJSON(w, ours, http.StatusOK)
}
