package http

import (
	"net/http"

	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/internal/utils"
	"github.com/MKhiriev/go-privacy-node/models"
)

// send distributes a payload. Undelivered recipients are listed in the
// outcomes of a 200 response.
func (h *Handler) send(w http.ResponseWriter, r *http.Request) {
	var req models.SendRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.send", err)
		return
	}

	result, err := h.services.DistributionService.Distribute(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.send", err)
		return
	}

	if undelivered := result.Undelivered(); len(undelivered) > 0 {
		logger.FromRequest(r).Warn().Str("func", "*Handler.send").Str("key", result.Key).Int("undelivered", len(undelivered)).Msg("partial distribution")
	}

	_, _ = utils.WriteJSON(w, models.SendResponse{Key: result.Key, Outcomes: result.Outcomes}, http.StatusOK)
}

func (h *Handler) receive(w http.ResponseWriter, r *http.Request) {
	var req models.ReceiveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.receive", err)
		return
	}

	resp, err := h.services.DistributionService.Retrieve(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.receive", err)
		return
	}

	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) createPrivacyGroup(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePrivacyGroupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.createPrivacyGroup", err)
		return
	}

	group, err := h.services.PrivacyGroupService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.createPrivacyGroup", err)
		return
	}

	_, _ = utils.WriteJSON(w, group, http.StatusOK)
}

func (h *Handler) deletePrivacyGroup(w http.ResponseWriter, r *http.Request) {
	var req models.DeletePrivacyGroupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.deletePrivacyGroup", err)
		return
	}

	id, err := h.services.PrivacyGroupService.Delete(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.deletePrivacyGroup", err)
		return
	}

	_, _ = utils.WriteJSON(w, id, http.StatusOK)
}

// retrievePrivacyGroup returns the group in any state.
func (h *Handler) retrievePrivacyGroup(w http.ResponseWriter, r *http.Request) {
	var req models.RetrievePrivacyGroupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.retrievePrivacyGroup", err)
		return
	}

	group, err := h.services.PrivacyGroupService.Retrieve(r.Context(), req.PrivacyGroupID)
	if err != nil {
		writeError(w, r, "*Handler.retrievePrivacyGroup", err)
		return
	}

	_, _ = utils.WriteJSON(w, group, http.StatusOK)
}

func (h *Handler) findPrivacyGroup(w http.ResponseWriter, r *http.Request) {
	var req models.FindPrivacyGroupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.findPrivacyGroup", err)
		return
	}

	groups, err := h.services.PrivacyGroupService.Find(r.Context(), req.Addresses)
	if err != nil {
		writeError(w, r, "*Handler.findPrivacyGroup", err)
		return
	}
	if groups == nil {
		groups = []models.PrivacyGroupPayload{}
	}

	_, _ = utils.WriteJSON(w, groups, http.StatusOK)
}

func (h *Handler) registerPeer(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterPeerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.registerPeer", err)
		return
	}

	if err := h.services.NodeService.RegisterPeer(r.Context(), req); err != nil {
		writeError(w, r, "*Handler.registerPeer", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) peers(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.NodeService.Peers(r.Context()), http.StatusOK)
}
