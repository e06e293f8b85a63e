package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-privacy-node/internal/enclave"
	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/internal/service"
	"github.com/MKhiriev/go-privacy-node/internal/store"
	"github.com/MKhiriev/go-privacy-node/internal/utils"
)

// apiError is the body written for a failed request.
type apiError struct {
	Error string `json:"error"`
}

type errorStatus struct {
	err    error
	status int
	code   string
}

// errorStatusMap is matched in order; the first sentinel err wraps wins.
var errorStatusMap = []errorStatus{
	{ErrInvalidBody, http.StatusBadRequest, "InvalidPayload"},
	{service.ErrNoRecipients, http.StatusBadRequest, "NoRecipients"},
	{service.ErrUnknownSender, http.StatusBadRequest, "NoSenderKey"},
	{service.ErrLegacyGroupImmutable, http.StatusBadRequest, "LegacyPrivacyGroupImmutable"},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, "InvalidPayload"},
	{service.ErrSenderNotMember, http.StatusForbidden, "SenderNotMember"},
	{service.ErrPayloadNotFound, http.StatusNotFound, "ObjectNotFound"},
	{service.ErrPrivacyGroupNotFound, http.StatusNotFound, "PrivacyGroupNotFound"},
	{service.ErrPrivacyGroupUnavailable, http.StatusNotFound, "PrivacyGroupUnavailable"},
	{service.ErrUnknownNode, http.StatusNotFound, "NodeMissingPeerUrl"},
	{service.ErrGroupMembershipMismatch, http.StatusConflict, "PrivacyGroupMembershipMismatch"},

	{enclave.ErrUnknownKey, http.StatusNotFound, "EnclaveNoMatchingPrivateKey"},
	{enclave.ErrDecrypt, http.StatusForbidden, "EnclaveDecryptWrongPrivateKey"},
	{enclave.ErrEncrypt, http.StatusInternalServerError, "EnclaveEncrypt"},

	{store.ErrNotFound, http.StatusNotFound, "ObjectNotFound"},
	{store.ErrIntegrity, http.StatusInternalServerError, "ObjectIntegrity"},
	{store.ErrStorage, http.StatusInternalServerError, "ObjectRead"},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status, e.code
		}
	}
	return http.StatusInternalServerError, "Internal"
}

// writeError logs err and answers with its status and stable code.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	log := logger.FromRequest(r)
	status, code := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Str("code", code).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", fn).Str("code", code).Msg("request rejected")
	}

	_, _ = utils.WriteJSON(w, apiError{Error: code}, status)
}
