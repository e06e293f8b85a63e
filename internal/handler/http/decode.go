package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxBodySize bounds every request body; payloads are carried inline.
const maxBodySize = 64 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return nil
}

func writeText(w http.ResponseWriter, s string, status int) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(s))
}
