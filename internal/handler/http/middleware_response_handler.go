// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter decorates [http.ResponseWriter] to record the status code
// and body size for the access log. WriteHeader reaches the wrapped writer
// at most once.
type responseWriter struct {
	http.ResponseWriter

	// status is zero until WriteHeader, or a Write implying it, ran.
	status      int
	wroteHeader bool

	// size is the running total of body bytes written.
	size int
}

// WriteHeader records statusCode and forwards it once; later calls are
// ignored as [http.ResponseWriter] requires.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implies WriteHeader([http.StatusOK]) when no status was written yet.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Unwrap lets [http.ResponseController] reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
