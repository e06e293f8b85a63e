package server

import (
	"log"
	"strings"

	"github.com/MKhiriev/go-privacy-node/internal/logger"
)

// errorLogWriter routes net/http's internal messages, such as failed TLS
// handshakes, to the structured logger.
type errorLogWriter struct {
	logger *logger.Logger
}

func (w errorLogWriter) Write(p []byte) (int, error) {
	w.logger.Warn().Str("func", "http.Server").Msg(strings.TrimSpace(string(p)))
	return len(p), nil
}

func newErrorLog(l *logger.Logger) *log.Logger {
	return log.New(errorLogWriter{logger: l}, "", 0)
}
