package server

import (
	"net/http"

	"github.com/vango-dev/markup/internal/errors"
)

// statusFor maps an error code to an HTTP status.
func statusFor(code string) int {
	switch code {
	case "E024":
		return http.StatusNotFound
	case "E020", "E021", "E022", "E023":
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err, counts it and writes a plain text response.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.Code(err)
	status := statusFor(code)
	s.metrics.RecordRenderError(code)

	if status >= http.StatusInternalServerError {
		s.logger.Error("render failed", "path", r.URL.Path, "code", code, "error", err)
		http.Error(w, http.StatusText(status), status)
		return
	}
	s.logger.Debug("document rejected", "path", r.URL.Path, "code", code, "error", err)
	http.Error(w, err.Error(), status)
}
