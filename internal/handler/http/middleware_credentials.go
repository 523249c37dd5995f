package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-softjobs/internal/logger"
	"github.com/MKhiriev/go-softjobs/internal/utils"
	"github.com/MKhiriev/go-softjobs/models"
)

// checkCredentials rejects register and login bodies without an email or a
// password with 400 before the handler runs. The body is restored for the
// handler.
func (h *Handler) checkCredentials(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			log.Err(err).Msg("error reading request body")
			utils.WriteError(w, msgInvalidJSON, http.StatusBadRequest)
			return
		}
		_ = r.Body.Close()

		var creds models.Credentials
		if err = json.Unmarshal(body, &creds); err != nil {
			log.Warn().Err(err).Msg("invalid JSON was passed")
			utils.WriteError(w, msgInvalidJSON, http.StatusBadRequest)
			return
		}

		if err = h.validator.Validate(r.Context(), creds); err != nil {
			log.Warn().Err(err).Msg("credentials missing")
			utils.WriteError(w, msgCredentialsRequired, http.StatusBadRequest)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}
