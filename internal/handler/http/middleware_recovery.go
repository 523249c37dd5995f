package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-softjobs/internal/logger"
	"github.com/MKhiriev/go-softjobs/internal/utils"
)

// withRecovery turns a panic in a handler into a JSON 500. http.ErrAbortHandler
// is re-panicked so net/http can abort the connection.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")
			utils.WriteError(w, msgInternalError, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
