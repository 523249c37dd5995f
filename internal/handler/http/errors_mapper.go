package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-softjobs/internal/logger"
	"github.com/MKhiriev/go-softjobs/internal/service"
	"github.com/MKhiriev/go-softjobs/internal/store"
	"github.com/MKhiriev/go-softjobs/internal/utils"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []errorResponse{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, msgInvalidData},
	{service.ErrEmailAlreadyRegistered, http.StatusConflict, msgEmailRegistered},
	{store.ErrEmailAlreadyExists, http.StatusConflict, msgEmailRegistered},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, msgInvalidCredentials},
	{service.ErrAuthMissing, http.StatusUnauthorized, msgTokenNotProvided},
	{service.ErrAuthMalformed, http.StatusUnauthorized, msgInvalidToken},
	{service.ErrAuthInvalidSignature, http.StatusUnauthorized, msgInvalidToken},
	{service.ErrAuthExpired, http.StatusUnauthorized, msgInvalidToken},
	{service.ErrAuthUnknownSubject, http.StatusUnauthorized, msgInvalidToken},
}

// statusFromError returns the HTTP status and public message for err.
// Anything unmapped is a 500 with a generic message.
func statusFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, msgInternalError
}

// writeError logs err and answers with its mapped status and message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized && !errors.Is(err, service.ErrInvalidCredentials) {
		w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	}

	utils.WriteError(w, message, status)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, msgNotFound, http.StatusNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, msgMethodNotAllowed, http.StatusMethodNotAllowed)
}
