package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-softjobs/internal/logger"
	"github.com/MKhiriev/go-softjobs/internal/utils"
	"github.com/MKhiriev/go-softjobs/models"
)

// login handles POST /login.
//
//	200 {"token": "..."}
//	401 {"message": "invalid credentials"} for an unknown email or a wrong password
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Time("expires_at", token.ExpiresAt).Msg("user logged in")
	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString}, http.StatusOK)
}
