package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-softjobs/internal/logger"
	"github.com/MKhiriev/go-softjobs/internal/utils"
	"github.com/MKhiriev/go-softjobs/models"
)

// register handles POST /users.
//
//	201 {"user": {...}, "token": "..."}
//	400 invalid JSON or missing email/password
//	409 email already registered
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, token, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.RegisterResponse{User: user, Token: token.SignedString}, http.StatusCreated)
}

// profile handles GET /users behind the auth gate and returns every user
// record matching the verified email.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email, ok := utils.GetEmailFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoEmailInContext)
		return
	}

	profiles, err := h.services.AuthService.Profile(ctx, email)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profiles, http.StatusOK)
}
