package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-softjobs/internal/logger"
	"github.com/MKhiriev/go-softjobs/internal/service"
	"github.com/MKhiriev/go-softjobs/internal/utils"
)

// auth is the gate in front of protected routes.
//
// It extracts the bearer token, lets the auth service pick the subject's
// secret and verify the token with it, and stores the verified email in the
// request context under [utils.EmailCtxKey].
//
// Every rejection is a 401 with a WWW-Authenticate challenge and one of:
//   - "token not provided" when the Authorization header is absent;
//   - "invalid token format" when it is not exactly "Bearer <token>";
//   - "invalid or expired token" for any failed verification.
//
// The precise reason is logged only.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		switch {
		case errors.Is(err, utils.ErrAuthorizationHeaderMissing):
			h.rejectToken(w, r, service.NewAuthError(service.AuthMissing, err), msgTokenNotProvided)
			return
		case err != nil:
			h.rejectToken(w, r, service.NewAuthError(service.AuthMalformed, err), msgInvalidTokenFormat)
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			var authErr *service.AuthError
			if errors.As(err, &authErr) {
				h.rejectToken(w, r, authErr, msgInvalidToken)
				return
			}
			h.writeError(w, r, err)
			return
		}

		log.Debug().Time("expires_at", claims.ExpiresAt).Msg("token verified")

		ctx = context.WithValue(ctx, utils.EmailCtxKey, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) rejectToken(w http.ResponseWriter, r *http.Request, authErr *service.AuthError, message string) {
	logger.FromRequest(r).Warn().
		Err(authErr).
		Str("reason", authErr.Kind.String()).
		Msg("request rejected by auth gate")

	challenge := `Bearer`
	if authErr.Kind != service.AuthMissing {
		challenge = `Bearer error="invalid_token"`
	}
	w.Header().Set("WWW-Authenticate", challenge)

	utils.WriteError(w, message, http.StatusUnauthorized)
}
