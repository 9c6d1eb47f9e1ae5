package http

import (
	"errors"
	"net/http"

	"github.com/kashishbhadauriya/Careersphere/internal/logger"
	"github.com/kashishbhadauriya/Careersphere/internal/utils"
)

// auth is an HTTP middleware that enforces cookie-based JWT authentication.
//
// It reads the "token" cookie, validates it via
// [service.AuthService.ParseToken] and, on success, stores the claims in the
// request context under [utils.ClaimsCtxKey].
//
// A missing, empty or invalid token never produces an error page: the
// browser is redirected to the login page with 302 Found.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromCookie(r)
		if err != nil {
			log.Debug().Err(err).Str("uri", r.RequestURI).Msg("unauthenticated request")
			utils.Redirect(w, r, "/")
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("error occurred during parsing token")
			utils.Redirect(w, r, "/")
			return
		}

		ctx = utils.WithClaims(ctx, token.Claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromCookie returns [ErrNoTokenCookie] or [ErrEmptyToken].
func getTokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(tokenCookieName)
	if errors.Is(err, http.ErrNoCookie) {
		return "", ErrNoTokenCookie
	}
	if err != nil {
		return "", err
	}

	if cookie.Value == "" {
		return "", ErrEmptyToken
	}

	return cookie.Value, nil
}
