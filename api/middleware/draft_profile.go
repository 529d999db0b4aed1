package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/unitedformulas/storefront-api/pkg/logger"
)

const (
	draftTokenHeader = "X-Draft-Token"
	draftTokenCookie = "uf_draft_token"
)

// DraftProfile resolves the visitor's draft profile token from the request,
// minting one when absent. The token is echoed on both the response header
// and a cookie so browser and non-browser clients can carry it.
func DraftProfile(logg *logger.Logger, cookieTTL time.Duration, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			profileID := r.Header.Get(draftTokenHeader)
			if profileID == "" {
				if cookie, err := r.Cookie(draftTokenCookie); err == nil {
					profileID = cookie.Value
				}
			}
			if profileID == "" {
				profileID = uuid.NewString()
			}

			w.Header().Set(draftTokenHeader, profileID)
			http.SetCookie(w, &http.Cookie{
				Name:     draftTokenCookie,
				Value:    profileID,
				Path:     "/",
				MaxAge:   int(cookieTTL.Seconds()),
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := WithProfileID(r.Context(), profileID)
			if logg != nil {
				ctx = logg.WithProfileID(ctx, profileID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
