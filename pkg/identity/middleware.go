package identity

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/shareit/pkg/httpx"
	"github.com/ghuser/shareit/pkg/logger"
)

// Header carries the asserted caller id on every request that needs one.
const Header = "X-Sharer-User-Id"

// RequireSharerID is a chi middleware that parses the X-Sharer-User-Id header
// and injects the id into the request context. A missing or malformed header
// is a 400 — the caller never reached a business rule.
//
// After this middleware, handlers can safely call identity.UserIDFromCtx.
func RequireSharerID(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(Header)
			if raw == "" {
				httpx.Error(w, http.StatusBadRequest, Header+" header is required")
				return
			}

			id, err := uuid.Parse(raw)
			if err != nil {
				log.WarnContext(r.Context(), "malformed sharer id header", "value", raw, "error", err)
				httpx.Error(w, http.StatusBadRequest, Header+" must be a valid UUID")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), id)))
		})
	}
}
