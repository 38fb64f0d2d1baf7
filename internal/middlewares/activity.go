package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dating-app/internal/logger"
)

// ActivityRecorder bumps a user's last-active timestamp.
type ActivityRecorder interface {
	TouchLastActive(ctx context.Context, userID uuid.UUID) error
}

// ActivityMiddleware returns a middleware that records the authenticated
// user's activity after the request has been served. It must run inside
// AuthMiddleware so token claims are present. Recording failures are logged
// and never affect the response.
func ActivityMiddleware(recorder ActivityRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)

			claims := GetClaimsFromContext(r.Context())
			if claims == nil {
				return
			}

			if err := recorder.TouchLastActive(r.Context(), claims.UserID); err != nil {
				logger.Log.Warnw("failed to record user activity", "user_id", claims.UserID, "err", err)
			}
		})
	}
}
