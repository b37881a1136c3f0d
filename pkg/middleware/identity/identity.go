package identity

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	resp "taskmanager/pkg/lib/response"
)

// HeaderName carries the caller's user id. There is no token validation in
// this service; the header is the whole identity mechanism.
const HeaderName = "X-User-Id"

type ctxKey string

const userIDKey ctxKey = "userId"

// Require rejects requests without a parseable X-User-Id header and puts the
// user id into the request context.
func Require(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log = log.With(
			slog.String("op", "middlewareIdentity"),
		)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headerVal := r.Header.Get(HeaderName)
			if headerVal == "" {
				log.Warn("missing X-User-Id header", slog.String("path", r.URL.Path))
				resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
				return
			}

			userID, err := strconv.ParseUint(headerVal, 10, 32)
			if err != nil {
				log.Warn("invalid X-User-Id header", slog.String("value", headerVal))
				resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header must be a numeric user id")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, uint(userID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID extracts the caller's user id placed in the context by Require.
func UserID(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userIDKey).(uint)
	return id, ok
}
