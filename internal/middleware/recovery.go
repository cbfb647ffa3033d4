package middleware

import (
	"log/slog"
	"net/http"

	"github.com/writingtool-org/checkengine/pkg/response"
)

// Recovery converts a panic in h into a 500 response instead of crashing
// the process; the host callback thread invariant (§5) is that a document
// check never takes the server down with it.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						slog.Any("panic", rec),
						slog.String("path", r.URL.Path),
					)
					response.Error(w, http.StatusInternalServerError, "internal error")
				}
			}()
			h.ServeHTTP(w, r)
		})
	}
}
