package middleware

import "net/http"

// MaxBodySize rejects request bodies larger than limitBytes before a
// handler ever reads them.
func MaxBodySize(limitBytes int64) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limitBytes)
			h.ServeHTTP(w, r)
		})
	}
}
