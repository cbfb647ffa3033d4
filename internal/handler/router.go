package handler

import (
	"log/slog"
	"net/http"

	"github.com/writingtool-org/checkengine/internal/middleware"
	"github.com/writingtool-org/checkengine/internal/service"
)

// NewRouter wires the checking engine's HTTP surface: health checks plus
// the document lifecycle (open, check, ignore, close) and the packaging
// round-trip smoke test.
func NewRouter(logger *slog.Logger, svc *service.CheckService, maxBodyBytes int64) http.Handler {
	mux := http.NewServeMux()
	docs := NewDocumentHandler(svc)

	mux.HandleFunc("GET /health", Health)
	mux.HandleFunc("GET /ready", Health)
	mux.HandleFunc("POST /api/v1/documents/open", docs.Open)
	mux.HandleFunc("POST /api/v1/documents/roundtrip", docs.RoundTrip)
	mux.HandleFunc("POST /api/v1/documents/{id}/check", docs.Check)
	mux.HandleFunc("POST /api/v1/documents/{id}/ignore", docs.Ignore)
	mux.HandleFunc("DELETE /api/v1/documents/{id}", docs.Close)

	var h http.Handler = mux
	h = middleware.MaxBodySize(maxBodyBytes)(h)
	h = middleware.CORS(h)
	h = middleware.Recovery(logger)(h)
	h = middleware.Logging(logger)(h)
	return h
}
