package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/writingtool-org/checkengine/internal/service"
	"github.com/writingtool-org/checkengine/pkg/response"
)

// DocumentHandler exposes the checking engine over HTTP.
type DocumentHandler struct {
	svc *service.CheckService
}

// NewDocumentHandler creates a handler backed by svc.
func NewDocumentHandler(svc *service.CheckService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// Open handles POST /api/v1/documents/open.
// Accepts a multipart form with a "file" field containing a .docx.
func (h *DocumentHandler) Open(w http.ResponseWriter, r *http.Request) {
	data, err := readUploadedFile(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	info, err := h.svc.OpenDocument(r.Context(), data)
	if err != nil {
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, info)
}

// Check handles POST /api/v1/documents/{id}/check.
func (h *DocumentHandler) Check(w http.ResponseWriter, r *http.Request) {
	docID := r.PathValue("id")

	var req service.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.svc.Check(r.Context(), docID, req)
	if err != nil {
		response.Error(w, http.StatusNotFound, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// Ignore handles POST /api/v1/documents/{id}/ignore.
func (h *DocumentHandler) Ignore(w http.ResponseWriter, r *http.Request) {
	docID := r.PathValue("id")

	var body struct {
		FlatIndex  int    `json:"flat_index"`
		RuleID     string `json:"rule_id"`
		CharOffset int    `json:"char_offset"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.svc.Ignore(docID, body.FlatIndex, body.RuleID, body.CharOffset); err != nil {
		response.Error(w, http.StatusNotFound, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Close handles DELETE /api/v1/documents/{id}.
func (h *DocumentHandler) Close(w http.ResponseWriter, r *http.Request) {
	docID := r.PathValue("id")
	if err := h.svc.Close(docID); err != nil {
		response.Error(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RoundTrip handles POST /api/v1/documents/roundtrip, the packaging
// integrity smoke test (open then immediately re-save).
func (h *DocumentHandler) RoundTrip(w http.ResponseWriter, r *http.Request) {
	data, err := readUploadedFile(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	output, err := h.svc.RoundTrip(data)
	if err != nil {
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", `attachment; filename="roundtrip.docx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(output)
}

// readUploadedFile extracts the file bytes from a multipart upload. It
// looks for a form field named "file".
func readUploadedFile(r *http.Request) ([]byte, error) {
	if err := r.ParseMultipartForm(100 << 20); err != nil { // 100 MB max
		return nil, err
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}
