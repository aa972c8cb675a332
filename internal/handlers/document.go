package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"studydeck/internal/auth"
	"studydeck/internal/contextutil"
	"studydeck/internal/extract"
	"studydeck/internal/ingest"
	"studydeck/internal/storage"
)

// maxUploadBytes caps the multipart upload size at 20 MB.
const maxUploadBytes = 20 << 20

// DocumentHandler handles document upload and management.
type DocumentHandler struct {
	pipeline  *ingest.Pipeline
	docRepo   storage.DocumentStore
	chunkRepo storage.ChunkStore
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(pipeline *ingest.Pipeline, docRepo storage.DocumentStore, chunkRepo storage.ChunkStore) *DocumentHandler {
	return &DocumentHandler{
		pipeline:  pipeline,
		docRepo:   docRepo,
		chunkRepo: chunkRepo,
	}
}

// DocumentResponse represents a document in API responses.
//
// swagger:model DocumentResponse
type DocumentResponse struct {
	ID         string `json:"id"`
	Filename   string `json:"filename"`
	Title      string `json:"title"`
	ChunkCount int    `json:"chunk_count,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// Upload handles POST /api/documents. It expects a multipart form with a
// "file" part and supports PDF, Markdown and plain text uploads.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	userID := auth.UserIDFromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		logger.WarnContext(ctx, "invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid multipart form or file too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "A file part named 'file' is required")
		return
	}
	defer file.Close()

	if !extract.Supported(header.Filename) {
		writeError(w, http.StatusUnsupportedMediaType, "Unsupported file type: upload PDF, Markdown or plain text")
		return
	}

	doc, err := h.pipeline.IngestDocument(ctx, userID, header.Filename, file)
	if err != nil {
		if errors.Is(err, ingest.ErrEmptyDocument) {
			writeError(w, http.StatusBadRequest, "Document contains no extractable text")
			return
		}
		logger.ErrorContext(ctx, "ingestion failed", "filename", header.Filename, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to ingest document")
		return
	}

	count, err := h.chunkRepo.CountByDocument(ctx, doc.ID)
	if err != nil {
		logger.WarnContext(ctx, "failed to count chunks", "document_id", doc.ID, "error", err)
	}

	writeJSON(w, http.StatusCreated, documentResponse(doc, count))
}

// List handles GET /api/documents.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	userID := auth.UserIDFromContext(ctx)

	docs, err := h.docRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list documents", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list documents")
		return
	}

	resp := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		resp = append(resp, documentResponse(doc, 0))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/documents/{id}.
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	userID := auth.UserIDFromContext(ctx)

	doc, ok := h.loadOwnedDocument(w, r, userID)
	if !ok {
		return
	}

	count, err := h.chunkRepo.CountByDocument(ctx, doc.ID)
	if err != nil {
		logger.WarnContext(ctx, "failed to count chunks", "document_id", doc.ID, "error", err)
	}

	writeJSON(w, http.StatusOK, documentResponse(doc, count))
}

// Delete handles DELETE /api/documents/{id}. Chunks, flashcards and quizzes
// belonging to the document are removed by cascade.
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	userID := auth.UserIDFromContext(ctx)

	doc, ok := h.loadOwnedDocument(w, r, userID)
	if !ok {
		return
	}

	if err := h.docRepo.Delete(ctx, doc.ID); err != nil {
		logger.ErrorContext(ctx, "failed to delete document", "document_id", doc.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete document")
		return
	}

	logger.InfoContext(ctx, "document deleted", "document_id", doc.ID)
	w.WriteHeader(http.StatusNoContent)
}

// loadOwnedDocument resolves the {id} URL parameter to a document owned by
// the user, writing the error response itself when that fails.
func (h *DocumentHandler) loadOwnedDocument(w http.ResponseWriter, r *http.Request, userID string) (*storage.DocumentRecord, bool) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id := chi.URLParam(r, "id")
	doc, err := h.docRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Document not found")
			return nil, false
		}
		logger.ErrorContext(ctx, "failed to load document", "document_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load document")
		return nil, false
	}
	if doc.UserID != userID {
		writeError(w, http.StatusNotFound, "Document not found")
		return nil, false
	}
	return doc, true
}

func documentResponse(doc *storage.DocumentRecord, chunkCount int) DocumentResponse {
	resp := DocumentResponse{
		ID:         doc.ID,
		Filename:   doc.Filename,
		Title:      doc.Title,
		ChunkCount: chunkCount,
	}
	if !doc.CreatedAt.IsZero() {
		resp.CreatedAt = doc.CreatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
