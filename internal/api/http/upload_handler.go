package http

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"anacarlita-backend/internal/storage"
)

// UploadHandler serves the mock-storage presigned URLs during local
// development. In production the client talks to the hosted bucket
// directly and these routes are never registered.
type UploadHandler struct {
	mockStorage *storage.MockStorageService
}

func NewUploadHandler(mockStorage *storage.MockStorageService) *UploadHandler {
	return &UploadHandler{mockStorage: mockStorage}
}

// HandleUpload accepts PUT requests to mock presigned upload URLs.
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "missing key parameter", http.StatusBadRequest)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" && contentType != "image/webp" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	if err := h.mockStorage.SaveFile(key, r.Body); err != nil {
		http.Error(w, "failed to save file", http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", `"mock-etag-success"`)
	w.WriteHeader(http.StatusOK)
}

// HandleDownload streams a stored image back from mock presigned
// download URLs.
func (h *UploadHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "missing key parameter", http.StatusBadRequest)
		return
	}

	file, err := h.mockStorage.ReadFile(key)
	if err != nil {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".webp":
		contentType = "image/webp"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}

// RegisterMockStorageRoutes wires the local-development upload endpoints.
func RegisterMockStorageRoutes(router *mux.Router, mockStorage *storage.MockStorageService) {
	handler := NewUploadHandler(mockStorage)
	router.HandleFunc("/api/uploads/{token}", handler.HandleUpload).Methods(http.MethodPut)
	router.HandleFunc("/api/downloads", handler.HandleDownload).Methods(http.MethodGet)
}
