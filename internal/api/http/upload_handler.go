package http

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"warebook-backend/internal/storage"
)

// UploadHandler accepts warehouse image uploads and serves stored images.
type UploadHandler struct {
	store         storage.Storage
	maxFileSizeMB int64
}

func NewUploadHandler(store storage.Storage, maxFileSizeMB int64) *UploadHandler {
	return &UploadHandler{store: store, maxFileSizeMB: maxFileSizeMB}
}

// Upload handles multipart image uploads. Returns the public URL to use
// in a warehouse listing.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	maxBytes := h.maxFileSizeMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "file too large")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	url, err := h.store.Save(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unsupported image type")
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]string{"url": url})
}

// Serve streams a stored image back to the client.
func (h *UploadHandler) Serve(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	file, err := h.store.Open(r.Context(), key)
	if err != nil {
		writeError(w, http.StatusNotFound, "image not found")
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch strings.ToLower(filepath.Ext(key)) {
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
