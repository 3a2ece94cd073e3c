package handler

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/serunimart/api/internal/upload"
)

// Uploader pushes an image to the external image host and returns its public
// URL. Satisfied by *upload.Client.
type Uploader interface {
	Upload(ctx context.Context, filename string, file io.Reader) (string, error)
}

// UploadHandler accepts product and combo images and forwards them to the
// image host.
type UploadHandler struct {
	uploader Uploader
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploader Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// RegisterRoutes registers upload endpoints on the given Chi router.
func (h *UploadHandler) RegisterRoutes(r chi.Router) {
	r.Post("/images", h.Image)
}

// Image accepts a multipart form with a single "image" file, validates its
// type and size, and returns the hosted URL.
func (h *UploadHandler) Image(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, upload.MaxImageSize)
	if err := r.ParseMultipartForm(upload.MaxImageSize); err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "image exceeds the 5 MiB limit"})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "image file is required"})
		return
	}
	defer file.Close()

	if err := upload.ValidateContentType(header.Header.Get("Content-Type")); err != nil {
		if errors.Is(err, upload.ErrUnsupportedType) {
			writeJSON(w, http.StatusUnsupportedMediaType, map[string]string{"error": "only jpeg, png and webp images are accepted"})
			return
		}
		log.Printf("ERROR: validate upload: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	url, err := h.uploader.Upload(r.Context(), header.Filename, file)
	if err != nil {
		log.Printf("ERROR: upload image: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "image host unavailable"})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}
