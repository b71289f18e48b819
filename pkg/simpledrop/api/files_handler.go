package api

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tendant/simple-drop/pkg/simpledrop"
)

// Config options for the files handler
type Config struct {
	APIKey         string // Shared secret required for store and delete
	MaxUploadBytes int64  // Upload size cap in bytes; 0 means unlimited
}

// FilesHandler exposes the relay's three operations over HTTP: anonymous
// upload, public-by-possession download, and authorized delete.
type FilesHandler struct {
	service simpledrop.Service
	config  Config
}

func NewFilesHandler(service simpledrop.Service, config Config) *FilesHandler {
	return &FilesHandler{
		service: service,
		config:  config,
	}
}

// Routes returns the router for the relay endpoints
func (h *FilesHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/put", h.PutFile)
	r.Get("/get/{objectKey}", h.GetFile)
	r.Get("/delete/{objectKey}", h.DeleteFile)
	r.Delete("/delete/{objectKey}", h.DeleteFile)
	return r
}

// PutFile stores the uploaded multipart "file" field under a fresh key and
// redirects to its retrieval URL. With form field redirect=0 it responds 200
// with the absolute URL as plain text instead.
func (h *FilesHandler) PutFile(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		http.Error(w, "invalid api key", http.StatusForbidden)
		return
	}

	if h.config.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.config.MaxUploadBytes)
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	key, err := h.service.StoreFile(r.Context(), file)
	if err != nil {
		slog.Error("Failed to store file", "error", err)
		http.Error(w, "failed to store file", http.StatusInternalServerError)
		return
	}

	location := "/get/" + key
	if r.FormValue("redirect") == "0" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "%s://%s%s", requestScheme(r), r.Host, location)
		return
	}

	http.Redirect(w, r, location, http.StatusFound)
}

// GetFile serves the stored bytes with a content type sniffed from them.
// No authorization: possession of the key is the access control.
func (h *FilesHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	objectKey := chi.URLParam(r, "objectKey")

	f, err := h.service.FetchFile(r.Context(), objectKey)
	if err != nil {
		if errors.Is(err, simpledrop.ErrObjectNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		slog.Error("Failed to fetch file", "key", objectKey, "error", err)
		http.Error(w, "failed to fetch file", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", f.ContentType)
	w.Write(f.Data)
}

// DeleteFile removes the object. Requires the shared API key.
func (h *FilesHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		http.Error(w, "invalid api key", http.StatusForbidden)
		return
	}

	objectKey := chi.URLParam(r, "objectKey")

	if err := h.service.RemoveFile(r.Context(), objectKey); err != nil {
		if errors.Is(err, simpledrop.ErrObjectNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		slog.Error("Failed to remove file", "key", objectKey, "error", err)
		http.Error(w, "failed to remove file", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *FilesHandler) authorized(r *http.Request) bool {
	key := r.Header.Get("X-Api-Key")
	return subtle.ConstantTimeCompare([]byte(key), []byte(h.config.APIKey)) == 1
}

func requestScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
