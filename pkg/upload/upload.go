package upload

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/galleria-dev/galleria/pkg/picker"
)

// Config holds configuration for the intake handler.
type Config struct {
	// Field is the multipart form field carrying the files.
	// Default: "files".
	Field string

	// MaxRequestBytes bounds the whole request body. Default: the
	// controller's per-file limit plus form overhead, times MaxBatch.
	MaxRequestBytes int64

	// MaxBatch caps the number of files read from one request.
	// Default: 32.
	MaxBatch int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Field:    "files",
		MaxBatch: 32,
	}
}

// response is the JSON body returned after an intake request.
type response struct {
	Items []picker.ItemView `json:"items"`
}

// Handler returns an http.Handler feeding file selections to ctrl.
// Mount it on your router: r.Post("/upload", upload.Handler(ctrl))
func Handler(ctrl *picker.Controller) http.Handler {
	return HandlerWithConfig(ctrl, DefaultConfig())
}

// HandlerWithConfig returns an intake handler with custom configuration.
func HandlerWithConfig(ctrl *picker.Controller, config *Config) http.Handler {
	field := config.Field
	if field == "" {
		field = "files"
	}
	maxBatch := config.MaxBatch
	if maxBatch <= 0 {
		maxBatch = 32
	}
	maxRequest := config.MaxRequestBytes
	if maxRequest <= 0 {
		// Per-file limit plus 1MB form overhead, per batch slot.
		maxRequest = (ctrl.Limits().MaxSizeBytes + 1<<20) * int64(maxBatch)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		// Bound the body before parsing to stop oversized requests early.
		r.Body = http.MaxBytesReader(w, r.Body, maxRequest)

		if err := r.ParseMultipartForm(32 << 20); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				http.Error(w, "request too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "malformed multipart form", http.StatusBadRequest)
			return
		}

		headers := r.MultipartForm.File[field]
		if len(headers) == 0 {
			http.Error(w, "no files provided", http.StatusBadRequest)
			return
		}
		if len(headers) > maxBatch {
			headers = headers[:maxBatch]
		}

		files := make([]*picker.File, 0, len(headers))
		for _, hdr := range headers {
			part, err := hdr.Open()
			if err != nil {
				http.Error(w, "unreadable file part", http.StatusBadRequest)
				return
			}
			data, err := io.ReadAll(part)
			part.Close()
			if err != nil {
				http.Error(w, "unreadable file part", http.StatusBadRequest)
				return
			}
			files = append(files, &picker.File{
				Name:        hdr.Filename,
				ContentType: hdr.Header.Get("Content-Type"),
				Size:        hdr.Size,
				Data:        data,
			})
		}

		ctrl.Add(files...)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response{Items: ctrl.Views()})
	})
}
