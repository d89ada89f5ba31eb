package api

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/luoxb/novelshelf/internal/importer"
)

// handleParse runs a one-shot parse over an uploaded file without touching
// the library. Pass meta=true to get the metadata-only record.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !importer.IsSupported(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	text, err := importer.Extract(data, filename)
	if err != nil {
		jsonError(w, "extract: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if r.FormValue("meta") == "true" {
		writeJSON(w, http.StatusOK, s.parser.ParseMeta(text, filename))
		return
	}
	writeJSON(w, http.StatusOK, s.parser.Parse(text, filename))
}

// handleValidate checks raw uploaded bytes for parseable structure. The
// body is the file content; the filename query parameter selects the
// importer (default .txt).
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	data, err := io.ReadAll(r.Body)
	if err != nil {
		jsonError(w, "failed to read body: "+err.Error(), http.StatusBadRequest)
		return
	}

	filename := sanitizeFilename(r.URL.Query().Get("filename"))
	if filename == "unnamed" {
		filename = "upload.txt"
	}
	if !importer.IsSupported(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	text, err := importer.Extract(data, filename)
	if err != nil {
		jsonError(w, "extract: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusOK, s.parser.Validate(text))
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
