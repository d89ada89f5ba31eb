package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/luoxb/novelshelf/internal/parser"
)

// novelSummary is the list-view projection of an indexed book.
type novelSummary struct {
	ID            string    `json:"id"`
	Filename      string    `json:"filename"`
	Title         string    `json:"title"`
	Author        string    `json:"author,omitempty"`
	Summary       string    `json:"summary,omitempty"`
	TotalChapters int       `json:"total_chapters"`
	Size          int64     `json:"size"`
	ModTime       time.Time `json:"mod_time"`
}

func (s *Server) handleListNovels(w http.ResponseWriter, r *http.Request) {
	entries := s.library.List()
	novels := make([]novelSummary, 0, len(entries))
	for _, e := range entries {
		novels = append(novels, novelSummary{
			ID:            e.Doc.ID,
			Filename:      e.Doc.Filename,
			Title:         e.Doc.Title,
			Author:        e.Doc.Author,
			Summary:       e.Doc.Summary,
			TotalChapters: e.Doc.TotalChapters,
			Size:          e.Size,
			ModTime:       e.ModTime,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"novels": novels})
}

func (s *Server) handleRescan(w http.ResponseWriter, r *http.Request) {
	n, err := s.library.Scan(r.Context())
	if err != nil {
		jsonError(w, "scan failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"books": n})
}

func (s *Server) handleGetNovel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "novelID")
	doc, err := s.library.Document(id)
	if err != nil {
		jsonError(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleGetChapter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "novelID")
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		jsonError(w, "invalid chapter index", http.StatusBadRequest)
		return
	}
	doc, err := s.library.Document(id)
	if err != nil {
		jsonError(w, err.Error(), http.StatusNotFound)
		return
	}
	if index >= len(doc.Chapters) {
		jsonError(w, "chapter index out of range", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, doc.Chapters[index])
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "novelID")
	term := r.URL.Query().Get("q")
	if term == "" {
		jsonError(w, "q query parameter is required", http.StatusBadRequest)
		return
	}
	matches, err := s.library.Search(id, term)
	if err != nil {
		jsonError(w, err.Error(), http.StatusNotFound)
		return
	}
	if matches == nil {
		matches = []parser.Match{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"term": term, "matches": matches})
}

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "novelID")
	p, ok := s.progress.Get(id)
	if !ok {
		jsonError(w, "no progress recorded", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handlePutProgress(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "novelID")
	entry, ok := s.library.Entry(id)
	if !ok {
		jsonError(w, "unknown document: "+id, http.StatusNotFound)
		return
	}

	var body struct {
		Chapter int `json:"chapter"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if body.Chapter < 0 || body.Chapter >= entry.Doc.TotalChapters {
		jsonError(w, "chapter out of range", http.StatusBadRequest)
		return
	}
	if err := s.progress.Set(id, body.Chapter); err != nil {
		jsonError(w, "save progress: "+err.Error(), http.StatusInternalServerError)
		return
	}
	p, _ := s.progress.Get(id)
	writeJSON(w, http.StatusOK, p)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
