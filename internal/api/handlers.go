package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"pagesmith/internal/brief"
	"pagesmith/internal/cycle"
	"pagesmith/internal/generate"
)

// DownloadFilename is the fixed name used when saving a generated page.
const DownloadFilename = "landing-page.html"

type generateRequest struct {
	Idea string `json:"idea"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Idea) > s.cfg.MaxIdeaChars {
		jsonError(w, fmt.Sprintf("idea exceeds %d characters", s.cfg.MaxIdeaChars), http.StatusBadRequest)
		return
	}

	res, err := s.runner.Generate(r.Context(), req.Idea)
	switch {
	case errors.Is(err, cycle.ErrEmptyIdea):
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, cycle.ErrBusy):
		jsonError(w, err.Error(), http.StatusConflict)
		return
	case errors.Is(err, generate.ErrNoDocument):
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case err != nil:
		jsonError(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"cycle_id": res.CycleID,
		"state":    cycle.StateSucceeded,
		"title":    res.Title,
		"document": res.Document,
	})
}

func (s *Server) handleCycle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.runner.Snapshot())
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.runner.Document()
	if !ok {
		jsonError(w, "no document has been generated", http.StatusNotFound)
		return
	}
	if r.URL.Query().Get("download") == "1" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", DownloadFilename))
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(doc))
}

func (s *Server) handleBrief(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBriefBytes+1024*1024) // extra 1MB for form overhead

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
	if !brief.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxBriefBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxBriefBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxBriefBytes), http.StatusRequestEntityTooLarge)
		return
	}

	extractor, err := brief.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if p, ok := extractor.(*brief.PDFExtractor); ok {
		p.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}

	text, err := extractor.Extract(bytes.NewReader(data), filename)
	if err != nil {
		s.log.Error("brief extraction failed", "filename", filename, "error", err)
		jsonError(w, "could not read brief: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	idea := brief.Collapse(text, s.cfg.MaxIdeaChars)
	if idea == "" {
		jsonError(w, "no usable text in brief", http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"filename": filename,
		"idea":     idea,
	})
}

func (s *Server) handleLLMStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"model": s.runner.Model(),
		"stats": s.runner.Stats().Snapshot(),
	})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
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
