package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/clausemd/clausemd/internal/doctree"
	"github.com/clausemd/clausemd/internal/export"
	"github.com/clausemd/clausemd/internal/ingest"
	"github.com/clausemd/clausemd/internal/parse"
)

type parseRequest struct {
	DocumentID    string              `json:"document_id,omitempty"`
	Blocks        []parse.SourceBlock `json:"blocks,omitempty"`
	Text          string              `json:"text,omitempty"`
	OutputFormats []string            `json:"output_formats,omitempty"`
}

// handleParse assembles source blocks (or raw authoring text) into a
// document and renders the requested output formats.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	var doc *doctree.Document
	if len(req.Blocks) > 0 {
		doc = parse.Blocks(req.Blocks)
	} else {
		doc = parse.Text(req.Text)
	}

	outputs, err := s.renderOutputs(doc, req.OutputFormats)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"document_id": req.DocumentID,
		"outputs":     outputs,
	})
}

// handleIngest accepts a multipart file upload, converts it to source blocks
// and parses it like handleParse.
func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

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
	if !ingest.IsSupportedExtension(filename) {
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

	ing, err := ingest.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	blocks, err := ing.Ingest(bytes.NewReader(data), filename)
	if err != nil {
		jsonError(w, "failed to ingest file: "+err.Error(), http.StatusBadRequest)
		return
	}
	doc := parse.Blocks(blocks)

	var formats []string
	if v := r.FormValue("output_formats"); v != "" {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				formats = append(formats, name)
			}
		}
	}
	outputs, err := s.renderOutputs(doc, formats)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"document_id": r.FormValue("document_id"),
		"filename":    filename,
		"outputs":     outputs,
	})
}

// renderOutputs renders the document in each requested format, defaulting to
// the configured format list.
func (s *Server) renderOutputs(doc *doctree.Document, formats []string) (map[string]any, error) {
	if len(formats) == 0 {
		formats = s.cfg.DefaultFormats
	}
	outputs := make(map[string]any, len(formats))
	for _, name := range formats {
		f, err := export.For(name)
		if err != nil {
			return nil, err
		}
		outputs[name] = f.Format(doc)
	}
	return outputs, nil
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
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
