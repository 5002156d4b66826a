package api

import (
	"encoding/json"
	"net/http"

	"github.com/clausemd/clausemd/internal/doctree"
	"github.com/clausemd/clausemd/internal/edit"
	"github.com/clausemd/clausemd/internal/export"
	"github.com/clausemd/clausemd/internal/number"
	"github.com/clausemd/clausemd/internal/transform"
)

// handleRenumber runs the numbering maintainer over a document. Safe to call
// redundantly; changed reports whether any label moved.
func (s *Server) handleRenumber(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Document *doctree.Document `json:"document"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Document == nil {
		jsonError(w, "document is required", http.StatusBadRequest)
		return
	}

	doc, changed := number.Renumber(req.Document)
	writeJSON(w, http.StatusOK, map[string]any{
		"document": doc,
		"changed":  changed,
	})
}

// handleVariant applies a variant selection. A stale block or variant index
// is a no-op reported as changed=false, not an error.
func (s *Server) handleVariant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Document *doctree.Document `json:"document"`
		Block    int               `json:"block"`
		Variant  int               `json:"variant"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Document == nil {
		jsonError(w, "document is required", http.StatusBadRequest)
		return
	}

	doc, changed := edit.ApplyVariant(req.Document, req.Block, req.Variant)
	writeJSON(w, http.StatusOK, map[string]any{
		"document": doc,
		"changed":  changed,
	})
}

// handleExport serializes a document to canonical authoring text plus the
// variant sidecar.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Document *doctree.Document `json:"document"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Document == nil {
		jsonError(w, "document is required", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, export.Markdown(req.Document))
}

// handleTransform applies a clause transform to authoring text.
func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	var req transform.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"markdown": transform.Apply(req),
	})
}
