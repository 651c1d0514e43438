package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ExportRequest selects which events to export; empty or "all" means
// the whole dataset
type ExportRequest struct {
	EventIDs []string `json:"eventIds"`
}

func (h *Handlers) handleExport(w http.ResponseWriter, r *http.Request) {
	// An empty body is a full export
	var req ExportRequest
	body, err := readBody(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if strings.TrimSpace(body) != "" {
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			respondError(w, BadRequest("Invalid JSON: "+err.Error()))
			return
		}
	}

	doc, err := h.Transfer.ExportData(r.Context(), req.EventIDs)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="derby-vote-data.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}

func (h *Handlers) handleImport(w http.ResponseWriter, r *http.Request) {
	doc, err := readBody(r)
	if err != nil {
		respondError(w, err)
		return
	}

	ds, err := h.Transfer.ImportData(r.Context(), doc)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, map[string]interface{}{
		"imported":       len(ds.Events),
		"currentEventId": ds.CurrentEventID,
	})
}
