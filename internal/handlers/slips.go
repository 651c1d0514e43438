package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worthyderby/derbyslips/internal/models"
)

// SlipRequest represents a slip submission
type SlipRequest struct {
	Votes []models.Vote `json:"votes"`
}

func (h *Handlers) handleGetSlips(w http.ResponseWriter, r *http.Request) {
	slips, err := h.Slips.GetSlips(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, slips)
}

func (h *Handlers) handleAddSlip(w http.ResponseWriter, r *http.Request) {
	var req SlipRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	slips, err := h.Slips.AddSlip(r.Context(), chi.URLParam(r, "id"), req.Votes)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, slips)
}

func (h *Handlers) handleRemoveLastSlip(w http.ResponseWriter, r *http.Request) {
	slips, err := h.Slips.RemoveLastSlip(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, slips)
}

func (h *Handlers) handleRemoveSlipByIndex(w http.ResponseWriter, r *http.Request) {
	index, err := parseIntParam(r, "index")
	if err != nil {
		respondError(w, err)
		return
	}

	slips, err := h.Slips.RemoveSlipByIndex(r.Context(), chi.URLParam(r, "id"), index)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, slips)
}
