package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) handleGetVotes(w http.ResponseWriter, r *http.Request) {
	votes, err := h.Results.GetVotes(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, votes)
}

func (h *Handlers) handleGetTallies(w http.ResponseWriter, r *http.Request) {
	tallies, err := h.Results.GetVoteTallies(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, tallies)
}

func (h *Handlers) handleGetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.Results.GetResults(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, results)
}

func (h *Handlers) handleGetWinners(w http.ResponseWriter, r *http.Request) {
	winners, err := h.Results.GetWinners(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, winners)
}

func (h *Handlers) handleResultsQR(w http.ResponseWriter, r *http.Request) {
	png, err := h.Results.ResultsQR(r.Context(), chi.URLParam(r, "id"), h.baseURL)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
