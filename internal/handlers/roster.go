package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// CategoryAddRequest represents a request to add a category
type CategoryAddRequest struct {
	Name string `json:"name"`
}

// CategoryRenameRequest represents a request to rename a category
type CategoryRenameRequest struct {
	NewName string `json:"newName"`
}

// CategoryMoveRequest represents a request to reorder a category
type CategoryMoveRequest struct {
	Index     int `json:"index"`
	Direction int `json:"direction"` // -1 moves up, 1 moves down
}

// CarRangeRequest represents a request to add a range of car numbers
type CarRangeRequest struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// CarRenameRequest represents a request to name a car
type CarRenameRequest struct {
	Name string `json:"name"`
}

// categoryParam decodes the {name} route parameter, which may carry
// spaces and punctuation ("Best Paint Job").
func categoryParam(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}

func (h *Handlers) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryAddRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	event, err := h.Roster.AddCategory(r.Context(), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, event)
}

func (h *Handlers) handleRenameCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRenameRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	event, err := h.Roster.RenameCategory(r.Context(), chi.URLParam(r, "id"), categoryParam(r), req.NewName)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, event)
}

func (h *Handlers) handleRemoveCategory(w http.ResponseWriter, r *http.Request) {
	event, err := h.Roster.RemoveCategory(r.Context(), chi.URLParam(r, "id"), categoryParam(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, event)
}

func (h *Handlers) handleMoveCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryMoveRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	event, err := h.Roster.MoveCategory(r.Context(), chi.URLParam(r, "id"), req.Index, req.Direction)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, event)
}

func (h *Handlers) handleAddCarRange(w http.ResponseWriter, r *http.Request) {
	var req CarRangeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.Start <= 0 {
		respondError(w, BadRequest("Car numbers must be positive"))
		return
	}
	if req.End < req.Start {
		respondError(w, BadRequest("Range end must not be below range start"))
		return
	}

	event, err := h.Roster.AddCarRange(r.Context(), chi.URLParam(r, "id"), req.Start, req.End)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, event)
}

func (h *Handlers) handleRenameCar(w http.ResponseWriter, r *http.Request) {
	number, err := parseIntParam(r, "number")
	if err != nil {
		respondError(w, err)
		return
	}

	var req CarRenameRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	event, err := h.Roster.RenameCar(r.Context(), chi.URLParam(r, "id"), number, req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, event)
}

func (h *Handlers) handleRemoveCar(w http.ResponseWriter, r *http.Request) {
	number, err := parseIntParam(r, "number")
	if err != nil {
		respondError(w, err)
		return
	}

	event, err := h.Roster.RemoveCar(r.Context(), chi.URLParam(r, "id"), number)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, event)
}

func (h *Handlers) handleClearAllCars(w http.ResponseWriter, r *http.Request) {
	event, err := h.Roster.ClearAllCars(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, event)
}
