package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worthyderby/derbyslips/internal/models"
)

// EventCreateRequest represents a request to create an event
type EventCreateRequest struct {
	Name      string `json:"name"`
	EventDate string `json:"eventDate"`
}

// CurrentEventRequest represents a request to set the current event
type CurrentEventRequest struct {
	ID string `json:"id"`
}

func (h *Handlers) handleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Events.GetAllEvents(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, events)
}

func (h *Handlers) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	event, err := h.Events.CreateEvent(r.Context(), req.Name, req.EventDate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, event)
}

func (h *Handlers) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.Events.GetEventByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	if event == nil {
		respondError(w, NotFound("Event not found"))
		return
	}
	respondOK(w, event)
}

func (h *Handlers) handleGetEventByYear(w http.ResponseWriter, r *http.Request) {
	event, err := h.Events.GetEventByYear(r.Context(), chi.URLParam(r, "year"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, event)
}

func (h *Handlers) handleSaveEvent(w http.ResponseWriter, r *http.Request) {
	var event models.Event
	if err := decodeJSON(r, &event); err != nil {
		respondError(w, err)
		return
	}
	if event.ID == "" {
		event.ID = chi.URLParam(r, "id")
	}

	if err := h.Events.SaveEvent(r.Context(), &event); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, event)
}

func (h *Handlers) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.Events.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}

func (h *Handlers) handleGetCurrentEvent(w http.ResponseWriter, r *http.Request) {
	id, err := h.Events.GetCurrentEventID(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	var event *models.Event
	if id != "" {
		// Dangling pointers resolve to a null event, not an error
		event, err = h.Events.GetEventByID(r.Context(), id)
		if err != nil {
			respondError(w, err)
			return
		}
	}
	respondOK(w, map[string]interface{}{"currentEventId": id, "event": event})
}

func (h *Handlers) handleSetCurrentEvent(w http.ResponseWriter, r *http.Request) {
	var req CurrentEventRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Events.SetCurrentEventID(r.Context(), req.ID); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, map[string]string{"currentEventId": req.ID})
}
