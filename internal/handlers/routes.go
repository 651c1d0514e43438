package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// conditionalHTTPLogger only logs HTTP requests when HTTP logging is enabled
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.IsHTTPLoggingEnabled() {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Timeout(60 * time.Second))

	// WebSocket standings feed
	r.Get("/ws", h.Hub.ServeWs)

	// Events
	r.Get("/api/events", h.handleListEvents)
	r.Post("/api/events", h.handleCreateEvent)
	r.Get("/api/events/current", h.handleGetCurrentEvent)
	r.Put("/api/events/current", h.handleSetCurrentEvent)
	r.Get("/api/events/year/{year}", h.handleGetEventByYear)
	r.Get("/api/events/{id}", h.handleGetEvent)
	r.Put("/api/events/{id}", h.handleSaveEvent)
	r.Delete("/api/events/{id}", h.handleDeleteEvent)

	// Categories
	r.Post("/api/events/{id}/categories", h.handleAddCategory)
	r.Put("/api/events/{id}/categories/{name}", h.handleRenameCategory)
	r.Delete("/api/events/{id}/categories/{name}", h.handleRemoveCategory)
	r.Post("/api/events/{id}/categories/reorder", h.handleMoveCategory)

	// Car roster
	r.Post("/api/events/{id}/cars", h.handleAddCarRange)
	r.Put("/api/events/{id}/cars/{number}", h.handleRenameCar)
	r.Delete("/api/events/{id}/cars/{number}", h.handleRemoveCar)
	r.Delete("/api/events/{id}/cars", h.handleClearAllCars)

	// Slip ledger
	r.Get("/api/events/{id}/slips", h.handleGetSlips)
	r.Post("/api/events/{id}/slips", h.handleAddSlip)
	r.Delete("/api/events/{id}/slips/last", h.handleRemoveLastSlip)
	r.Delete("/api/events/{id}/slips/{index}", h.handleRemoveSlipByIndex)

	// Derivation
	r.Get("/api/events/{id}/votes", h.handleGetVotes)
	r.Get("/api/events/{id}/tallies", h.handleGetTallies)
	r.Get("/api/events/{id}/results", h.handleGetResults)
	r.Get("/api/events/{id}/winners", h.handleGetWinners)
	r.Get("/api/events/{id}/qr", h.handleResultsQR)

	// Bulk transfer
	r.Post("/api/export", h.handleExport)
	r.Post("/api/import", h.handleImport)

	return r
}
