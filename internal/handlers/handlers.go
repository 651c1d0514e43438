package handlers

import (
	"github.com/worthyderby/derbyslips/internal/services"
	"github.com/worthyderby/derbyslips/internal/websocket"
)

// HTTPLogger is an interface for loggers that support HTTP logging control
type HTTPLogger interface {
	IsHTTPLoggingEnabled() bool
}

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Events   services.EventServicer
	Roster   services.RosterServicer
	Slips    services.SlipServicer
	Results  services.ResultsServicer
	Transfer services.TransferServicer
	Hub      *websocket.Hub
	Log      HTTPLogger

	// baseURL is the externally reachable address of this server, used
	// when rendering QR codes for a second screen.
	baseURL string
}

// New creates a new Handlers instance with all dependencies
func New(
	events services.EventServicer,
	roster services.RosterServicer,
	slips services.SlipServicer,
	results services.ResultsServicer,
	transfer services.TransferServicer,
	hub *websocket.Hub,
	log HTTPLogger,
) *Handlers {
	return &Handlers{
		Events:   events,
		Roster:   roster,
		Slips:    slips,
		Results:  results,
		Transfer: transfer,
		Hub:      hub,
		Log:      log,
	}
}

// SetBaseURL records the server's reachable address for QR rendering.
func (h *Handlers) SetBaseURL(url string) {
	h.baseURL = url
}
