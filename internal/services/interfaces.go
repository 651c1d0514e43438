package services

import (
	"context"

	"github.com/worthyderby/derbyslips/internal/models"
	"github.com/worthyderby/derbyslips/internal/tally"
)

// EventServicer defines the interface for event lifecycle operations
type EventServicer interface {
	CreateEvent(ctx context.Context, name, eventDate string) (*models.Event, error)
	GetEventByID(ctx context.Context, id string) (*models.Event, error)
	GetAllEvents(ctx context.Context) ([]*models.Event, error)
	SaveEvent(ctx context.Context, event *models.Event) error
	DeleteEvent(ctx context.Context, id string) error
	GetCurrentEventID(ctx context.Context) (string, error)
	SetCurrentEventID(ctx context.Context, id string) error
	GetEventByYear(ctx context.Context, year string) (*models.Event, error)
}

// RosterServicer defines the interface for category and roster editing
type RosterServicer interface {
	AddCategory(ctx context.Context, eventID, name string) (*models.Event, error)
	RemoveCategory(ctx context.Context, eventID, name string) (*models.Event, error)
	RenameCategory(ctx context.Context, eventID, oldName, newName string) (*models.Event, error)
	MoveCategory(ctx context.Context, eventID string, index, direction int) (*models.Event, error)
	AddCarRange(ctx context.Context, eventID string, start, end int) (*models.Event, error)
	RemoveCar(ctx context.Context, eventID string, carNumber int) (*models.Event, error)
	ClearAllCars(ctx context.Context, eventID string) (*models.Event, error)
	RenameCar(ctx context.Context, eventID string, carNumber int, name string) (*models.Event, error)
}

// SlipServicer defines the interface for the slip ledger
type SlipServicer interface {
	GetSlips(ctx context.Context, eventID string) ([]models.Slip, error)
	AddSlip(ctx context.Context, eventID string, votes []models.Vote) ([]models.Slip, error)
	RemoveLastSlip(ctx context.Context, eventID string) ([]models.Slip, error)
	RemoveSlipByIndex(ctx context.Context, eventID string, index int) ([]models.Slip, error)
	SetBroadcaster(b Broadcaster)
}

// ResultsServicer defines the interface for derivation views
type ResultsServicer interface {
	GetVotes(ctx context.Context, eventID string) ([]models.Vote, error)
	GetVoteTallies(ctx context.Context, eventID string) (tally.Tallies, error)
	GetResults(ctx context.Context, eventID string) (*FullResults, error)
	GetWinners(ctx context.Context, eventID string) (map[string]tally.WinnerSet, error)
	ResultsQR(ctx context.Context, eventID, baseURL string) ([]byte, error)
}

// TransferServicer defines the interface for bulk import/export
type TransferServicer interface {
	ExportData(ctx context.Context, eventIDs []string) (string, error)
	ImportData(ctx context.Context, text string) (*models.Dataset, error)
}

// Ensure concrete types implement interfaces
var (
	_ EventServicer    = (*EventService)(nil)
	_ RosterServicer   = (*RosterService)(nil)
	_ SlipServicer     = (*SlipService)(nil)
	_ ResultsServicer  = (*ResultsService)(nil)
	_ TransferServicer = (*TransferService)(nil)
)
