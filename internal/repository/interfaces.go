package repository

import (
	"context"

	"github.com/worthyderby/derbyslips/internal/models"
)

// DatasetRepository defines whole-dataset operations (persistence
// adapter surface: the dataset is one opaque blob)
type DatasetRepository interface {
	LoadDataset(ctx context.Context) (*models.Dataset, error)
	ReplaceDataset(ctx context.Context, ds *models.Dataset) error
}

// EventRepository defines event-level operations, each a synchronous
// read-modify-write of the persisted dataset blob
type EventRepository interface {
	GetEventByID(ctx context.Context, id string) (*models.Event, error)
	GetAllEvents(ctx context.Context) ([]*models.Event, error)
	SaveEvent(ctx context.Context, event *models.Event) error
	DeleteEvent(ctx context.Context, id string) error
	CurrentEventID(ctx context.Context) (string, error)
	SetCurrentEventID(ctx context.Context, id string) error
}

// FullRepository combines all repository interfaces.
// Use this when a service needs access to multiple domains.
type FullRepository interface {
	DatasetRepository
	EventRepository
}

// Ensure Repository implements all interfaces
var _ FullRepository = (*Repository)(nil)
