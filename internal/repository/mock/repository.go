package mock

import (
	"context"

	"github.com/worthyderby/derbyslips/internal/models"
	"github.com/worthyderby/derbyslips/internal/repository"
)

// Repository wraps a real repository and allows injecting errors for
// testing. This provides a flexible way to test error paths without
// corrupting an actual database.
//
// Usage:
//
//	realRepo := testutil.NewTestRepository(t)
//	mockRepo := mock.NewRepository(realRepo)
//	mockRepo.SaveEventError = errors.New("disk full")
//	svc := services.NewSlipService(log, mockRepo)
//	_, err := svc.AddSlip(ctx, id, votes)
//	// err will now contain the injected error
type Repository struct {
	repository.FullRepository

	LoadDatasetError       error
	ReplaceDatasetError    error
	GetEventByIDError      error
	GetAllEventsError      error
	SaveEventError         error
	DeleteEventError       error
	CurrentEventIDError    error
	SetCurrentEventIDError error
}

// NewRepository creates a mock wrapping the given real repository
func NewRepository(inner repository.FullRepository) *Repository {
	return &Repository{FullRepository: inner}
}

func (m *Repository) LoadDataset(ctx context.Context) (*models.Dataset, error) {
	if m.LoadDatasetError != nil {
		return nil, m.LoadDatasetError
	}
	return m.FullRepository.LoadDataset(ctx)
}

func (m *Repository) ReplaceDataset(ctx context.Context, ds *models.Dataset) error {
	if m.ReplaceDatasetError != nil {
		return m.ReplaceDatasetError
	}
	return m.FullRepository.ReplaceDataset(ctx, ds)
}

func (m *Repository) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	if m.GetEventByIDError != nil {
		return nil, m.GetEventByIDError
	}
	return m.FullRepository.GetEventByID(ctx, id)
}

func (m *Repository) GetAllEvents(ctx context.Context) ([]*models.Event, error) {
	if m.GetAllEventsError != nil {
		return nil, m.GetAllEventsError
	}
	return m.FullRepository.GetAllEvents(ctx)
}

func (m *Repository) SaveEvent(ctx context.Context, event *models.Event) error {
	if m.SaveEventError != nil {
		return m.SaveEventError
	}
	return m.FullRepository.SaveEvent(ctx, event)
}

func (m *Repository) DeleteEvent(ctx context.Context, id string) error {
	if m.DeleteEventError != nil {
		return m.DeleteEventError
	}
	return m.FullRepository.DeleteEvent(ctx, id)
}

func (m *Repository) CurrentEventID(ctx context.Context) (string, error) {
	if m.CurrentEventIDError != nil {
		return "", m.CurrentEventIDError
	}
	return m.FullRepository.CurrentEventID(ctx)
}

func (m *Repository) SetCurrentEventID(ctx context.Context, id string) error {
	if m.SetCurrentEventIDError != nil {
		return m.SetCurrentEventIDError
	}
	return m.FullRepository.SetCurrentEventID(ctx, id)
}

// Ensure mock satisfies the repository interfaces
var _ repository.FullRepository = (*Repository)(nil)
