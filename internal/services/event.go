package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/worthyderby/derbyslips/internal/logger"
	"github.com/worthyderby/derbyslips/internal/models"
	"github.com/worthyderby/derbyslips/internal/repository"
)

// EventServiceRepository defines the repository methods needed by EventService
type EventServiceRepository interface {
	repository.EventRepository
}

// EventService handles event lifecycle business logic
type EventService struct {
	log  logger.Logger
	repo EventServiceRepository
	now  func() time.Time
}

// NewEventService creates a new EventService
func NewEventService(log logger.Logger, repo EventServiceRepository) *EventService {
	return &EventService{log: log, repo: repo, now: time.Now}
}

// CreateEvent creates a new event, persists it, and makes it the
// current event. The year is derived from the event date, or from
// today when no date is given. Never fails for valid inputs short of a
// storage error.
func (s *EventService) CreateEvent(ctx context.Context, name, eventDate string) (*models.Event, error) {
	now := s.now()

	year := deriveYear(eventDate, now)
	if eventDate == "" {
		eventDate = now.Format("2006-01-02")
	}
	if name == "" {
		name = fmt.Sprintf("Worthy Derby %s", year)
	}

	event := &models.Event{
		ID:         uuid.NewString(),
		Year:       year,
		Name:       name,
		EventDate:  eventDate,
		Categories: []string{},
		CarNames:   make(map[int]string),
		Slips:      []models.Slip{},
		CreatedAt:  now.UTC().Format(time.RFC3339),
	}

	if err := s.repo.SaveEvent(ctx, event); err != nil {
		return nil, err
	}
	if err := s.repo.SetCurrentEventID(ctx, event.ID); err != nil {
		return nil, err
	}

	s.log.Info("Event created", "id", event.ID, "name", event.Name, "date", event.EventDate)
	return event, nil
}

// deriveYear extracts the calendar year from an ISO date string,
// falling back to the given clock time when the date is absent or not
// parseable.
func deriveYear(eventDate string, now time.Time) string {
	if eventDate != "" {
		if t, err := time.Parse("2006-01-02", eventDate); err == nil {
			return t.Format("2006")
		}
	}
	return now.Format("2006")
}

// GetEventByID retrieves an event by id; nil when absent.
func (s *EventService) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	return s.repo.GetEventByID(ctx, id)
}

// GetAllEvents returns every event, most recent first.
func (s *EventService) GetAllEvents(ctx context.Context) ([]*models.Event, error) {
	return s.repo.GetAllEvents(ctx)
}

// SaveEvent upserts an event record as a full replacement.
func (s *EventService) SaveEvent(ctx context.Context, event *models.Event) error {
	return s.repo.SaveEvent(ctx, event)
}

// DeleteEvent removes an event; unknown ids are a silent no-op.
func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		return err
	}
	s.log.Info("Event deleted", "id", id)
	return nil
}

// GetCurrentEventID returns the persisted current-event pointer.
func (s *EventService) GetCurrentEventID(ctx context.Context) (string, error) {
	return s.repo.CurrentEventID(ctx)
}

// SetCurrentEventID persists the current-event pointer without a
// referential check; the pointer may dangle.
func (s *EventService) SetCurrentEventID(ctx context.Context, id string) error {
	return s.repo.SetCurrentEventID(ctx, id)
}

// GetEventByYear is the legacy single-event-per-year path: the year
// string is the record key, created on first access. Events made this
// way use the year as their id, unlike CreateEvent's generated ids.
func (s *EventService) GetEventByYear(ctx context.Context, year string) (*models.Event, error) {
	event, err := s.repo.GetEventByID(ctx, year)
	if err != nil {
		return nil, err
	}
	if event != nil {
		return event, nil
	}

	event = &models.Event{
		ID:         year,
		Year:       year,
		Name:       fmt.Sprintf("Worthy Derby %s", year),
		Categories: []string{},
		CarNames:   make(map[int]string),
		Slips:      []models.Slip{},
		CreatedAt:  s.now().UTC().Format(time.RFC3339),
	}
	if err := s.repo.SaveEvent(ctx, event); err != nil {
		return nil, err
	}
	s.log.Debug("Legacy year event created", "year", year)
	return event, nil
}
