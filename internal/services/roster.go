package services

import (
	"context"
	"strings"

	"github.com/worthyderby/derbyslips/internal/errors"
	"github.com/worthyderby/derbyslips/internal/logger"
	"github.com/worthyderby/derbyslips/internal/models"
	"github.com/worthyderby/derbyslips/internal/repository"
	"github.com/worthyderby/derbyslips/internal/roster"
)

// RosterServiceRepository defines the repository methods needed by RosterService
type RosterServiceRepository interface {
	repository.EventRepository
}

// RosterService applies the pure roster/category transformations to a
// stored event and persists the result. The transformation logic lives
// in the roster package; this layer adds lookup, trimming, and saves.
type RosterService struct {
	log  logger.Logger
	repo RosterServiceRepository
}

// NewRosterService creates a new RosterService
func NewRosterService(log logger.Logger, repo RosterServiceRepository) *RosterService {
	return &RosterService{log: log, repo: repo}
}

// loadEvent fetches an event for mutation, translating absence into a
// typed NotFound error.
func (s *RosterService) loadEvent(ctx context.Context, eventID string) (*models.Event, error) {
	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, errors.NotFoundf("event %q not found", eventID)
	}
	return event, nil
}

// AddCategory appends a category to the event; duplicates are a no-op.
func (s *RosterService) AddCategory(ctx context.Context, eventID, name string) (*models.Event, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Validation("category name cannot be empty")
	}

	updated := roster.AddCategory(event, name)
	if err := s.repo.SaveEvent(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveCategory drops a category and its historical votes, removing
// any slips that end up empty.
func (s *RosterService) RemoveCategory(ctx context.Context, eventID, name string) (*models.Event, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	updated := roster.RemoveCategory(event, name)
	if err := s.repo.SaveEvent(ctx, updated); err != nil {
		return nil, err
	}
	s.log.Info("Category removed", "event", eventID, "category", name,
		"slips_remaining", len(updated.Slips))
	return updated, nil
}

// RenameCategory renames a category, rewriting history to follow it.
// A name collision returns a Conflict error and persists nothing.
func (s *RosterService) RenameCategory(ctx context.Context, eventID, oldName, newName string) (*models.Event, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, errors.Validation("category name cannot be empty")
	}

	updated, err := roster.RenameCategory(event, oldName, newName)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SaveEvent(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// MoveCategory shifts a category one position up or down the display
// order; out-of-bounds moves are a no-op.
func (s *RosterService) MoveCategory(ctx context.Context, eventID string, index, direction int) (*models.Event, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	updated := roster.MoveCategory(event, index, direction)
	if err := s.repo.SaveEvent(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// AddCarRange registers car numbers start..end on the roster. An
// inverted range adds nothing; the UI validates ranges before calling.
func (s *RosterService) AddCarRange(ctx context.Context, eventID string, start, end int) (*models.Event, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if end < start {
		s.log.Debug("Inverted car range ignored", "event", eventID, "start", start, "end", end)
	}

	updated := roster.AddCarRange(event, start, end)
	if err := s.repo.SaveEvent(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveCar drops one car from the roster, leaving its vote history in
// place.
func (s *RosterService) RemoveCar(ctx context.Context, eventID string, carNumber int) (*models.Event, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	updated := roster.RemoveCar(event, carNumber)
	if err := s.repo.SaveEvent(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// ClearAllCars wipes the roster and the slip ledger together.
func (s *RosterService) ClearAllCars(ctx context.Context, eventID string) (*models.Event, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	updated := roster.ClearAllCars(event)
	if err := s.repo.SaveEvent(ctx, updated); err != nil {
		return nil, err
	}
	s.log.Info("Roster and slips cleared", "event", eventID)
	return updated, nil
}

// RenameCar sets a car's display name, trimmed on commit. Intermediate
// keystrokes never reach this layer; the UI calls once on blur.
func (s *RosterService) RenameCar(ctx context.Context, eventID string, carNumber int, name string) (*models.Event, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	updated := roster.RenameCar(event, carNumber, strings.TrimSpace(name))
	if err := s.repo.SaveEvent(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
