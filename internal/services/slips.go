package services

import (
	"context"
	"time"

	"github.com/worthyderby/derbyslips/internal/errors"
	"github.com/worthyderby/derbyslips/internal/logger"
	"github.com/worthyderby/derbyslips/internal/models"
	"github.com/worthyderby/derbyslips/internal/repository"
)

// Broadcaster defines the interface for pushing standings updates to
// connected displays
type Broadcaster interface {
	BroadcastStandings(eventID string)
}

// SlipServiceRepository defines the repository methods needed by SlipService
type SlipServiceRepository interface {
	repository.EventRepository
}

// SlipService manages the append-only slip ledger. Slips enter at the
// head (newest first — a persisted invariant, not a display sort) and
// leave only whole, identified by position rather than timestamp so
// same-millisecond submissions cannot misdirect a removal.
type SlipService struct {
	log         logger.Logger
	repo        SlipServiceRepository
	broadcaster Broadcaster
	now         func() time.Time
}

// NewSlipService creates a new SlipService
func NewSlipService(log logger.Logger, repo SlipServiceRepository) *SlipService {
	return &SlipService{log: log, repo: repo, now: time.Now}
}

// SetBroadcaster sets the broadcaster for standings updates
func (s *SlipService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

func (s *SlipService) loadEvent(ctx context.Context, eventID string) (*models.Event, error) {
	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, errors.NotFoundf("event %q not found", eventID)
	}
	return event, nil
}

// GetSlips returns the event's ledger, newest first.
func (s *SlipService) GetSlips(ctx context.Context, eventID string) ([]models.Slip, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return event.Slips, nil
}

// AddSlip validates and records one submission at the head of the
// ledger. Validation happens here, at the ledger boundary: every vote
// must name a current category and a rostered car, and a slip may
// carry at most one vote per category. An empty vote list is a no-op
// returning the unchanged ledger.
func (s *SlipService) AddSlip(ctx context.Context, eventID string, votes []models.Vote) ([]models.Slip, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if len(votes) == 0 {
		return event.Slips, nil
	}
	if err := validateVotes(event, votes); err != nil {
		return nil, err
	}

	slip := models.Slip{
		Timestamp: s.now().UnixMilli(),
		Votes:     append([]models.Vote(nil), votes...),
	}
	event.Slips = append([]models.Slip{slip}, event.Slips...)

	if err := s.repo.SaveEvent(ctx, event); err != nil {
		return nil, err
	}

	s.log.Debug("Slip recorded", "event", eventID, "votes", len(votes), "total_slips", len(event.Slips))
	s.notify(eventID)
	return event.Slips, nil
}

// validateVotes checks each vote against the event's current category
// list and car roster.
func validateVotes(event *models.Event, votes []models.Vote) error {
	categories := make(map[string]bool, len(event.Categories))
	for _, c := range event.Categories {
		categories[c] = true
	}

	seen := make(map[string]bool, len(votes))
	for _, v := range votes {
		if !categories[v.Category] {
			return errors.Validationf("unknown category %q", v.Category)
		}
		if _, ok := event.CarNames[v.CarNumber]; !ok {
			return errors.Validationf("car %d is not on the roster", v.CarNumber)
		}
		if seen[v.Category] {
			return errors.Validationf("duplicate vote for category %q", v.Category)
		}
		seen[v.Category] = true
	}
	return nil
}

// RemoveLastSlip removes the most recently submitted slip (the head of
// the ledger). An empty ledger is a no-op.
func (s *SlipService) RemoveLastSlip(ctx context.Context, eventID string) ([]models.Slip, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if len(event.Slips) == 0 {
		return event.Slips, nil
	}

	event.Slips = event.Slips[1:]
	if err := s.repo.SaveEvent(ctx, event); err != nil {
		return nil, err
	}

	s.notify(eventID)
	return event.Slips, nil
}

// RemoveSlipByIndex removes the slip at the given position in the
// head-first ordering. Out-of-range indexes are a no-op.
func (s *SlipService) RemoveSlipByIndex(ctx context.Context, eventID string, index int) ([]models.Slip, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(event.Slips) {
		return event.Slips, nil
	}

	event.Slips = append(event.Slips[:index], event.Slips[index+1:]...)
	if err := s.repo.SaveEvent(ctx, event); err != nil {
		return nil, err
	}

	s.notify(eventID)
	return event.Slips, nil
}

func (s *SlipService) notify(eventID string) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastStandings(eventID)
	}
}
