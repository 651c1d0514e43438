package services

import (
	"context"
	"fmt"

	"github.com/skip2/go-qrcode"

	"github.com/worthyderby/derbyslips/internal/errors"
	"github.com/worthyderby/derbyslips/internal/logger"
	"github.com/worthyderby/derbyslips/internal/models"
	"github.com/worthyderby/derbyslips/internal/repository"
	"github.com/worthyderby/derbyslips/internal/tally"
)

// ResultsServiceRepository defines the repository methods needed by ResultsService
type ResultsServiceRepository interface {
	repository.EventRepository
}

// ResultsService builds read-time standings for an event. All the
// arithmetic lives in the tally package; this layer only fetches the
// event and shapes the output for the API.
type ResultsService struct {
	log  logger.Logger
	repo ResultsServiceRepository
}

// NewResultsService creates a new ResultsService
func NewResultsService(log logger.Logger, repo ResultsServiceRepository) *ResultsService {
	return &ResultsService{log: log, repo: repo}
}

// CategoryResult represents standings for a single category
type CategoryResult struct {
	Category   string           `json:"category"`
	TotalVotes int              `json:"totalVotes"`
	Standings  []tally.RankedCar `json:"standings"`
	Winners    tally.WinnerSet   `json:"winners"`
}

// FullResults contains standings for every category of an event
type FullResults struct {
	EventID    string           `json:"eventId"`
	EventName  string           `json:"eventName"`
	Categories []CategoryResult `json:"categories"`
	TotalSlips int              `json:"totalSlips"`
}

func (s *ResultsService) loadEvent(ctx context.Context, eventID string) (*models.Event, error) {
	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, errors.NotFoundf("event %q not found", eventID)
	}
	return event, nil
}

// GetVotes returns the flattened vote list for an event.
func (s *ResultsService) GetVotes(ctx context.Context, eventID string) ([]models.Vote, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return tally.Flatten(event.Slips), nil
}

// GetVoteTallies returns the full per-category, per-car count map.
// This is the source of truth; standings views derive from it.
func (s *ResultsService) GetVoteTallies(ctx context.Context, eventID string) (tally.Tallies, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return tally.Compute(event.Categories, event.CarNames, event.Slips), nil
}

// GetResults returns ranked standings and winner sets per category, in
// the event's category display order. Standings are limited to the top
// five entries; consumers needing everything use GetVoteTallies.
func (s *ResultsService) GetResults(ctx context.Context, eventID string) (*FullResults, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	tallies := tally.Compute(event.Categories, event.CarNames, event.Slips)

	results := &FullResults{
		EventID:    event.ID,
		EventName:  event.Name,
		Categories: make([]CategoryResult, 0, len(event.Categories)),
		TotalSlips: len(event.Slips),
	}

	for _, category := range event.Categories {
		counts := tallies[category]
		ranked := tally.Rank(counts)

		total := 0
		for _, row := range ranked {
			total += row.Votes
		}
		standings := tally.Top(ranked, tally.TopN)
		for i := range standings {
			standings[i].CarName = event.CarNames[standings[i].CarNumber]
		}

		results.Categories = append(results.Categories, CategoryResult{
			Category:   category,
			TotalVotes: total,
			Standings:  standings,
			Winners:    tally.Winners(counts),
		})
	}

	return results, nil
}

// ResultsQR renders a QR code PNG pointing a projector or tablet at
// the event's live results feed.
func (s *ResultsService) ResultsQR(ctx context.Context, eventID, baseURL string) ([]byte, error) {
	if _, err := s.loadEvent(ctx, eventID); err != nil {
		return nil, err
	}
	resultsURL := fmt.Sprintf("%s/api/events/%s/results", baseURL, eventID)
	return qrcode.Encode(resultsURL, qrcode.Medium, 256)
}

// GetWinners returns just the winner set per category, skipping
// categories with no votes.
func (s *ResultsService) GetWinners(ctx context.Context, eventID string) (map[string]tally.WinnerSet, error) {
	tallies, err := s.GetVoteTallies(ctx, eventID)
	if err != nil {
		return nil, err
	}

	winners := make(map[string]tally.WinnerSet)
	for category, counts := range tallies {
		set := tally.Winners(counts)
		if len(set.Cars) > 0 {
			winners[category] = set
		}
	}
	return winners, nil
}
