package services

import (
	"context"
	"encoding/json"

	"github.com/worthyderby/derbyslips/internal/errors"
	"github.com/worthyderby/derbyslips/internal/logger"
	"github.com/worthyderby/derbyslips/internal/models"
	"github.com/worthyderby/derbyslips/internal/repository"
)

// ExportAll is the sentinel event id selecting the whole dataset.
const ExportAll = "all"

// TransferServiceRepository defines the repository methods needed by TransferService
type TransferServiceRepository interface {
	repository.DatasetRepository
}

// TransferService serializes the dataset for backup and restores it
// from a previously exported document. The document shape is the
// persisted dataset itself, so export and import round-trip exactly.
type TransferService struct {
	log  logger.Logger
	repo TransferServiceRepository
}

// NewTransferService creates a new TransferService
func NewTransferService(log logger.Logger, repo TransferServiceRepository) *TransferService {
	return &TransferService{log: log, repo: repo}
}

// ExportData serializes the dataset to an indented JSON document. An
// empty id list, or one containing the "all" sentinel, exports every
// event; otherwise only the named events are included. The current
// event pointer is preserved either way, even when it names an event
// outside the selection.
func (s *TransferService) ExportData(ctx context.Context, eventIDs []string) (string, error) {
	ds, err := s.repo.LoadDataset(ctx)
	if err != nil {
		return "", err
	}

	if !exportsAll(eventIDs) {
		filtered := models.NewDataset()
		filtered.CurrentEventID = ds.CurrentEventID
		for _, id := range eventIDs {
			if ev, ok := ds.Events[id]; ok {
				filtered.Events[id] = ev
			}
		}
		ds = filtered
	}

	raw, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return "", err
	}
	s.log.Info("Dataset exported", "events", len(ds.Events))
	return string(raw), nil
}

func exportsAll(eventIDs []string) bool {
	if len(eventIDs) == 0 {
		return true
	}
	for _, id := range eventIDs {
		if id == ExportAll {
			return true
		}
	}
	return false
}

// ImportData parses an exported document and replaces the entire
// persisted dataset with it. This is a destructive overwrite, never a
// merge. A document that does not parse, or that lacks the events
// object, is rejected with a typed error and nothing is written.
func (s *TransferService) ImportData(ctx context.Context, text string) (*models.Dataset, error) {
	var probe struct {
		Events *map[string]*models.Event `json:"events"`
	}
	if err := json.Unmarshal([]byte(text), &probe); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "not a valid dataset document")
	}
	if probe.Events == nil {
		return nil, errors.InvalidInput("dataset document has no events object")
	}

	var ds models.Dataset
	if err := json.Unmarshal([]byte(text), &ds); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "not a valid dataset document")
	}
	if ds.Events == nil {
		ds.Events = make(map[string]*models.Event)
	}

	if err := s.repo.ReplaceDataset(ctx, &ds); err != nil {
		return nil, err
	}

	s.log.Info("Dataset imported", "events", len(ds.Events))
	return &ds, nil
}
