package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"sort"

	_ "github.com/mattn/go-sqlite3"

	"github.com/worthyderby/derbyslips/internal/models"
)

// datasetKey is the key-value slot holding the entire voting dataset.
// The key matches the document the original local-storage build used,
// so imported backups stay interchangeable.
const datasetKey = "derby-vote-data"

// Repository provides data access methods. The whole dataset is
// persisted as one JSON blob under a single key; every event-level
// method is a read-modify-write of that blob.
type Repository struct {
	db *sql.DB
}

// New creates a new Repository
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Single connection serializes in-process writers; SQLite works
	// best this way and the blob write must not interleave.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	repo := &Repository{db: db}

	if err := repo.migrate(); err != nil {
		return nil, err
	}

	return repo, nil
}

// DB returns the underlying database connection (for tests)
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// migrate runs database migrations
func (r *Repository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS datasets (
			key        TEXT PRIMARY KEY,
			data       TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, migration := range migrations {
		if _, err := r.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}

// LoadDataset reads the persisted dataset blob. A missing row or an
// unparsable blob yields an empty dataset, never an error: losing the
// blob must not brick the tool on event night.
func (r *Repository) LoadDataset(ctx context.Context) (*models.Dataset, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM datasets WHERE key = ?`, datasetKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return models.NewDataset(), nil
	}
	if err != nil {
		return nil, err
	}

	var ds models.Dataset
	if err := json.Unmarshal([]byte(raw), &ds); err != nil {
		return models.NewDataset(), nil
	}
	if ds.Events == nil {
		ds.Events = make(map[string]*models.Event)
	}
	return &ds, nil
}

// ReplaceDataset persists the given dataset as the new blob,
// overwriting whatever was stored before.
func (r *Repository) ReplaceDataset(ctx context.Context, ds *models.Dataset) error {
	raw, err := json.Marshal(ds)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO datasets (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		datasetKey, string(raw))
	return err
}

// ==================== Event Methods ====================

// GetEventByID retrieves an event by id. Returns (nil, nil) when the
// id is unknown; absence is not an error.
func (r *Repository) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	ds, err := r.LoadDataset(ctx)
	if err != nil {
		return nil, err
	}
	return ds.Events[id].Clone(), nil
}

// GetAllEvents returns all events sorted by event date (falling back
// to creation time), most recent first. ISO date strings compare
// lexicographically in chronological order.
func (r *Repository) GetAllEvents(ctx context.Context) ([]*models.Event, error) {
	ds, err := r.LoadDataset(ctx)
	if err != nil {
		return nil, err
	}

	events := make([]*models.Event, 0, len(ds.Events))
	for _, ev := range ds.Events {
		events = append(events, ev.Clone())
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].SortDate() > events[j].SortDate()
	})
	return events, nil
}

// SaveEvent upserts an event, keyed by its id with the year as a
// legacy fallback for records created before ids existed. The stored
// record is fully replaced.
func (r *Repository) SaveEvent(ctx context.Context, event *models.Event) error {
	ds, err := r.LoadDataset(ctx)
	if err != nil {
		return err
	}

	key := event.ID
	if key == "" {
		key = event.Year
	}
	stored := event.Clone()
	stored.ID = key
	ds.Events[key] = stored

	return r.ReplaceDataset(ctx, ds)
}

// DeleteEvent removes an event. Deleting an unknown id is a no-op, so
// the operation is idempotent. The current-event pointer is left
// untouched even when it referenced the deleted event; lookups of a
// dangling pointer resolve to nil.
func (r *Repository) DeleteEvent(ctx context.Context, id string) error {
	ds, err := r.LoadDataset(ctx)
	if err != nil {
		return err
	}
	delete(ds.Events, id)
	return r.ReplaceDataset(ctx, ds)
}

// CurrentEventID returns the persisted current-event pointer, empty
// when none is set.
func (r *Repository) CurrentEventID(ctx context.Context) (string, error) {
	ds, err := r.LoadDataset(ctx)
	if err != nil {
		return "", err
	}
	return ds.CurrentEventID, nil
}

// SetCurrentEventID persists the current-event pointer. The id is not
// checked against the stored events; the pointer is a weak reference.
func (r *Repository) SetCurrentEventID(ctx context.Context, id string) error {
	ds, err := r.LoadDataset(ctx)
	if err != nil {
		return err
	}
	ds.CurrentEventID = id
	return r.ReplaceDataset(ctx, ds)
}
