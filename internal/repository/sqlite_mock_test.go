package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/worthyderby/derbyslips/internal/models"
)

// TestLoadDataset_QueryError tests a failing blob read
func TestLoadDataset_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	repo := &Repository{db: db}
	ctx := context.Background()

	mock.ExpectQuery("SELECT data FROM datasets").
		WillReturnError(errors.New("query error"))

	_, err = repo.LoadDataset(ctx)
	if err == nil {
		t.Error("expected error from query, got nil")
	}
}

// TestReplaceDataset_ExecError tests a failing blob write
func TestReplaceDataset_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	repo := &Repository{db: db}
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO datasets").
		WillReturnError(errors.New("exec error"))

	err = repo.ReplaceDataset(ctx, models.NewDataset())
	if err == nil {
		t.Error("expected error from exec, got nil")
	}
}

// TestSaveEvent_LoadError tests that a failing read aborts the write
func TestSaveEvent_LoadError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	repo := &Repository{db: db}
	ctx := context.Background()

	mock.ExpectQuery("SELECT data FROM datasets").
		WillReturnError(errors.New("query error"))

	err = repo.SaveEvent(ctx, &models.Event{ID: "evt-1"})
	if err == nil {
		t.Error("expected error from load, got nil")
	}
}

// TestDeleteEvent_LoadError tests that a failing read aborts the delete
func TestDeleteEvent_LoadError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	repo := &Repository{db: db}
	ctx := context.Background()

	mock.ExpectQuery("SELECT data FROM datasets").
		WillReturnError(errors.New("query error"))

	err = repo.DeleteEvent(ctx, "evt-1")
	if err == nil {
		t.Error("expected error from load, got nil")
	}
}

// TestSetCurrentEventID_WriteError tests a failing pointer write
func TestSetCurrentEventID_WriteError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	repo := &Repository{db: db}
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"data"}).AddRow(`{"events":{},"currentEventId":""}`)
	mock.ExpectQuery("SELECT data FROM datasets").WillReturnRows(rows)
	mock.ExpectExec("INSERT INTO datasets").
		WillReturnError(errors.New("exec error"))

	err = repo.SetCurrentEventID(ctx, "evt-1")
	if err == nil {
		t.Error("expected error from write, got nil")
	}
}

// TestNew_MigrationError tests migration failure
func TestNew_MigrationError(t *testing.T) {
	_, err := New("/nonexistent/path/to/database.db")
	if err == nil {
		t.Error("expected error from database initialization, got nil")
	}
}
